package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	repomocks "github.com/melsayed/sales-analyst-api/infrastructure/repository/mocks"
	"github.com/melsayed/sales-analyst-api/internal/config"
	"github.com/melsayed/sales-analyst-api/internal/domain"
	analyzingmocks "github.com/melsayed/sales-analyst-api/internal/usecases/analyzing/mocks"
	"github.com/melsayed/sales-analyst-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newHandlerTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Analysis.DefaultYearFrom = 2024
	cfg.Analysis.DefaultYearTo = 2025
	cfg.Analysis.WindowDays = 30
	cfg.Analysis.BrandAliases = map[string]string{"duphalac": "DUP"}
	cfg.Analysis.MaskedBrands = map[string]bool{"BAYER": true}
	return cfg
}

func newBrandServices(ctrl *gomock.Controller) (BrandServices, *analyzingmocks.MockAnalyzingService, *repomocks.MockSalesRepository) {
	analyzer := analyzingmocks.NewMockAnalyzingService(ctrl)
	sales := repomocks.NewMockSalesRepository(ctrl)

	services := BrandServices{
		Analyzer: analyzer,
		Sales:    sales,
		Config:   newHandlerTestConfig(),
	}

	return services, analyzer, sales
}

func TestGetBrandCoverageResolvesMaskedBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, analyzer, sales := newBrandServices(ctrl)

	sales.EXPECT().ListBrands().Return([]string{"DUP", "BAYER"}, nil)
	analyzer.EXPECT().
		Coverage(domain.CoverageBrand, "BAYER", true, gomock.Nil(), "").
		Return(&domain.CoverageReport{Level: domain.CoverageBrand, Entity: "BAYER"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/brands/bayer/coverage", nil)
	rec := httptest.NewRecorder()

	newTestRouter(http.MethodGet, "/v1/brands/:brand/coverage", GetBrandCoverage(services)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var report domain.CoverageReport
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, "BAYER", report.Entity)
}

func TestGetBrandCoverageUnknownBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, _, sales := newBrandServices(ctrl)

	sales.EXPECT().ListBrands().Return([]string{"DUP"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/brands/NOPE/coverage", nil)
	rec := httptest.NewRecorder()

	newTestRouter(http.MethodGet, "/v1/brands/:brand/coverage", GetBrandCoverage(services)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrUnknownEntity, decodeAPIError(t, rec).Code)
}

func TestGetBrandCoverageResolvesAlias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, analyzer, sales := newBrandServices(ctrl)

	sales.EXPECT().ListBrands().Return([]string{"DUP"}, nil)
	analyzer.EXPECT().
		Coverage(domain.CoverageBrand, "DUP", false, gomock.Nil(), "").
		Return(&domain.CoverageReport{Level: domain.CoverageBrand, Entity: "DUP"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/brands/Duphalac/coverage", nil)
	rec := httptest.NewRecorder()

	newTestRouter(http.MethodGet, "/v1/brands/:brand/coverage", GetBrandCoverage(services)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetBrandCoverageRejectsBadWindows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, _, sales := newBrandServices(ctrl)

	sales.EXPECT().ListBrands().Return([]string{"DUP"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/brands/DUP/coverage?windows=12,abc", nil)
	rec := httptest.NewRecorder()

	newTestRouter(http.MethodGet, "/v1/brands/:brand/coverage", GetBrandCoverage(services)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
}

func TestGetBrandCoverageRejectsUnknownDimension(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, _, sales := newBrandServices(ctrl)

	sales.EXPECT().ListBrands().Return([]string{"DUP"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/brands/DUP/coverage?dimension=planet", nil)
	rec := httptest.NewRecorder()

	newTestRouter(http.MethodGet, "/v1/brands/:brand/coverage", GetBrandCoverage(services)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrUnknownEntity, decodeAPIError(t, rec).Code)
}

func TestGetBrandAnalysisDefaultsYearsAndFocus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, analyzer, sales := newBrandServices(ctrl)

	sales.EXPECT().ListBrands().Return([]string{"DUP"}, nil)
	analyzer.EXPECT().
		BrandAnalysis(domain.QuestionProfile{
			Brand:    "DUP",
			Focus:    domain.FocusDeclining,
			YearFrom: 2024,
			YearTo:   2025,
		}).
		Return(&domain.BrandAnalysis{Brand: "DUP", YearFrom: 2024, YearTo: 2025}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/brands/DUP/analysis", nil)
	rec := httptest.NewRecorder()

	newTestRouter(http.MethodGet, "/v1/brands/:brand/analysis", GetBrandAnalysis(services)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetBrandAnalysisRejectsBadFocus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, _, sales := newBrandServices(ctrl)

	sales.EXPECT().ListBrands().Return([]string{"DUP"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/brands/DUP/analysis?focus=sideways", nil)
	rec := httptest.NewRecorder()

	newTestRouter(http.MethodGet, "/v1/brands/:brand/analysis", GetBrandAnalysis(services)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
}

func TestGetBrandOOSPassesThresholds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, analyzer, sales := newBrandServices(ctrl)

	sales.EXPECT().ListBrands().Return([]string{"DUP"}, nil)
	analyzer.EXPECT().
		DetectOOS(domain.BrandFilter{Brand: "DUP"}, 45, 25000.0).
		Return([]domain.OOSItem{{ItemCode: "DUP-100-TAB", RiskLevel: domain.OOSRiskHigh}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/brands/DUP/oos?days=45&min_sales=25000", nil)
	rec := httptest.NewRecorder()

	newTestRouter(http.MethodGet, "/v1/brands/:brand/oos", GetBrandOOS(services)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var items []domain.OOSItem
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	assert.Len(t, items, 1)
}

func TestGetCoverageComparisonRequiresBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, _, _ := newBrandServices(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/coverage/comparison", nil)
	rec := httptest.NewRecorder()

	GetCoverageComparison(services).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
}

func TestGetCoverageComparisonBrandVsBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, analyzer, sales := newBrandServices(ctrl)

	sales.EXPECT().ListBrands().Return([]string{"DUP", "OBG"}, nil).Times(2)
	analyzer.EXPECT().
		CompareBrandCoverage("DUP", "OBG", 0).
		Return(&domain.CoverageComparison{EntityA: "DUP", EntityB: "OBG"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/coverage/comparison?brand=dup&other=obg", nil)
	rec := httptest.NewRecorder()

	GetCoverageComparison(services).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCoverageComparisonBrandVsCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, analyzer, sales := newBrandServices(ctrl)

	sales.EXPECT().ListBrands().Return([]string{"DUP"}, nil)
	analyzer.EXPECT().
		BrandVsCompany(domain.BrandFilter{Brand: "DUP"}, gomock.Nil()).
		Return(&domain.BrandCompanyCoverage{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/coverage/comparison?brand=DUP", nil)
	rec := httptest.NewRecorder()

	GetCoverageComparison(services).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetItemPatternUnknownCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := analyzingmocks.NewMockAnalyzingService(ctrl)
	sales := repomocks.NewMockSalesRepository(ctrl)
	services := ItemServices{Analyzer: analyzer, Sales: sales, Config: newHandlerTestConfig()}

	sales.EXPECT().FindItemByCode("XX-1").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/items/XX-1/pattern", nil)
	rec := httptest.NewRecorder()

	newTestRouter(http.MethodGet, "/v1/items/:code/pattern", GetItemPattern(services)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrUnknownEntity, decodeAPIError(t, rec).Code)
}

func TestGetItemPatternMasksRestrictedBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := analyzingmocks.NewMockAnalyzingService(ctrl)
	sales := repomocks.NewMockSalesRepository(ctrl)
	services := ItemServices{Analyzer: analyzer, Sales: sales, Config: newHandlerTestConfig()}

	sales.EXPECT().
		FindItemByCode("BAY-10-TAB").
		Return(&domain.ItemRef{Code: "BAY-10-TAB", Desc: "BAYER TABLET", Brand: "BAYER"}, nil)
	analyzer.EXPECT().
		ClassifyPattern(domain.CoverageItem, "BAY-10-TAB", true, 18).
		Return(&domain.PatternReport{Pattern: domain.PatternStable}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/items/BAY-10-TAB/pattern?months=18", nil)
	rec := httptest.NewRecorder()

	newTestRouter(http.MethodGet, "/v1/items/:code/pattern", GetItemPattern(services)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
