package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/melsayed/sales-analyst-api/infrastructure/repository/mocks"
	"github.com/melsayed/sales-analyst-api/internal/config"
	"github.com/melsayed/sales-analyst-api/internal/domain"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Analysis.DefaultYearFrom = 2024
	cfg.Analysis.DefaultYearTo = 2025
	cfg.Analysis.WindowDays = 30
	cfg.Analysis.MaskedBrands = map[string]bool{"BAYER": true}
	cfg.OOSScan.DaysThreshold = 30
	cfg.OOSScan.MinHistoricalSales = 10000

	return cfg
}

func TestBrandAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := &Service{
		salesRepository: mockSalesRepo,
		cfg:             newTestConfig(),
	}

	profile := domain.QuestionProfile{
		Question: "Which items are growing for DUP in 2025 vs 2024?",
		Focus:    domain.FocusGrowing,
		Intent:   domain.IntentNone,
		Brand:    "DUP",
		YearFrom: 2024,
		YearTo:   2025,
	}
	filter := domain.BrandFilter{Brand: "DUP"}

	mockSalesRepo.EXPECT().
		BrandOverview(filter, 2024, 2025).
		Return([]domain.YearTotals{
			{Year: 2024, TotalSales: 1000000, Customers: 120},
			{Year: 2025, TotalSales: 1250000, Customers: 140},
		}, nil)

	itemRows := []domain.DimensionRow{
		{Value: "DUP-001", Label: "DUPHALAC SYRUP 300ML", SalesY1: 400000, SalesY2: 520000, Variance: 120000, GrowthPct: 30},
	}

	for dimension, limit := range breakdownLimits {
		rows := []domain.DimensionRow{{Value: string(dimension)}}
		if dimension == domain.DimensionItem {
			rows = itemRows
		}
		mockSalesRepo.EXPECT().
			BrandBreakdown(filter, 2024, 2025, dimension, domain.FocusGrowing, limit).
			Return(rows, nil)
	}

	analysis, err := service.BrandAnalysis(profile)

	assert.NoError(t, err)
	assert.Equal(t, "DUP", analysis.Brand)
	assert.Equal(t, domain.FocusGrowing, analysis.Focus)
	assert.Len(t, analysis.Overview, 2)
	assert.Len(t, analysis.Breakdown, 6)
	assert.Equal(t, itemRows, analysis.Breakdown[domain.DimensionItem])
	assert.Equal(t, 1000000.0, analysis.Summary.TotalY1)
	assert.Equal(t, 1250000.0, analysis.Summary.TotalY2)
	assert.Equal(t, 250000.0, analysis.Summary.GrowthValue)
	assert.Equal(t, 25.0, analysis.Summary.GrowthPct)
}

func TestBrandAnalysisOverviewError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := &Service{
		salesRepository: mockSalesRepo,
		cfg:             newTestConfig(),
	}

	profile := domain.QuestionProfile{Brand: "OBG", YearFrom: 2024, YearTo: 2025, Focus: domain.FocusAll}
	filter := domain.BrandFilter{Brand: "OBG"}

	mockSalesRepo.EXPECT().
		BrandOverview(filter, 2024, 2025).
		Return(nil, assert.AnError)

	for dimension, limit := range breakdownLimits {
		mockSalesRepo.EXPECT().
			BrandBreakdown(filter, 2024, 2025, dimension, domain.FocusAll, limit).
			Return([]domain.DimensionRow{}, nil)
	}

	analysis, err := service.BrandAnalysis(profile)

	assert.Error(t, err)
	assert.Nil(t, analysis)
	assert.Contains(t, err.Error(), "building brand analysis for OBG")
}

func TestSummarizeOverview(t *testing.T) {
	tests := []struct {
		name     string
		overview []domain.YearTotals
		expected domain.BrandAnalysisSummary
	}{
		{
			name: "both years present",
			overview: []domain.YearTotals{
				{Year: 2024, TotalSales: 800000},
				{Year: 2025, TotalSales: 600000},
			},
			expected: domain.BrandAnalysisSummary{
				TotalY1:     800000,
				TotalY2:     600000,
				GrowthValue: -200000,
				GrowthPct:   -25,
			},
		},
		{
			name: "no sales in the first year leaves the percentage unset",
			overview: []domain.YearTotals{
				{Year: 2025, TotalSales: 50000},
			},
			expected: domain.BrandAnalysisSummary{
				TotalY2:     50000,
				GrowthValue: 50000,
			},
		},
		{
			name:     "empty overview",
			overview: nil,
			expected: domain.BrandAnalysisSummary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, summarizeOverview(tt.overview, 2024, 2025))
		})
	}
}
