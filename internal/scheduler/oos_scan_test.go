package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/melsayed/sales-analyst-api/infrastructure/repository/mocks"
	"github.com/melsayed/sales-analyst-api/internal/domain"
	analyzingmocks "github.com/melsayed/sales-analyst-api/internal/usecases/analyzing/mocks"
)

func TestOOSScanService_scanBrands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := analyzingmocks.NewMockAnalyzingService(ctrl)
	service := &OOSScanService{
		config:   OOSScanConfig{DaysThreshold: 30, MinHistoricalSales: 10000},
		analyzer: mockAnalyzer,
	}

	mockAnalyzer.EXPECT().
		DetectOOS(domain.BrandFilter{Brand: "DUP"}, 30, 10000.0).
		Return([]domain.OOSItem{
			{ItemCode: "DUP-100-TAB", Brand: "DUP", DaysSinceSale: 52, RiskLevel: domain.OOSRiskHigh},
			{ItemCode: "DUP-200-SYR", Brand: "DUP", DaysSinceSale: 31, RiskLevel: domain.OOSRiskMedium},
		}, nil)
	mockAnalyzer.EXPECT().
		DetectOOS(domain.BrandFilter{Brand: "OBG"}, 30, 10000.0).
		Return(nil, assert.AnError)

	flagged, highRisk := service.scanBrands([]string{"DUP", "OBG"})

	assert.Equal(t, 2, flagged)
	assert.Equal(t, 1, highRisk)
}

func TestOOSScanService_scanAllBrands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	mockAnalyzer := analyzingmocks.NewMockAnalyzingService(ctrl)
	service := &OOSScanService{
		config:    OOSScanConfig{CronSchedule: "0 6 * * *", DaysThreshold: 30, MinHistoricalSales: 10000, Enabled: true},
		salesRepo: mockSalesRepo,
		analyzer:  mockAnalyzer,
	}

	mockSalesRepo.EXPECT().ListBrands().Return([]string{"DUP"}, nil)
	mockAnalyzer.EXPECT().
		DetectOOS(domain.BrandFilter{Brand: "DUP"}, 30, 10000.0).
		Return([]domain.OOSItem{}, nil)

	service.scanAllBrands()

	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestOOSScanService_scanAllBrandsListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := &OOSScanService{
		config:    OOSScanConfig{CronSchedule: "0 6 * * *", DaysThreshold: 30, MinHistoricalSales: 10000, Enabled: true},
		salesRepo: mockSalesRepo,
	}

	mockSalesRepo.EXPECT().ListBrands().Return(nil, assert.AnError)

	service.scanAllBrands()

	assert.True(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestOOSScanService_scanSkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := &OOSScanService{
		config:      OOSScanConfig{CronSchedule: "0 6 * * *", Enabled: true},
		salesRepo:   mockSalesRepo,
		syncRunning: true,
	}

	// No ListBrands expectation: an overlapping trigger must not start a
	// second sweep.
	service.scanAllBrands()

	assert.True(t, service.syncRunning)
}
