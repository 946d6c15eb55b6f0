package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/melsayed/sales-analyst-api/infrastructure/repository/mocks"
	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/pkg/utils"
)

func TestDetectOOSRiskLevels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplyRepo := mocks.NewMockSupplyRepository(ctrl)
	service := &Service{
		supplyRepository: mockSupplyRepo,
		cfg:              newTestConfig(),
	}

	referenceDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	lastSale := referenceDate.AddDate(0, 0, -45)

	mockSupplyRepo.EXPECT().
		OOSCandidates(
			domain.BrandFilter{Brand: "DUP"},
			utils.MonthsAgo(referenceDate, 12),
			utils.DaysAgo(referenceDate, 30),
			10000.0,
		).
		Return([]domain.OOSItem{
			{ItemCode: "DUP-001", HistoricalSales: 120000, RecentSales: 0, LastSaleDate: &lastSale},
			{ItemCode: "DUP-002", HistoricalSales: 60000, RecentSales: 1200},
			{ItemCode: "DUP-003", HistoricalSales: 24000, RecentSales: 900},
		}, nil)

	// Zero thresholds fall back to the configured scan defaults.
	items, err := service.detectOOSWithDate(domain.BrandFilter{Brand: "DUP"}, 0, 0, referenceDate)

	assert.NoError(t, err)
	assert.Len(t, items, 2)

	assert.Equal(t, "DUP-001", items[0].ItemCode)
	assert.Equal(t, domain.OOSRiskHigh, items[0].RiskLevel)
	assert.Equal(t, 10000.0, items[0].AvgMonthlySales)
	assert.Equal(t, 45, items[0].DaysSinceSale)
	assert.Equal(t, "Increase forecast by 20% to recover lost sales", items[0].ForecastSuggestion)

	assert.Equal(t, "DUP-002", items[1].ItemCode)
	assert.Equal(t, domain.OOSRiskMedium, items[1].RiskLevel)
	assert.Equal(t, 5000.0, items[1].AvgMonthlySales)
	assert.Equal(t, 30, items[1].DaysSinceSale)
	assert.Equal(t, "Review stock levels and pending orders", items[1].ForecastSuggestion)
}

func TestClassifyDeclineCause(t *testing.T) {
	referenceDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	recentSince := utils.DaysAgo(referenceDate, 30)

	tests := []struct {
		name       string
		historical domain.WindowStats
		recent     domain.WindowStats
		expected   string
	}{
		{
			name:     "no data in either window",
			expected: domain.DeclineNoData,
		},
		{
			name:       "sudden zero after strong sales",
			historical: domain.WindowStats{Sales: 5000, Customers: 10},
			expected:   domain.DeclineSupplyOOS,
		},
		{
			name:       "all accounts stopped",
			historical: domain.WindowStats{Sales: 800, Customers: 8},
			expected:   domain.DeclineSupplyStoppage,
		},
		{
			name:       "sales halved but still moving",
			historical: domain.WindowStats{Sales: 4000, Customers: 10},
			recent:     domain.WindowStats{Sales: 1500, Customers: 4},
			expected:   domain.DeclineDemand,
		},
		{
			name:       "mild dip",
			historical: domain.WindowStats{Sales: 4000, Customers: 10},
			recent:     domain.WindowStats{Sales: 3000, Customers: 6},
			expected:   domain.DeclineInconclusive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSupplyRepo := mocks.NewMockSupplyRepository(ctrl)
			service := &Service{
				supplyRepository: mockSupplyRepo,
				cfg:              newTestConfig(),
			}

			historical := tt.historical
			recent := tt.recent

			mockSupplyRepo.EXPECT().
				ItemWindowStats("DUP-001", utils.DaysAgo(referenceDate, 90), &recentSince).
				Return(&historical, nil)
			mockSupplyRepo.EXPECT().
				ItemWindowStats("DUP-001", recentSince, nil).
				Return(&recent, nil)

			cause, err := service.classifyDeclineCauseWithDate("DUP-001", referenceDate)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cause)
		})
	}
}

func TestChannelOOS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplyRepo := mocks.NewMockSupplyRepository(ctrl)
	service := &Service{
		supplyRepository: mockSupplyRepo,
		cfg:              newTestConfig(),
	}

	referenceDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	mockSupplyRepo.EXPECT().
		ChannelSplit("DUP-001", utils.MonthsAgo(referenceDate, 12), utils.DaysAgo(referenceDate, 30)).
		Return([]domain.ChannelStatus{
			{Channel: "PHARMACY", RecentSales: 2500, HistoricalSales: 10000},
			{Channel: "HOSPITAL", RecentSales: 0, HistoricalSales: 8000},
			{Channel: "ONLINE", RecentSales: 300, HistoricalSales: 0},
		}, nil)

	statuses, err := service.channelOOSWithDate("DUP-001", 30, referenceDate)

	assert.NoError(t, err)
	assert.Len(t, statuses, 2)

	assert.Equal(t, "PHARMACY", statuses[0].Channel)
	assert.False(t, statuses[0].OOSRisk)
	assert.Equal(t, 75.0, statuses[0].SalesDropPct)

	assert.Equal(t, "HOSPITAL", statuses[1].Channel)
	assert.True(t, statuses[1].OOSRisk)
	assert.Equal(t, 100.0, statuses[1].SalesDropPct)
}

func TestWidespreadStoppageDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplyRepo := mocks.NewMockSupplyRepository(ctrl)
	service := &Service{
		supplyRepository: mockSupplyRepo,
		cfg:              newTestConfig(),
	}

	referenceDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	mockSupplyRepo.EXPECT().
		Stoppages(
			domain.BrandFilter{Brand: "DUP"},
			utils.MonthsAgo(referenceDate, 12),
			utils.DaysAgo(referenceDate, 30),
			5,
		).
		Return([]domain.Stoppage{
			{ItemCode: "DUP-004", StoppedAccounts: 7, LostSalesPotential: 43000},
		}, nil)

	stoppages, err := service.widespreadStoppageWithDate(domain.BrandFilter{Brand: "DUP"}, 0, 0, referenceDate)

	assert.NoError(t, err)
	assert.Len(t, stoppages, 1)
	assert.Equal(t, 7, stoppages[0].StoppedAccounts)
}

func TestEstimateOOSImpact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplyRepo := mocks.NewMockSupplyRepository(ctrl)
	service := &Service{
		supplyRepository: mockSupplyRepo,
		cfg:              newTestConfig(),
	}

	referenceDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	since := utils.MonthsAgo(referenceDate, 12)

	mockSupplyRepo.EXPECT().
		DailyAverage("DUP-001", since).
		Return(500.0, nil)
	mockSupplyRepo.EXPECT().
		ItemWindowStats("DUP-001", since, nil).
		Return(&domain.WindowStats{Sales: 180000, Customers: 12}, nil)

	impact, err := service.estimateOOSImpactWithDate("DUP-001", 14, referenceDate)

	assert.NoError(t, err)
	assert.Equal(t, 14, impact.OOSDays)
	assert.Equal(t, 7000.0, impact.EstimatedLostSales)
	assert.Equal(t, 12, impact.AffectedCustomers)
	assert.Equal(t, 180000.0, impact.AnnualSales)
}

func TestSupplyChainDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplyRepo := mocks.NewMockSupplyRepository(ctrl)
	mockCoverageRepo := mocks.NewMockCoverageRepository(ctrl)
	service := &Service{
		coverageRepository: mockCoverageRepo,
		supplyRepository:   mockSupplyRepo,
		cfg:                newTestConfig(),
	}

	filter := domain.BrandFilter{Brand: "DUP"}

	mockSupplyRepo.EXPECT().
		OOSCandidates(filter, gomock.Any(), gomock.Any(), 10000.0).
		Return([]domain.OOSItem{
			{ItemCode: "DUP-001", HistoricalSales: 120000, RecentSales: 0},
		}, nil)

	mockSupplyRepo.EXPECT().
		Stoppages(filter, gomock.Any(), gomock.Any(), 5).
		Return([]domain.Stoppage{{ItemCode: "DUP-004", StoppedAccounts: 6}}, nil)

	mockCoverageRepo.EXPECT().
		LostAccounts(domain.CoverageBrand, "DUP", false, gomock.Any(), gomock.Any(), uint64(10)).
		Return([]domain.LostAccount{{Name: "CITY PHARMACY"}}, nil)

	mockSupplyRepo.EXPECT().
		SeasonalCandidates(filter, gomock.Any(), 50000.0).
		Return(nil, nil)

	mockSupplyRepo.EXPECT().
		ItemMonthlySeries(filter, gomock.Any()).
		Return(nil, nil)

	report, err := service.SupplyChainDashboard(filter, 0)

	assert.NoError(t, err)
	assert.Equal(t, "DUP", report.Brand)
	assert.Len(t, report.OOSItems, 1)
	assert.Equal(t, domain.OOSRiskHigh, report.OOSItems[0].RiskLevel)
	assert.Len(t, report.SupplyIssues, 1)
	assert.Len(t, report.CoverageLoss, 1)
	assert.Empty(t, report.SeasonalItems)
	assert.Empty(t, report.Anomalies)
}
