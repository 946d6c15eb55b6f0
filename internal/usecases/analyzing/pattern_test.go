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

// monthSeries builds consecutive monthly points starting at the given month.
func monthSeries(start time.Time, sales []float64) []domain.MonthPoint {
	series := make([]domain.MonthPoint, len(sales))
	for i, value := range sales {
		series[i] = domain.MonthPoint{
			Month: start.AddDate(0, i, 0).Format("2006-01"),
			Sales: value,
		}
	}

	return series
}

// seasonalCycle peaks in August, with a smaller peak in March. Repeating it
// twice gives a two-year series that correlates at lag 12 but not at 3 or 6.
var seasonalCycle = []float64{10, 20, 80, 40, 10, 15, 25, 90, 50, 20, 12, 18}

func TestClassifySeries(t *testing.T) {
	jan2023 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2024 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	flat := make([]float64, 12)
	for i := range flat {
		flat[i] = 100
	}

	spiked := make([]float64, 12)
	for i := range spiked {
		spiked[i] = 100
	}
	spiked[8] = 1000

	tests := []struct {
		name     string
		series   []domain.MonthPoint
		validate func(t *testing.T, report *domain.PatternReport)
	}{
		{
			name:   "two points are not enough",
			series: monthSeries(jan2024, []float64{100, 120}),
			validate: func(t *testing.T, report *domain.PatternReport) {
				assert.Equal(t, domain.PatternInsufficient, report.Pattern)
				assert.Equal(t, "Need more history for analysis.", report.PlanningImplication)
			},
		},
		{
			name:   "flat series is stable",
			series: monthSeries(jan2024, flat),
			validate: func(t *testing.T, report *domain.PatternReport) {
				assert.Equal(t, domain.PatternStable, report.Pattern)
				assert.Equal(t, 0.0, report.CV)
				assert.Equal(t, 100.0, report.MeanSales)
				assert.Equal(t, 0.0, report.StdSales)
				assert.False(t, report.IsSeasonal)
				assert.False(t, report.HasAnomalies)
				assert.False(t, report.HasTrend)
				assert.Equal(t, "none", report.TrendDirection)
				assert.Equal(t, "Predictable demand. Automate replenishment.", report.PlanningImplication)
			},
		},
		{
			name:   "repeated yearly cycle is seasonal at lag 12",
			series: monthSeries(jan2023, append(append([]float64{}, seasonalCycle...), seasonalCycle...)),
			validate: func(t *testing.T, report *domain.PatternReport) {
				assert.Equal(t, domain.PatternSeasonal, report.Pattern)
				assert.True(t, report.IsSeasonal)
				assert.Equal(t, 12, report.SeasonalLag)
				assert.False(t, report.HasAnomalies)
				assert.Equal(t, []string{"08", "03", "09"}, report.PeakMonths)
				assert.Equal(t, "Stock up 2 months prior to peak (08).", report.PlanningImplication)
			},
		},
		{
			name:   "single spike classifies strange",
			series: monthSeries(jan2024, spiked),
			validate: func(t *testing.T, report *domain.PatternReport) {
				assert.Equal(t, domain.PatternSpike, report.Pattern)
				assert.True(t, report.HasAnomalies)
				assert.Equal(t, 1, report.AnomalyCount)
				assert.False(t, report.IsSeasonal)
				assert.Equal(t, "Investigate cause (Promo? OOS?). Exclude from forecast.", report.PlanningImplication)
			},
		},
		{
			name:   "choppy series without outliers is fluctuating",
			series: monthSeries(jan2024, []float64{100, 30, 170, 60, 210, 20, 140, 80}),
			validate: func(t *testing.T, report *domain.PatternReport) {
				assert.Equal(t, domain.PatternFluctuating, report.Pattern)
				assert.False(t, report.HasAnomalies)
				assert.Equal(t, "Maintain higher safety stock to buffer volatility.", report.PlanningImplication)
			},
		},
		{
			name:   "mild swings are moderate variation",
			series: monthSeries(jan2024, []float64{100, 140, 80, 120, 90, 130, 110, 70}),
			validate: func(t *testing.T, report *domain.PatternReport) {
				assert.Equal(t, domain.PatternModerate, report.Pattern)
				assert.Equal(t, "Monitor variance.", report.PlanningImplication)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := classifySeries("DUP-001", tt.series)

			assert.Equal(t, "DUP-001", report.ItemCode)
			tt.validate(t, report)
		})
	}
}

func TestAnomalyIndices(t *testing.T) {
	tests := []struct {
		name      string
		sales     []float64
		mean      float64
		stdDev    float64
		threshold float64
		expected  []int
	}{
		{
			name:      "flat series has no anomalies",
			sales:     []float64{100, 100, 100},
			mean:      100,
			stdDev:    0,
			threshold: 2.5,
			expected:  nil,
		},
		{
			name:      "spike crosses the threshold",
			sales:     []float64{100, 100, 100, 100, 100, 100, 100, 100, 1000, 100, 100, 100},
			mean:      175,
			stdDev:    248.7468,
			threshold: 2.5,
			expected:  []int{8},
		},
		{
			name:      "nothing crosses a high threshold",
			sales:     []float64{100, 100, 100, 100, 100, 100, 100, 100, 1000, 100, 100, 100},
			mean:      175,
			stdDev:    248.7468,
			threshold: 4,
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, anomalyIndices(tt.sales, tt.mean, tt.stdDev, tt.threshold))
		})
	}
}

func TestClassifyPatternDefaultsToTwelveMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplyRepo := mocks.NewMockSupplyRepository(ctrl)
	service := &Service{
		supplyRepository: mockSupplyRepo,
		cfg:              newTestConfig(),
	}

	referenceDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	flat := monthSeries(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100})

	mockSupplyRepo.EXPECT().
		MonthlySeries(domain.CoverageItem, "DUP-001", false, utils.MonthsAgo(referenceDate, 12)).
		Return(flat, nil)

	report, err := service.classifyPatternWithDate(domain.CoverageItem, "DUP-001", false, 0, referenceDate)

	assert.NoError(t, err)
	assert.Equal(t, domain.PatternStable, report.Pattern)
	assert.Len(t, report.MonthlyData, 12)
}

func TestSeasonalItemsKeepsOnlySeasonal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplyRepo := mocks.NewMockSupplyRepository(ctrl)
	service := &Service{
		supplyRepository: mockSupplyRepo,
		cfg:              newTestConfig(),
	}

	referenceDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	since := utils.MonthsAgo(referenceDate, 24)
	filter := domain.BrandFilter{Brand: "DUP"}
	jan2023 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	mockSupplyRepo.EXPECT().
		SeasonalCandidates(filter, since, 50000.0).
		Return([]domain.SeasonalItem{
			{ItemCode: "DUP-010", ItemDesc: "VITAMIN D DROPS", TotalSales: 180000},
			{ItemCode: "DUP-011", ItemDesc: "SALINE SPRAY", TotalSales: 90000},
		}, nil)

	seasonalSeries := monthSeries(jan2023, append(append([]float64{}, seasonalCycle...), seasonalCycle...))
	flatSeries := monthSeries(jan2023, make([]float64, 24))
	for i := range flatSeries {
		flatSeries[i].Sales = 100
	}

	mockSupplyRepo.EXPECT().
		MonthlySeries(domain.CoverageItem, "DUP-010", false, since).
		Return(seasonalSeries, nil)
	mockSupplyRepo.EXPECT().
		MonthlySeries(domain.CoverageItem, "DUP-011", false, since).
		Return(flatSeries, nil)

	// Zero thresholds fall back to 50000 over 24 months.
	items, err := service.seasonalItemsWithDate(filter, 0, 0, referenceDate)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "DUP-010", items[0].ItemCode)
	assert.Equal(t, domain.PatternSeasonal, items[0].Pattern)
	assert.Equal(t, "08, 03, 09", items[0].PeakMonths)
	assert.Equal(t, 12, items[0].SeasonalLag)
}

func TestAnomaliesGroupsPerItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplyRepo := mocks.NewMockSupplyRepository(ctrl)
	service := &Service{
		supplyRepository: mockSupplyRepo,
		cfg:              newTestConfig(),
	}

	referenceDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	filter := domain.BrandFilter{Brand: "DUP"}
	jan2024 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	itemPoints := func(code string, sales []float64) []domain.ItemMonthPoint {
		points := make([]domain.ItemMonthPoint, len(sales))
		for i, value := range sales {
			points[i] = domain.ItemMonthPoint{
				ItemCode: code,
				ItemDesc: code + " DESC",
				Brand:    "DUP",
				Month:    jan2024.AddDate(0, i, 0).Format("2006-01"),
				Sales:    value,
			}
		}
		return points
	}

	spiked := itemPoints("DUP-001", []float64{100, 100, 100, 100, 100, 100, 100, 100, 1000, 100, 100, 100})
	dropped := itemPoints("DUP-002", []float64{100, 100, 100, 100, 100, 10, 100, 100, 100, 100, 100, 100})
	short := itemPoints("DUP-003", []float64{100, 100})

	var points []domain.ItemMonthPoint
	points = append(points, spiked...)
	points = append(points, dropped...)
	points = append(points, short...)

	mockSupplyRepo.EXPECT().
		ItemMonthlySeries(filter, utils.MonthsAgo(referenceDate, 12)).
		Return(points, nil)

	anomalies, err := service.anomaliesWithDate(filter, 12, 2.5, referenceDate)

	assert.NoError(t, err)
	assert.Len(t, anomalies, 2)

	assert.Equal(t, "DUP-001", anomalies[0].ItemCode)
	assert.Equal(t, "2024-09", anomalies[0].Month)
	assert.Equal(t, "Spike", anomalies[0].Type)
	assert.Equal(t, 1000.0, anomalies[0].Sales)
	assert.Equal(t, 3.32, anomalies[0].ZScore)
	assert.Equal(t, 471.43, anomalies[0].DeviationPct)

	assert.Equal(t, "DUP-002", anomalies[1].ItemCode)
	assert.Equal(t, "2024-06", anomalies[1].Month)
	assert.Equal(t, "Drop", anomalies[1].Type)
	assert.Equal(t, 3.32, anomalies[1].ZScore)
	assert.Equal(t, -89.19, anomalies[1].DeviationPct)
}

func TestRunRateStabilityBands(t *testing.T) {
	referenceDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	jul2024 := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		sales    []float64
		expected string
	}{
		{
			name:     "two months are not enough",
			sales:    []float64{100, 120},
			expected: domain.StabilityInsufficient,
		},
		{
			name:     "flat run rate is very stable",
			sales:    []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100},
			expected: domain.StabilityVeryStable,
		},
		{
			name:     "small swings are stable",
			sales:    []float64{100, 140, 80, 120, 90, 130, 110, 70},
			expected: domain.StabilityStable,
		},
		{
			name:     "wider swings are moderate",
			sales:    []float64{100, 150, 50, 140, 60, 130, 70, 120},
			expected: domain.StabilityModerate,
		},
		{
			name:     "large swings are unstable",
			sales:    []float64{100, 30, 170, 60, 210, 20, 140, 80},
			expected: domain.StabilityUnstable,
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

			mockSupplyRepo.EXPECT().
				MonthlySeries(domain.CoverageBrand, "DUP", false, utils.MonthsAgo(referenceDate, 12)).
				Return(monthSeries(jul2024, tt.sales), nil)

			report, err := service.runRateStabilityWithDate(domain.CoverageBrand, "DUP", false, 12, referenceDate)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, report.Stability)
			assert.Equal(t, "DUP", report.Entity)
		})
	}
}

func TestRunRateStabilityStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplyRepo := mocks.NewMockSupplyRepository(ctrl)
	service := &Service{
		supplyRepository: mockSupplyRepo,
		cfg:              newTestConfig(),
	}

	referenceDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	jul2024 := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	mockSupplyRepo.EXPECT().
		MonthlySeries(domain.CoverageBrand, "DUP", false, utils.MonthsAgo(referenceDate, 12)).
		Return(monthSeries(jul2024, []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100}), nil)

	report, err := service.runRateStabilityWithDate(domain.CoverageBrand, "DUP", false, 12, referenceDate)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, report.CV)
	assert.Equal(t, 100.0, report.MeanMonthlySales)
	assert.Equal(t, 0.0, report.StdMonthlySales)
	assert.Equal(t, 100.0, report.MinMonthlySales)
	assert.Equal(t, 100.0, report.MaxMonthlySales)
	assert.Len(t, report.MonthlyData, 12)
}

func TestOverstockRisk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplyRepo := mocks.NewMockSupplyRepository(ctrl)
	service := &Service{
		supplyRepository: mockSupplyRepo,
		cfg:              newTestConfig(),
	}

	referenceDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	filter := domain.BrandFilter{Brand: "DUP"}

	quiet40 := referenceDate.AddDate(0, 0, -40)
	quiet35 := referenceDate.AddDate(0, 0, -35)
	recent5 := referenceDate.AddDate(0, 0, -5)

	mockSupplyRepo.EXPECT().
		CustomerLoadings(filter, utils.MonthsAgo(referenceDate, 12), utils.DaysAgo(referenceDate, 90)).
		Return([]domain.CustomerLoading{
			{CustomerName: "HEAVY LOADER", HistoricalTotal: 9000, RecentTotal: 9000, LastPurchase: &quiet40},
			{CustomerName: "EXTREME LOADER", HistoricalTotal: 900, RecentTotal: 3000, LastPurchase: &quiet35},
			{CustomerName: "STILL BUYING", HistoricalTotal: 9000, RecentTotal: 9000, LastPurchase: &recent5},
			{CustomerName: "NORMAL LOADER", HistoricalTotal: 9000, RecentTotal: 4000, LastPurchase: &quiet40},
			{CustomerName: "NO DATE", HistoricalTotal: 9000, RecentTotal: 9000},
		}, nil)

	risks, err := service.overstockRiskWithDate(filter, 90, referenceDate)

	assert.NoError(t, err)
	assert.Len(t, risks, 2)

	// Sorted by stock load index, heaviest overload first.
	assert.Equal(t, "EXTREME LOADER", risks[0].CustomerName)
	assert.Equal(t, 10.0, risks[0].StockLoadIndex)
	assert.Equal(t, 100.0, risks[0].AvgMonthlyBuy)

	assert.Equal(t, "HEAVY LOADER", risks[1].CustomerName)
	assert.Equal(t, 3.0, risks[1].StockLoadIndex)
	assert.Equal(t, 1000.0, risks[1].AvgMonthlyBuy)
}

func TestItemHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	mockCoverageRepo := mocks.NewMockCoverageRepository(ctrl)
	mockSupplyRepo := mocks.NewMockSupplyRepository(ctrl)
	service := &Service{
		salesRepository:    mockSalesRepo,
		coverageRepository: mockCoverageRepo,
		supplyRepository:   mockSupplyRepo,
		cfg:                newTestConfig(),
	}

	referenceDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	jul2024 := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	lastSale := referenceDate.AddDate(0, 0, -3)
	recentSince := utils.DaysAgo(referenceDate, 30)

	mockSalesRepo.EXPECT().
		FindItemByCode("DUP-001").
		Return(&domain.ItemRef{Code: "DUP-001", Desc: "DUPHALAC SYRUP 300ML", Brand: "DUP"}, nil)

	mockSupplyRepo.EXPECT().
		ItemWindowStats("DUP-001", utils.MonthsAgo(referenceDate, 12), nil).
		Return(&domain.WindowStats{Sales: 240000, Customers: 35, LastSale: &lastSale}, nil)

	for _, months := range []int{12, 24, 36} {
		mockCoverageRepo.EXPECT().
			WindowStats(domain.CoverageItem, "DUP-001", false, utils.MonthsAgo(referenceDate, months), "").
			Return(&domain.CoverageWindow{Count: months}, nil)
	}

	flat := monthSeries(jul2024, []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100})
	mockSupplyRepo.EXPECT().
		MonthlySeries(domain.CoverageItem, "DUP-001", false, utils.MonthsAgo(referenceDate, 12)).
		Return(flat, nil).
		Times(2)

	mockSupplyRepo.EXPECT().
		ChannelSplit("DUP-001", utils.MonthsAgo(referenceDate, 12), recentSince).
		Return([]domain.ChannelStatus{
			{Channel: "PHARMACY", RecentSales: 2000, HistoricalSales: 9000},
		}, nil)

	mockSupplyRepo.EXPECT().
		ItemWindowStats("DUP-001", utils.DaysAgo(referenceDate, 90), &recentSince).
		Return(&domain.WindowStats{Sales: 4000, Customers: 10}, nil)
	mockSupplyRepo.EXPECT().
		ItemWindowStats("DUP-001", recentSince, nil).
		Return(&domain.WindowStats{Sales: 3000, Customers: 6}, nil)

	mockSupplyRepo.EXPECT().
		OOSCandidates(domain.BrandFilter{Brand: "DUP"}, utils.MonthsAgo(referenceDate, 12), recentSince, 10000.0).
		Return([]domain.OOSItem{
			{ItemCode: "DUP-009", HistoricalSales: 60000, RecentSales: 5500},
			{ItemCode: "DUP-001", HistoricalSales: 120000, RecentSales: 0},
		}, nil)

	health, err := service.itemHealthCheckWithDate("DUP-001", referenceDate)

	assert.NoError(t, err)
	assert.Equal(t, "DUP-001", health.ItemCode)
	assert.Equal(t, "DUPHALAC SYRUP 300ML", health.ItemDesc)
	assert.Equal(t, "DUP", health.Brand)
	assert.Equal(t, 240000.0, health.TotalSales12M)
	assert.Equal(t, 35, health.CustomerCount)
	assert.Len(t, health.Coverage, 3)
	assert.Equal(t, domain.PatternStable, health.Pattern.Pattern)
	assert.Equal(t, domain.StabilityVeryStable, health.Stability.Stability)
	assert.Len(t, health.Channels, 1)
	assert.Equal(t, domain.DeclineInconclusive, health.DeclineCause)
	assert.NotNil(t, health.OOSRisk)
	assert.Equal(t, domain.OOSRiskHigh, health.OOSRisk.RiskLevel)
}

func TestItemHealthCheckUnknownItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := &Service{
		salesRepository: mockSalesRepo,
		cfg:             newTestConfig(),
	}

	mockSalesRepo.EXPECT().
		FindItemByCode("NOPE-404").
		Return(nil, nil)

	health, err := service.itemHealthCheckWithDate("NOPE-404", time.Now())

	assert.NoError(t, err)
	assert.Nil(t, health)
}
