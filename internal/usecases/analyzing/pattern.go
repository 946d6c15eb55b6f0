package analyzing

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/pkg/utils"
)

const (
	seasonalCorrelation = 0.7
	trendCorrelation    = 0.7
	anomalyZScore       = 2.5
)

// ClassifyPattern labels a monthly sales series as stable, seasonal,
// fluctuating or strange, with the planning advice that follows from it.
func (s *Service) ClassifyPattern(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	months int,
) (*domain.PatternReport, error) {
	return s.classifyPatternWithDate(level, entity, masked, months, time.Now())
}

func (s *Service) classifyPatternWithDate(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	months int,
	now time.Time,
) (*domain.PatternReport, error) {
	if months <= 0 {
		months = 12
	}

	series, err := s.supplyRepository.MonthlySeries(level, entity, masked, utils.MonthsAgo(now, months))
	if err != nil {
		return nil, fmt.Errorf("reading monthly series for %s: %w", entity, err)
	}

	return classifySeries(entity, series), nil
}

// classifySeries is the pure half of the pattern analysis: everything after
// the series has been fetched.
func classifySeries(entity string, series []domain.MonthPoint) *domain.PatternReport {
	report := &domain.PatternReport{
		ItemCode:       entity,
		TrendDirection: "none",
		MonthlyData:    series,
	}

	if len(series) < 3 {
		report.Pattern = domain.PatternInsufficient
		report.PlanningImplication = "Need more history for analysis."
		return report
	}

	sales := make([]float64, len(series))
	for i, point := range series {
		sales[i] = point.Sales
	}

	mean, _ := stats.Mean(sales)
	stdDev, _ := stats.StandardDeviationPopulation(sales)

	cv := 0.0
	if mean > 0 {
		cv = stdDev / mean
	}

	report.CV = math.Round(cv*1000) / 1000
	report.MeanSales = utils.RoundWithTwoDecimalPlace(mean)
	report.StdSales = utils.RoundWithTwoDecimalPlace(stdDev)

	// Seasonality: the head of the series correlates with its tail at the
	// period length. Shortest period wins.
	if len(sales) >= 12 {
		for _, lag := range []int{3, 6, 12} {
			if len(sales) < lag*2 {
				continue
			}

			correlation, err := stats.Pearson(sales[:lag], sales[len(sales)-lag:])
			if err == nil && correlation > seasonalCorrelation {
				report.IsSeasonal = true
				report.SeasonalLag = lag
				break
			}
		}
	}

	anomalies := anomalyIndices(sales, mean, stdDev, anomalyZScore)
	report.HasAnomalies = len(anomalies) > 0
	report.AnomalyCount = len(anomalies)

	if len(sales) >= 6 {
		indices := make([]float64, len(sales))
		for i := range indices {
			indices[i] = float64(i)
		}

		correlation, err := stats.Pearson(indices, sales)
		if err == nil && math.Abs(correlation) >= trendCorrelation {
			report.HasTrend = true
			if correlation > 0 {
				report.TrendDirection = "increasing"
			} else {
				report.TrendDirection = "decreasing"
			}
		}
	}

	if report.IsSeasonal && len(series) >= 12 {
		report.PeakMonths = peakMonths(series, 3)
	}

	switch {
	case report.HasAnomalies:
		anomalousTotal := 0.0
		for _, idx := range anomalies {
			anomalousTotal += sales[idx]
		}
		if anomalousTotal/float64(len(anomalies)) > mean {
			report.Pattern = domain.PatternSpike
		} else {
			report.Pattern = domain.PatternDrop
		}
	case report.IsSeasonal:
		report.Pattern = domain.PatternSeasonal
	case cv < 0.2:
		report.Pattern = domain.PatternStable
	case cv > 0.5:
		report.Pattern = domain.PatternFluctuating
	default:
		report.Pattern = domain.PatternModerate
	}

	report.PlanningImplication = planningImplication(report.Pattern, report.PeakMonths)

	return report
}

// anomalyIndices returns the positions whose z-score magnitude crosses the
// threshold. A flat series has none.
func anomalyIndices(sales []float64, mean, stdDev, threshold float64) []int {
	if stdDev == 0 {
		return nil
	}

	var indices []int
	for i, value := range sales {
		if math.Abs((value-mean)/stdDev) > threshold {
			indices = append(indices, i)
		}
	}

	return indices
}

// peakMonths averages sales by calendar month and returns the strongest ones
// as two-digit tokens ("01".."12").
func peakMonths(series []domain.MonthPoint, top int) []string {
	totals := map[string]float64{}
	counts := map[string]int{}

	for _, point := range series {
		if len(point.Month) < 7 {
			continue
		}

		month := point.Month[5:7]
		totals[month] += point.Sales
		counts[month]++
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}

	sort.Slice(months, func(i, j int) bool {
		averageI := totals[months[i]] / float64(counts[months[i]])
		averageJ := totals[months[j]] / float64(counts[months[j]])
		if averageI != averageJ {
			return averageI > averageJ
		}
		return months[i] < months[j]
	})

	if len(months) > top {
		months = months[:top]
	}

	return months
}

func planningImplication(pattern string, peaks []string) string {
	switch pattern {
	case domain.PatternStable:
		return "Predictable demand. Automate replenishment."
	case domain.PatternSeasonal:
		peak := "n/a"
		if len(peaks) > 0 {
			peak = peaks[0]
		}
		return fmt.Sprintf("Stock up 2 months prior to peak (%s).", peak)
	case domain.PatternFluctuating:
		return "Maintain higher safety stock to buffer volatility."
	case domain.PatternSpike, domain.PatternDrop:
		return "Investigate cause (Promo? OOS?). Exclude from forecast."
	default:
		return "Monitor variance."
	}
}

// SeasonalItems scans a brand's bigger items and keeps the ones whose series
// classifies Seasonal.
func (s *Service) SeasonalItems(filter domain.BrandFilter, minSales float64, months int) ([]domain.SeasonalItem, error) {
	return s.seasonalItemsWithDate(filter, minSales, months, time.Now())
}

func (s *Service) seasonalItemsWithDate(
	filter domain.BrandFilter,
	minSales float64,
	months int,
	now time.Time,
) ([]domain.SeasonalItem, error) {
	if minSales <= 0 {
		minSales = 50000
	}
	if months <= 0 {
		months = 24
	}
	since := utils.MonthsAgo(now, months)

	candidates, err := s.supplyRepository.SeasonalCandidates(filter, since, minSales)
	if err != nil {
		return nil, fmt.Errorf("listing seasonal candidates: %w", err)
	}

	var seasonal []domain.SeasonalItem
	for _, candidate := range candidates {
		series, err := s.supplyRepository.MonthlySeries(domain.CoverageItem, candidate.ItemCode, false, since)
		if err != nil {
			return nil, fmt.Errorf("reading series for %s: %w", candidate.ItemCode, err)
		}

		report := classifySeries(candidate.ItemCode, series)
		if !report.IsSeasonal {
			continue
		}

		candidate.Pattern = report.Pattern
		candidate.PeakMonths = strings.Join(report.PeakMonths, ", ")
		candidate.CV = report.CV
		candidate.SeasonalLag = report.SeasonalLag
		seasonal = append(seasonal, candidate)
	}

	return seasonal, nil
}

// Anomalies reports every month where an item's sales left its normal band.
func (s *Service) Anomalies(filter domain.BrandFilter, months int, threshold float64) ([]domain.Anomaly, error) {
	return s.anomaliesWithDate(filter, months, threshold, time.Now())
}

func (s *Service) anomaliesWithDate(
	filter domain.BrandFilter,
	months int,
	threshold float64,
	now time.Time,
) ([]domain.Anomaly, error) {
	if months <= 0 {
		months = 12
	}
	if threshold <= 0 {
		threshold = anomalyZScore
	}

	points, err := s.supplyRepository.ItemMonthlySeries(filter, utils.MonthsAgo(now, months))
	if err != nil {
		return nil, fmt.Errorf("reading item series: %w", err)
	}

	var anomalies []domain.Anomaly
	for start := 0; start < len(points); {
		end := start
		for end < len(points) && points[end].ItemCode == points[start].ItemCode {
			end++
		}

		group := points[start:end]
		start = end

		if len(group) < 3 {
			continue
		}

		sales := make([]float64, len(group))
		for i, point := range group {
			sales[i] = point.Sales
		}

		mean, _ := stats.Mean(sales)
		stdDev, _ := stats.StandardDeviationPopulation(sales)

		for _, idx := range anomalyIndices(sales, mean, stdDev, threshold) {
			anomaly := domain.Anomaly{
				ItemCode: group[idx].ItemCode,
				ItemDesc: group[idx].ItemDesc,
				Brand:    group[idx].Brand,
				Month:    group[idx].Month,
				Sales:    group[idx].Sales,
				ZScore:   utils.RoundWithTwoDecimalPlace(math.Abs((sales[idx] - mean) / stdDev)),
			}

			if sales[idx] > mean {
				anomaly.Type = "Spike"
			} else {
				anomaly.Type = "Drop"
			}

			if mean != 0 {
				anomaly.DeviationPct = utils.RoundWithTwoDecimalPlace((sales[idx] - mean) / mean * 100)
			}

			anomalies = append(anomalies, anomaly)
		}
	}

	return anomalies, nil
}

// RunRateStability grades how steady an entity's monthly sales are.
func (s *Service) RunRateStability(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	months int,
) (*domain.StabilityReport, error) {
	return s.runRateStabilityWithDate(level, entity, masked, months, time.Now())
}

func (s *Service) runRateStabilityWithDate(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	months int,
	now time.Time,
) (*domain.StabilityReport, error) {
	if months <= 0 {
		months = 12
	}

	series, err := s.supplyRepository.MonthlySeries(level, entity, masked, utils.MonthsAgo(now, months))
	if err != nil {
		return nil, fmt.Errorf("reading monthly series for %s: %w", entity, err)
	}

	report := &domain.StabilityReport{Entity: entity}

	if len(series) < 3 {
		report.Stability = domain.StabilityInsufficient
		return report, nil
	}

	sales := make([]float64, len(series))
	for i, point := range series {
		sales[i] = point.Sales
	}

	mean, _ := stats.Mean(sales)
	stdDev, _ := stats.StandardDeviationPopulation(sales)
	minSales, _ := stats.Min(sales)
	maxSales, _ := stats.Max(sales)

	cv := 0.0
	if mean > 0 {
		cv = stdDev / mean
	}

	switch {
	case cv < 0.15:
		report.Stability = domain.StabilityVeryStable
	case cv < 0.30:
		report.Stability = domain.StabilityStable
	case cv < 0.50:
		report.Stability = domain.StabilityModerate
	default:
		report.Stability = domain.StabilityUnstable
	}

	report.CV = math.Round(cv*1000) / 1000
	report.MeanMonthlySales = utils.RoundWithTwoDecimalPlace(mean)
	report.StdMonthlySales = utils.RoundWithTwoDecimalPlace(stdDev)
	report.MinMonthlySales = utils.RoundWithTwoDecimalPlace(minSales)
	report.MaxMonthlySales = utils.RoundWithTwoDecimalPlace(maxSales)
	report.MonthlyData = series

	return report, nil
}

// OverstockRisk flags accounts that loaded far beyond their run-rate and then
// went quiet, a sign of stock stuck on their shelves.
func (s *Service) OverstockRisk(filter domain.BrandFilter, daysThreshold int) ([]domain.OverstockRisk, error) {
	return s.overstockRiskWithDate(filter, daysThreshold, time.Now())
}

func (s *Service) overstockRiskWithDate(filter domain.BrandFilter, daysThreshold int, now time.Time) ([]domain.OverstockRisk, error) {
	if daysThreshold <= 0 {
		daysThreshold = 90
	}

	loadings, err := s.supplyRepository.CustomerLoadings(
		filter,
		utils.MonthsAgo(now, 12),
		utils.DaysAgo(now, daysThreshold),
	)
	if err != nil {
		return nil, fmt.Errorf("reading customer loadings: %w", err)
	}

	windowMonths := float64(daysThreshold) / 30.0
	historicalMonths := 12 - windowMonths
	if historicalMonths < 1 {
		historicalMonths = 1
	}
	quietCutoff := utils.DaysAgo(now, 30)

	var risks []domain.OverstockRisk
	for _, loading := range loadings {
		if loading.LastPurchase == nil || !loading.LastPurchase.Before(quietCutoff) {
			continue
		}

		averageMonthly := loading.HistoricalTotal / historicalMonths
		if averageMonthly <= 0 {
			continue
		}

		expected := averageMonthly * windowMonths
		if loading.RecentTotal <= expected*2 {
			continue
		}

		risks = append(risks, domain.OverstockRisk{
			CustomerName:   loading.CustomerName,
			AvgMonthlyBuy:  utils.RoundWithTwoDecimalPlace(averageMonthly),
			RecentTotal:    loading.RecentTotal,
			LastPurchase:   loading.LastPurchase,
			StockLoadIndex: utils.RoundWithTwoDecimalPlace(loading.RecentTotal / expected),
		})
	}

	sort.Slice(risks, func(i, j int) bool {
		return risks[i].StockLoadIndex > risks[j].StockLoadIndex
	})

	return risks, nil
}

// ItemHealthCheck bundles everything known about one item: window totals,
// coverage, pattern, stability, channel status, OOS risk and decline cause.
// Returns nil when the item code is unknown.
func (s *Service) ItemHealthCheck(itemCode string) (*domain.ItemHealth, error) {
	return s.itemHealthCheckWithDate(itemCode, time.Now())
}

func (s *Service) itemHealthCheckWithDate(itemCode string, now time.Time) (*domain.ItemHealth, error) {
	item, err := s.salesRepository.FindItemByCode(itemCode)
	if err != nil {
		return nil, fmt.Errorf("resolving item %s: %w", itemCode, err)
	}
	if item == nil {
		return nil, nil
	}

	annual, err := s.supplyRepository.ItemWindowStats(item.Code, utils.MonthsAgo(now, 12), nil)
	if err != nil {
		return nil, fmt.Errorf("reading annual stats for %s: %w", item.Code, err)
	}

	coverage, err := s.coverageWithDate(domain.CoverageItem, item.Code, false, []int{12, 24, 36}, "", now)
	if err != nil {
		return nil, err
	}

	pattern, err := s.classifyPatternWithDate(domain.CoverageItem, item.Code, false, 12, now)
	if err != nil {
		return nil, err
	}

	stability, err := s.runRateStabilityWithDate(domain.CoverageItem, item.Code, false, 12, now)
	if err != nil {
		return nil, err
	}

	channels, err := s.channelOOSWithDate(item.Code, 30, now)
	if err != nil {
		return nil, err
	}

	declineCause, err := s.classifyDeclineCauseWithDate(item.Code, now)
	if err != nil {
		return nil, err
	}

	health := &domain.ItemHealth{
		ItemCode:      item.Code,
		ItemDesc:      item.Desc,
		Brand:         item.Brand,
		TotalSales12M: annual.Sales,
		CustomerCount: annual.Customers,
		LastSaleDate:  annual.LastSale,
		Coverage:      coverage.Windows,
		Pattern:       pattern,
		Stability:     stability,
		Channels:      channels,
		DeclineCause:  declineCause,
	}

	oosItems, err := s.detectOOSWithDate(
		domain.BrandFilter{Brand: item.Brand},
		30,
		s.cfg.OOSScan.MinHistoricalSales,
		now,
	)
	if err != nil {
		return nil, err
	}

	for i := range oosItems {
		if oosItems[i].ItemCode == item.Code {
			health.OOSRisk = &oosItems[i]
			break
		}
	}

	return health, nil
}
