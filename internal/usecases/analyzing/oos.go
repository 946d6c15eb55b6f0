package analyzing

import (
	"fmt"
	"sync"
	"time"

	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/pkg/utils"
)

// DetectOOS flags items whose recent sales collapsed against their 12-month
// run-rate. Items at zero are High risk, items under 30% of their monthly
// average are Medium; everything healthier is dropped from the report.
func (s *Service) DetectOOS(filter domain.BrandFilter, daysThreshold int, minHistoricalSales float64) ([]domain.OOSItem, error) {
	return s.detectOOSWithDate(filter, daysThreshold, minHistoricalSales, time.Now())
}

func (s *Service) detectOOSWithDate(
	filter domain.BrandFilter,
	daysThreshold int,
	minHistoricalSales float64,
	now time.Time,
) ([]domain.OOSItem, error) {
	if daysThreshold <= 0 {
		daysThreshold = s.cfg.OOSScan.DaysThreshold
	}
	if minHistoricalSales <= 0 {
		minHistoricalSales = s.cfg.OOSScan.MinHistoricalSales
	}

	recentSince := utils.DaysAgo(now, daysThreshold)

	candidates, err := s.supplyRepository.OOSCandidates(filter, utils.MonthsAgo(now, 12), recentSince, minHistoricalSales)
	if err != nil {
		return nil, fmt.Errorf("scanning oos candidates: %w", err)
	}

	var flagged []domain.OOSItem
	for _, item := range candidates {
		item.AvgMonthlySales = utils.RoundWithTwoDecimalPlace(item.HistoricalSales / 12)

		if item.RecentSales >= item.AvgMonthlySales*0.3 {
			continue
		}

		if item.RecentSales == 0 {
			item.RiskLevel = domain.OOSRiskHigh
			item.ForecastSuggestion = "Increase forecast by 20% to recover lost sales"
		} else {
			item.RiskLevel = domain.OOSRiskMedium
			item.ForecastSuggestion = "Review stock levels and pending orders"
		}

		if item.LastSaleDate != nil {
			item.DaysSinceSale = int(now.Sub(*item.LastSaleDate).Hours() / 24)
		} else {
			item.DaysSinceSale = daysThreshold
		}

		flagged = append(flagged, item)
	}

	return flagged, nil
}

// ClassifyDeclineCause decides whether an item's decline looks supply-driven
// or demand-driven by comparing the trailing 30 days against the 30-to-90-day
// window before them.
func (s *Service) ClassifyDeclineCause(itemCode string) (string, error) {
	return s.classifyDeclineCauseWithDate(itemCode, time.Now())
}

func (s *Service) classifyDeclineCauseWithDate(itemCode string, now time.Time) (string, error) {
	recentSince := utils.DaysAgo(now, 30)

	historical, err := s.supplyRepository.ItemWindowStats(itemCode, utils.DaysAgo(now, 90), &recentSince)
	if err != nil {
		return "", fmt.Errorf("reading historical window for %s: %w", itemCode, err)
	}

	recent, err := s.supplyRepository.ItemWindowStats(itemCode, recentSince, nil)
	if err != nil {
		return "", fmt.Errorf("reading recent window for %s: %w", itemCode, err)
	}

	switch {
	case historical.Sales == 0 && recent.Sales == 0:
		return domain.DeclineNoData, nil
	case historical.Sales > 1000 && recent.Sales == 0:
		return domain.DeclineSupplyOOS, nil
	case historical.Customers > 5 && recent.Customers == 0:
		return domain.DeclineSupplyStoppage, nil
	case historical.Sales > 0 && recent.Sales > 0 && recent.Sales < historical.Sales/2:
		return domain.DeclineDemand, nil
	default:
		return domain.DeclineInconclusive, nil
	}
}

// ChannelOOS shows where an item still sells and where it went dark. Channels
// with no historical sales are not reported.
func (s *Service) ChannelOOS(itemCode string, daysThreshold int) ([]domain.ChannelStatus, error) {
	return s.channelOOSWithDate(itemCode, daysThreshold, time.Now())
}

func (s *Service) channelOOSWithDate(itemCode string, daysThreshold int, now time.Time) ([]domain.ChannelStatus, error) {
	if daysThreshold <= 0 {
		daysThreshold = 30
	}

	channels, err := s.supplyRepository.ChannelSplit(itemCode, utils.MonthsAgo(now, 12), utils.DaysAgo(now, daysThreshold))
	if err != nil {
		return nil, fmt.Errorf("splitting channels for %s: %w", itemCode, err)
	}

	var statuses []domain.ChannelStatus
	for _, channel := range channels {
		if channel.HistoricalSales <= 0 {
			continue
		}

		channel.OOSRisk = channel.RecentSales == 0
		channel.SalesDropPct = utils.RoundWithTwoDecimalPlace(
			(channel.HistoricalSales - channel.RecentSales) / channel.HistoricalSales * 100,
		)
		statuses = append(statuses, channel)
	}

	return statuses, nil
}

// WidespreadStoppage finds items that several accounts were buying over the
// last year and then all stopped before the cutoff, a supply-issue signal.
func (s *Service) WidespreadStoppage(filter domain.BrandFilter, minAccounts, daysThreshold int) ([]domain.Stoppage, error) {
	return s.widespreadStoppageWithDate(filter, minAccounts, daysThreshold, time.Now())
}

func (s *Service) widespreadStoppageWithDate(
	filter domain.BrandFilter,
	minAccounts, daysThreshold int,
	now time.Time,
) ([]domain.Stoppage, error) {
	if minAccounts <= 0 {
		minAccounts = 5
	}
	if daysThreshold <= 0 {
		daysThreshold = 30
	}

	stoppages, err := s.supplyRepository.Stoppages(
		filter,
		utils.MonthsAgo(now, 12),
		utils.DaysAgo(now, daysThreshold),
		minAccounts,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning stoppages: %w", err)
	}

	return stoppages, nil
}

// EstimateOOSImpact prices an out-of-stock gap as the trailing-12-month daily
// average times the days the item was unavailable.
func (s *Service) EstimateOOSImpact(itemCode string, oosDays int) (*domain.OOSImpact, error) {
	return s.estimateOOSImpactWithDate(itemCode, oosDays, time.Now())
}

func (s *Service) estimateOOSImpactWithDate(itemCode string, oosDays int, now time.Time) (*domain.OOSImpact, error) {
	since := utils.MonthsAgo(now, 12)

	dailyAverage, err := s.supplyRepository.DailyAverage(itemCode, since)
	if err != nil {
		return nil, fmt.Errorf("reading daily average for %s: %w", itemCode, err)
	}

	stats, err := s.supplyRepository.ItemWindowStats(itemCode, since, nil)
	if err != nil {
		return nil, fmt.Errorf("reading annual stats for %s: %w", itemCode, err)
	}

	return &domain.OOSImpact{
		ItemCode:           itemCode,
		OOSDays:            oosDays,
		EstimatedLostSales: utils.RoundWithTwoDecimalPlace(dailyAverage * float64(oosDays)),
		AffectedCustomers:  stats.Customers,
		AnnualSales:        stats.Sales,
	}, nil
}

// SupplyChainDashboard bundles the brand's supply picture: OOS candidates,
// widespread stoppages, the top lost accounts, seasonal items and anomalies.
// The five scans are independent and run concurrently.
func (s *Service) SupplyChainDashboard(filter domain.BrandFilter, daysThreshold int) (*domain.SupplyChainReport, error) {
	if daysThreshold <= 0 {
		daysThreshold = s.cfg.OOSScan.DaysThreshold
	}

	var (
		oosItems     []domain.OOSItem
		stoppages    []domain.Stoppage
		lostAccounts []domain.LostAccount
		seasonal     []domain.SeasonalItem
		anomalies    []domain.Anomaly

		oosErr       error
		stoppagesErr error
		lostErr      error
		seasonalErr  error
		anomaliesErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(5)

	go func() {
		defer wg.Done()
		oosItems, oosErr = s.DetectOOS(filter, daysThreshold, s.cfg.OOSScan.MinHistoricalSales)
	}()

	go func() {
		defer wg.Done()
		stoppages, stoppagesErr = s.WidespreadStoppage(filter, 5, daysThreshold)
	}()

	go func() {
		defer wg.Done()
		lostAccounts, lostErr = s.CoverageLoss(domain.CoverageBrand, filter.Brand, filter.Masked, 12, 24, 10)
	}()

	go func() {
		defer wg.Done()
		seasonal, seasonalErr = s.SeasonalItems(filter, 0, 0)
	}()

	go func() {
		defer wg.Done()
		anomalies, anomaliesErr = s.Anomalies(filter, 12, 0)
	}()

	wg.Wait()

	for _, err := range []error{oosErr, stoppagesErr, lostErr, seasonalErr, anomaliesErr} {
		if err != nil {
			return nil, fmt.Errorf("assembling supply chain dashboard for %s: %w", filter.Brand, err)
		}
	}

	return &domain.SupplyChainReport{
		Brand:         filter.Brand,
		OOSItems:      oosItems,
		SupplyIssues:  stoppages,
		CoverageLoss:  lostAccounts,
		SeasonalItems: seasonal,
		Anomalies:     anomalies,
	}, nil
}
