package analyzing

import (
	"fmt"
	"sync"

	"github.com/melsayed/sales-analyst-api/infrastructure/repository"
	"github.com/melsayed/sales-analyst-api/internal/config"
	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/pkg/utils"
)

var defaultCoverageWindows = []int{12, 24, 36, 48}

// breakdownLimits caps each dimension of the comprehensive brand analysis.
// Channels and emirates are small closed sets and stay uncapped.
var breakdownLimits = map[domain.BrandDimension]uint64{
	domain.DimensionChannel:  0,
	domain.DimensionGroup:    15,
	domain.DimensionItem:     15,
	domain.DimensionCustomer: 10,
	domain.DimensionEmirate:  0,
	domain.DimensionSalesman: 10,
}

type AnalyzingService interface {
	BrandAnalysis(profile domain.QuestionProfile) (*domain.BrandAnalysis, error)
	Coverage(level domain.CoverageLevel, entity string, masked bool, windows []int, dimension string) (*domain.CoverageReport, error)
	CoverageLoss(level domain.CoverageLevel, entity string, masked bool, recentMonths, historicalMonths int, limit uint64) ([]domain.LostAccount, error)
	CompareBrandCoverage(brandA, brandB string, months int) (*domain.CoverageComparison, error)
	BrandVsCompany(filter domain.BrandFilter, windows []int) (*domain.BrandCompanyCoverage, error)
	CoverageMovement(level domain.CoverageLevel, entity string, masked bool, periodMonths int) (*domain.CoverageMovement, error)
	DetectOOS(filter domain.BrandFilter, daysThreshold int, minHistoricalSales float64) ([]domain.OOSItem, error)
	ClassifyDeclineCause(itemCode string) (string, error)
	ChannelOOS(itemCode string, daysThreshold int) ([]domain.ChannelStatus, error)
	WidespreadStoppage(filter domain.BrandFilter, minAccounts, daysThreshold int) ([]domain.Stoppage, error)
	EstimateOOSImpact(itemCode string, oosDays int) (*domain.OOSImpact, error)
	ClassifyPattern(level domain.CoverageLevel, entity string, masked bool, months int) (*domain.PatternReport, error)
	SeasonalItems(filter domain.BrandFilter, minSales float64, months int) ([]domain.SeasonalItem, error)
	Anomalies(filter domain.BrandFilter, months int, threshold float64) ([]domain.Anomaly, error)
	RunRateStability(level domain.CoverageLevel, entity string, masked bool, months int) (*domain.StabilityReport, error)
	OverstockRisk(filter domain.BrandFilter, daysThreshold int) ([]domain.OverstockRisk, error)
	ItemHealthCheck(itemCode string) (*domain.ItemHealth, error)
	SupplyChainDashboard(filter domain.BrandFilter, daysThreshold int) (*domain.SupplyChainReport, error)
}

type Service struct {
	salesRepository    repository.SalesRepository
	coverageRepository repository.CoverageRepository
	supplyRepository   repository.SupplyRepository
	cfg                *config.Config
}

func NewService(
	salesRepository repository.SalesRepository,
	coverageRepository repository.CoverageRepository,
	supplyRepository repository.SupplyRepository,
	cfg *config.Config,
) AnalyzingService {
	return &Service{
		salesRepository:    salesRepository,
		coverageRepository: coverageRepository,
		supplyRepository:   supplyRepository,
		cfg:                cfg,
	}
}

// BrandAnalysis runs the two-year overview and every dimension breakdown for
// one brand. The seven queries are independent and run concurrently; the
// focus decides whether each breakdown surfaces the biggest gainers or the
// biggest losers first.
func (s *Service) BrandAnalysis(profile domain.QuestionProfile) (*domain.BrandAnalysis, error) {
	filter := domain.BrandFilter{Brand: profile.Brand, Masked: profile.BrandMasked}

	analysis := &domain.BrandAnalysis{
		Brand:     profile.Brand,
		YearFrom:  profile.YearFrom,
		YearTo:    profile.YearTo,
		Focus:     profile.Focus,
		Breakdown: make(map[domain.BrandDimension][]domain.DimensionRow, len(breakdownLimits)),
	}

	var (
		overview []domain.YearTotals
		mutex    sync.Mutex
		firstErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(1 + len(breakdownLimits))

	go func() {
		defer wg.Done()

		rows, err := s.salesRepository.BrandOverview(filter, profile.YearFrom, profile.YearTo)

		mutex.Lock()
		defer mutex.Unlock()

		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		overview = rows
	}()

	for dimension, limit := range breakdownLimits {
		go func(dimension domain.BrandDimension, limit uint64) {
			defer wg.Done()

			rows, err := s.salesRepository.BrandBreakdown(
				filter, profile.YearFrom, profile.YearTo, dimension, profile.Focus, limit,
			)

			mutex.Lock()
			defer mutex.Unlock()

			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			analysis.Breakdown[dimension] = rows
		}(dimension, limit)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("building brand analysis for %s: %w", profile.Brand, firstErr)
	}

	analysis.Overview = overview
	analysis.Summary = summarizeOverview(overview, profile.YearFrom, profile.YearTo)

	return analysis, nil
}

func summarizeOverview(overview []domain.YearTotals, yearFrom, yearTo int) domain.BrandAnalysisSummary {
	summary := domain.BrandAnalysisSummary{}

	for _, totals := range overview {
		switch totals.Year {
		case yearFrom:
			summary.TotalY1 = totals.TotalSales
		case yearTo:
			summary.TotalY2 = totals.TotalSales
		}
	}

	summary.GrowthValue = utils.RoundWithTwoDecimalPlace(summary.TotalY2 - summary.TotalY1)
	if summary.TotalY1 != 0 {
		summary.GrowthPct = utils.RoundWithTwoDecimalPlace((summary.TotalY2 - summary.TotalY1) * 100 / summary.TotalY1)
	}

	return summary
}
