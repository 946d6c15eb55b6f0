package performing

import (
	"fmt"
	"sort"

	"github.com/melsayed/sales-analyst-api/infrastructure/repository"
	"github.com/melsayed/sales-analyst-api/internal/config"
	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/pkg/utils"
)

// workingDaysPerMonth spreads a monthly gap into a daily run rate.
const workingDaysPerMonth = 22

// Entity types the gap and recommendation operations group by.
const (
	EntityBrand    = "brand"
	EntityGM       = "gm"
	EntitySalesman = "salesman"
	EntityAccount  = "account"
)

type PerformingService interface {
	BrandAnalytics(year int) ([]domain.PerformanceRow, error)
	GMAnalytics(year int) ([]domain.PerformanceRow, error)
	SalesmanAnalytics(year int, gm, brand string) ([]domain.PerformanceRow, error)
	AccountAnalytics(year int, salesman, brand string) ([]domain.PerformanceRow, error)
	MonthlyTrend(year int, dimension, value string) ([]domain.TrendPoint, error)
	YearOverYear(dimension, value string) ([]domain.YearlyTotals, error)
	GapAnalysis(entityType string, year int) (*domain.GapReport, error)
	Recommendations(entityType string, year int) ([]domain.Recommendation, error)
}

type Service struct {
	performanceRepository repository.PerformanceRepository
	cfg                   *config.Config
}

func NewService(performanceRepository repository.PerformanceRepository, cfg *config.Config) PerformingService {
	return &Service{
		performanceRepository: performanceRepository,
		cfg:                   cfg,
	}
}

// BrandAnalytics lists every brand's sales against target for a year with the
// derived achievement, gap and per-customer figures filled in.
func (s *Service) BrandAnalytics(year int) ([]domain.PerformanceRow, error) {
	rows, err := s.performanceRepository.BrandPerformance(s.analysisYear(year))
	if err != nil {
		return nil, fmt.Errorf("reading brand performance: %w", err)
	}

	return enrich(rows), nil
}

func (s *Service) GMAnalytics(year int) ([]domain.PerformanceRow, error) {
	rows, err := s.performanceRepository.GMPerformance(s.analysisYear(year))
	if err != nil {
		return nil, fmt.Errorf("reading gm performance: %w", err)
	}

	return enrich(rows), nil
}

// SalesmanAnalytics lists salesmen for a year, optionally narrowed to one GM
// line or one brand.
func (s *Service) SalesmanAnalytics(year int, gm, brand string) ([]domain.PerformanceRow, error) {
	rows, err := s.performanceRepository.SalesmanPerformance(s.analysisYear(year), gm, brand)
	if err != nil {
		return nil, fmt.Errorf("reading salesman performance: %w", err)
	}

	return enrich(rows), nil
}

// AccountAnalytics lists customer accounts for a year, optionally narrowed to
// one salesman's route or one brand.
func (s *Service) AccountAnalytics(year int, salesman, brand string) ([]domain.PerformanceRow, error) {
	rows, err := s.performanceRepository.AccountPerformance(s.analysisYear(year), salesman, brand)
	if err != nil {
		return nil, fmt.Errorf("reading account performance: %w", err)
	}

	return enrich(rows), nil
}

func (s *Service) MonthlyTrend(year int, dimension, value string) ([]domain.TrendPoint, error) {
	points, err := s.performanceRepository.MonthlyTrend(s.analysisYear(year), dimension, value)
	if err != nil {
		return nil, fmt.Errorf("reading monthly trend: %w", err)
	}

	return points, nil
}

func (s *Service) YearOverYear(dimension, value string) ([]domain.YearlyTotals, error) {
	totals, err := s.performanceRepository.YearOverYear(dimension, value)
	if err != nil {
		return nil, fmt.Errorf("reading year-over-year totals: %w", err)
	}

	return totals, nil
}

// GapAnalysis ranks the entities of one type by how far they sit below
// target. Entities at or above target are left out, and the remaining gap is
// spread over the working days of a month as a required daily run rate.
func (s *Service) GapAnalysis(entityType string, year int) (*domain.GapReport, error) {
	year = s.analysisYear(year)

	rows, err := s.analyticsFor(entityType, year)
	if err != nil {
		return nil, err
	}

	report := &domain.GapReport{
		EntityType: entityType,
		Year:       year,
	}

	for _, row := range rows {
		if row.Gap <= 0 {
			continue
		}

		report.TotalGap += row.Gap
		report.Entries = append(report.Entries, domain.GapEntry{
			Entity:      row.EntityName(),
			Sales:       row.Sales,
			Target:      row.Target,
			Gap:         row.Gap,
			Achievement: row.Achievement,
			Priority:    gapPriority(row.Achievement),
		})
	}

	sort.Slice(report.Entries, func(i, j int) bool {
		return report.Entries[i].Gap > report.Entries[j].Gap
	})

	report.TotalGap = utils.RoundWithTwoDecimalPlace(report.TotalGap)
	if report.TotalGap > 0 {
		report.DailyRunRate = utils.RoundWithTwoDecimalPlace(report.TotalGap / workingDaysPerMonth)
	}

	return report, nil
}

// Recommendations turns the achievement bands of one entity type into
// concrete actions. The rule table covers brands, salesmen and accounts; a
// single momentum entry stands in for the list when every target is met.
func (s *Service) Recommendations(entityType string, year int) ([]domain.Recommendation, error) {
	rows, err := s.analyticsFor(entityType, s.analysisYear(year))
	if err != nil {
		return nil, err
	}

	return recommend(entityType, rows), nil
}

// analysisYear falls back to the configured current year when the caller
// passes no year.
func (s *Service) analysisYear(year int) int {
	if year <= 0 {
		return s.cfg.Analysis.DefaultYearTo
	}

	return year
}

func (s *Service) analyticsFor(entityType string, year int) ([]domain.PerformanceRow, error) {
	switch entityType {
	case EntityBrand:
		return s.BrandAnalytics(year)
	case EntityGM:
		return s.GMAnalytics(year)
	case EntitySalesman:
		return s.SalesmanAnalytics(year, "", "")
	case EntityAccount:
		return s.AccountAnalytics(year, "", "")
	default:
		return nil, fmt.Errorf("unknown entity type %q", entityType)
	}
}

// enrich fills the derived columns alongside the scanned aggregates.
// Achievement stays 0 when no target is set.
func enrich(rows []domain.PerformanceRow) []domain.PerformanceRow {
	for i := range rows {
		row := &rows[i]
		if row.Target > 0 {
			row.Achievement = utils.RoundWithTwoDecimalPlace(row.Sales / row.Target * 100)
		}
		row.Gap = utils.RoundWithTwoDecimalPlace(row.Target - row.Sales)
		if row.Customers > 0 {
			row.AvgPerCust = utils.RoundWithTwoDecimalPlace(row.Sales / float64(row.Customers))
		}
	}

	return rows
}

// gapPriority grades how hard an entity has to be pushed: urgent below half
// of target, focus below 80 pct, close the gap otherwise.
func gapPriority(achievement float64) string {
	switch {
	case achievement < 50:
		return domain.GapPriorityUrgent
	case achievement < 80:
		return domain.GapPriorityFocus
	default:
		return domain.GapPriorityClose
	}
}

func recommend(entityType string, rows []domain.PerformanceRow) []domain.Recommendation {
	if len(rows) == 0 {
		return nil
	}

	var recommendations []domain.Recommendation

	var totalSales, totalTarget, totalGap float64
	for _, row := range rows {
		totalSales += row.Sales
		totalTarget += row.Target
		totalGap += row.Gap
	}

	if totalGap <= 0 {
		overall := float64(0)
		if totalTarget > 0 {
			overall = utils.RoundWithTwoDecimalPlace(totalSales / totalTarget * 100)
		}
		recommendations = append(recommendations, domain.Recommendation{
			EntityType:  entityType,
			Severity:    domain.SeverityMomentum,
			Achievement: overall,
			Gap:         utils.RoundWithTwoDecimalPlace(totalGap),
			Message:     fmt.Sprintf("Exceeding target by AED %s. Upsell new lines.", utils.FormatAmount(-totalGap)),
		})
	}

	for _, row := range rows {
		if rec, ok := recommendFor(entityType, row); ok {
			recommendations = append(recommendations, rec)
		}
	}

	return recommendations
}

func recommendFor(entityType string, row domain.PerformanceRow) (domain.Recommendation, bool) {
	rec := domain.Recommendation{
		EntityType:  entityType,
		Entity:      row.EntityName(),
		Achievement: row.Achievement,
		Gap:         row.Gap,
	}

	switch entityType {
	case EntityBrand:
		switch {
		case row.Achievement < 80:
			rec.Severity = domain.SeverityCritical
			rec.Message = fmt.Sprintf("%s is at %.1f%% of target. Audit availability in the top 20 accounts and divert trade spend to the brand.", rec.Entity, row.Achievement)
		case row.Achievement < 95:
			rec.Severity = domain.SeverityTactical
			rec.Message = fmt.Sprintf("%s is close at %.1f%%. Run a bundle promotion for the last week of the month.", rec.Entity, row.Achievement)
		default:
			return domain.Recommendation{}, false
		}
	case EntitySalesman:
		switch {
		case row.Achievement < 70:
			rec.Severity = domain.SeverityCoaching
			rec.Message = fmt.Sprintf("Achievement %.1f%%. Check the top 5 non-buying accounts in the route and review journey plan compliance.", row.Achievement)
		case row.Achievement < 90:
			rec.Severity = domain.SeverityFocus
			rec.Message = fmt.Sprintf("Gap closing mode at %.1f%%. Cross-sell accounts that already buy adjacent brands.", row.Achievement)
		default:
			return domain.Recommendation{}, false
		}
	case EntityAccount:
		switch {
		case row.Achievement < 50:
			rec.Severity = domain.SeverityRisk
			rec.Message = "High risk of churn or credit issue. Schedule a principal or manager visit immediately."
		case row.Achievement < 80:
			rec.Severity = domain.SeverityDevelopment
			rec.Message = fmt.Sprintf("Account under-indexing at %.1f%%. Propose two new SKUs to grow the basket.", row.Achievement)
		default:
			return domain.Recommendation{}, false
		}
	default:
		return domain.Recommendation{}, false
	}

	return rec, true
}
