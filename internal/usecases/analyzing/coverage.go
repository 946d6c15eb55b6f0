package analyzing

import (
	"fmt"
	"strings"
	"time"

	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/pkg/utils"
)

// Coverage measures distinct-account reach over a set of trailing windows.
// An empty windows slice falls back to the standard 12/24/36/48 months; an
// empty dimension counts customers.
func (s *Service) Coverage(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	windows []int,
	dimension string,
) (*domain.CoverageReport, error) {
	return s.coverageWithDate(level, entity, masked, windows, dimension, time.Now())
}

func (s *Service) coverageWithDate(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	windows []int,
	dimension string,
	now time.Time,
) (*domain.CoverageReport, error) {
	if len(windows) == 0 {
		windows = defaultCoverageWindows
	}

	report := &domain.CoverageReport{Level: level, Entity: entity}

	for _, months := range windows {
		window, err := s.coverageRepository.WindowStats(level, entity, masked, utils.MonthsAgo(now, months), dimension)
		if err != nil {
			return nil, fmt.Errorf("measuring %dM coverage: %w", months, err)
		}

		window.Label = fmt.Sprintf("%dM", months)
		window.Months = months
		report.Windows = append(report.Windows, *window)
	}

	return report, nil
}

// CoverageLoss lists the accounts that bought within the historical window
// but have gone quiet since the recent cutoff, biggest spenders first.
func (s *Service) CoverageLoss(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	recentMonths, historicalMonths int,
	limit uint64,
) ([]domain.LostAccount, error) {
	return s.coverageLossWithDate(level, entity, masked, recentMonths, historicalMonths, limit, time.Now())
}

func (s *Service) coverageLossWithDate(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	recentMonths, historicalMonths int,
	limit uint64,
	now time.Time,
) ([]domain.LostAccount, error) {
	if recentMonths <= 0 {
		recentMonths = 12
	}
	if historicalMonths <= recentMonths {
		historicalMonths = recentMonths * 2
	}

	accounts, err := s.coverageRepository.LostAccounts(
		level, entity, masked,
		utils.MonthsAgo(now, recentMonths),
		utils.MonthsAgo(now, historicalMonths),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("finding lost accounts for %s: %w", entity, err)
	}

	for i := range accounts {
		if accounts[i].LastPurchaseDate != nil {
			accounts[i].DaysSinceLastPurchase = int(now.Sub(*accounts[i].LastPurchaseDate).Hours() / 24)
		}
	}

	return accounts, nil
}

// CompareBrandCoverage puts two brands' account reach side by side with the
// overlap of accounts buying both.
func (s *Service) CompareBrandCoverage(brandA, brandB string, months int) (*domain.CoverageComparison, error) {
	return s.compareBrandCoverageWithDate(brandA, brandB, months, time.Now())
}

func (s *Service) compareBrandCoverageWithDate(brandA, brandB string, months int, now time.Time) (*domain.CoverageComparison, error) {
	if months <= 0 {
		months = 12
	}
	since := utils.MonthsAgo(now, months)

	countA, salesA, err := s.coverageRepository.AccountReach(domain.CoverageBrand, brandA, s.maskedBrand(brandA), since)
	if err != nil {
		return nil, fmt.Errorf("measuring reach of %s: %w", brandA, err)
	}

	countB, salesB, err := s.coverageRepository.AccountReach(domain.CoverageBrand, brandB, s.maskedBrand(brandB), since)
	if err != nil {
		return nil, fmt.Errorf("measuring reach of %s: %w", brandB, err)
	}

	overlap, err := s.coverageRepository.SharedAccounts(brandA, brandB, since)
	if err != nil {
		return nil, fmt.Errorf("measuring overlap of %s and %s: %w", brandA, brandB, err)
	}

	return &domain.CoverageComparison{
		EntityA:    brandA,
		EntityB:    brandB,
		CoverageA:  countA,
		CoverageB:  countB,
		SalesA:     salesA,
		SalesB:     salesB,
		Overlap:    overlap,
		ExclusiveA: countA - overlap,
		ExclusiveB: countB - overlap,
	}, nil
}

// BrandVsCompany lays a brand's coverage windows beside the company's.
func (s *Service) BrandVsCompany(filter domain.BrandFilter, windows []int) (*domain.BrandCompanyCoverage, error) {
	brandReport, err := s.Coverage(domain.CoverageBrand, filter.Brand, filter.Masked, windows, "")
	if err != nil {
		return nil, err
	}

	companyReport, err := s.Coverage(domain.CoverageCompany, "", false, windows, "")
	if err != nil {
		return nil, err
	}

	return &domain.BrandCompanyCoverage{
		Brand:   *brandReport,
		Company: *companyReport,
	}, nil
}

// CoverageMovement splits accounts into new, lost and retained between the
// trailing period and the equally long period before it.
func (s *Service) CoverageMovement(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	periodMonths int,
) (*domain.CoverageMovement, error) {
	return s.coverageMovementWithDate(level, entity, masked, periodMonths, time.Now())
}

func (s *Service) coverageMovementWithDate(
	level domain.CoverageLevel,
	entity string,
	masked bool,
	periodMonths int,
	now time.Time,
) (*domain.CoverageMovement, error) {
	if periodMonths <= 0 {
		periodMonths = 12
	}

	movement, err := s.coverageRepository.Movement(
		level, entity, masked,
		utils.MonthsAgo(now, periodMonths),
		utils.MonthsAgo(now, 2*periodMonths),
	)
	if err != nil {
		return nil, fmt.Errorf("measuring coverage movement for %s: %w", entity, err)
	}

	movement.PeriodMonths = periodMonths

	return movement, nil
}

// maskedBrand reports whether a brand is sold under another label and must be
// matched against the mask column.
func (s *Service) maskedBrand(brand string) bool {
	return s.cfg.Analysis.MaskedBrands[strings.ToUpper(brand)]
}
