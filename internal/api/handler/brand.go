package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/melsayed/sales-analyst-api/infrastructure/repository"
	"github.com/melsayed/sales-analyst-api/internal/config"
	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/internal/usecases/analyzing"
	"github.com/melsayed/sales-analyst-api/pkg/apiErrors"
	"github.com/melsayed/sales-analyst-api/pkg/log"
)

var errUnknownBrand = errors.New("unknown brand")

// BrandServices groups what the brand endpoints need: the analyzer plus the
// catalog used to validate the :brand path segment.
type BrandServices struct {
	Analyzer analyzing.AnalyzingService
	Sales    repository.SalesRepository
	Config   *config.Config
}

// resolveBrand matches the :brand path segment against the catalog, case
// insensitively, falling back to the configured alias table. The filter
// carries the masking flag for restricted brands.
func (s BrandServices) resolveBrand(r *http.Request) (domain.BrandFilter, error) {
	return s.resolveBrandName(httprouter.ParamsFromContext(r.Context()).ByName("brand"))
}

func (s BrandServices) resolveBrandName(raw string) (domain.BrandFilter, error) {
	brands, err := s.Sales.ListBrands()
	if err != nil {
		return domain.BrandFilter{}, err
	}

	for _, brand := range brands {
		if strings.EqualFold(brand, raw) {
			return s.brandFilter(brand), nil
		}
	}

	if brand, ok := s.Config.Analysis.BrandAliases[strings.ToLower(raw)]; ok {
		return s.brandFilter(brand), nil
	}

	return domain.BrandFilter{}, errUnknownBrand
}

func (s BrandServices) brandFilter(brand string) domain.BrandFilter {
	return domain.BrandFilter{
		Brand:  brand,
		Masked: s.Config.Analysis.MaskedBrands[strings.ToUpper(brand)],
	}
}

func writeBrandError(w http.ResponseWriter, logger log.Logger, err error) {
	if errors.Is(err, errUnknownBrand) {
		apiErrors.WriteError(w, apiErrors.ErrUnknownEntity, "unknown brand", nil)
		return
	}

	logger.WithError(err).Error("brands: catalog lookup failed")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "looking up the brand failed", nil)
}

// ListBrands returns the distinct brands present in the sales data.
func ListBrands(services BrandServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		brands, err := services.Sales.ListBrands()
		if err != nil {
			logger.WithError(err).Error("brands: failed to list brands")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "listing brands failed", nil)
			return
		}

		respondJSON(w, brands)
	})
}

// GetBrandAnalysis runs the two-year brand investigation: totals for both
// years plus the per-dimension breakdowns filtered by focus.
func GetBrandAnalysis(services BrandServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := services.resolveBrand(r)
		if err != nil {
			writeBrandError(w, logger, err)
			return
		}

		yearFrom, err := intParam(r, "year_from", services.Config.Analysis.DefaultYearFrom)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		yearTo, err := intParam(r, "year_to", services.Config.Analysis.DefaultYearTo)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		focus := domain.Focus(r.URL.Query().Get("focus"))
		switch focus {
		case "":
			focus = domain.FocusDeclining
		case domain.FocusDeclining, domain.FocusGrowing, domain.FocusAll:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "parameter \"focus\" must be declining, growing or all", nil)
			return
		}

		analysis, err := services.Analyzer.BrandAnalysis(domain.QuestionProfile{
			Brand:       filter.Brand,
			BrandMasked: filter.Masked,
			Focus:       focus,
			YearFrom:    yearFrom,
			YearTo:      yearTo,
		})
		if err != nil {
			logger.WithFields(log.Fields{
				"brand": filter.Brand,
				"error": err.Error(),
			}).Error("brands: analysis failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "brand analysis failed", nil)
			return
		}

		respondJSON(w, analysis)
	})
}

// GetBrandCoverage reports how many accounts the brand reached per trailing
// window, optionally counting another dimension such as channel or emirate.
func GetBrandCoverage(services BrandServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := services.resolveBrand(r)
		if err != nil {
			writeBrandError(w, logger, err)
			return
		}

		windows, err := intListParam(r, "windows")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dimension := r.URL.Query().Get("dimension")
		if !repository.ValidCoverageDimension(dimension) {
			apiErrors.WriteError(w, apiErrors.ErrUnknownEntity, "unknown coverage dimension", nil)
			return
		}

		report, err := services.Analyzer.Coverage(domain.CoverageBrand, filter.Brand, filter.Masked, windows, dimension)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand": filter.Brand,
				"error": err.Error(),
			}).Error("brands: coverage failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "coverage analysis failed", nil)
			return
		}

		respondJSON(w, report)
	})
}

// GetBrandCoverageLoss lists accounts that bought the brand historically but
// not in the recent window.
func GetBrandCoverageLoss(services BrandServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := services.resolveBrand(r)
		if err != nil {
			writeBrandError(w, logger, err)
			return
		}

		recentMonths, err := intParam(r, "recent_months", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		historicalMonths, err := intParam(r, "historical_months", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		limit, err := uintParam(r, "limit", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		accounts, err := services.Analyzer.CoverageLoss(domain.CoverageBrand, filter.Brand, filter.Masked, recentMonths, historicalMonths, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand": filter.Brand,
				"error": err.Error(),
			}).Error("brands: coverage loss failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "coverage loss analysis failed", nil)
			return
		}

		respondJSON(w, accounts)
	})
}

// GetBrandCoverageMovement splits the brand's accounts into new, lost and
// retained between the trailing period and the one before it.
func GetBrandCoverageMovement(services BrandServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := services.resolveBrand(r)
		if err != nil {
			writeBrandError(w, logger, err)
			return
		}

		periodMonths, err := intParam(r, "period_months", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		movement, err := services.Analyzer.CoverageMovement(domain.CoverageBrand, filter.Brand, filter.Masked, periodMonths)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand": filter.Brand,
				"error": err.Error(),
			}).Error("brands: coverage movement failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "coverage movement analysis failed", nil)
			return
		}

		respondJSON(w, movement)
	})
}

// GetBrandOOS flags items of the brand that sold historically but have gone
// quiet for the threshold number of days.
func GetBrandOOS(services BrandServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := services.resolveBrand(r)
		if err != nil {
			writeBrandError(w, logger, err)
			return
		}

		days, err := intParam(r, "days", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		minSales, err := floatParam(r, "min_sales", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		items, err := services.Analyzer.DetectOOS(filter, days, minSales)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand": filter.Brand,
				"error": err.Error(),
			}).Error("brands: OOS detection failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "out-of-stock detection failed", nil)
			return
		}

		respondJSON(w, items)
	})
}

// GetBrandStoppages lists items many accounts stopped buying around the same
// time, the signature of a supply interruption.
func GetBrandStoppages(services BrandServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := services.resolveBrand(r)
		if err != nil {
			writeBrandError(w, logger, err)
			return
		}

		minAccounts, err := intParam(r, "min_accounts", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		days, err := intParam(r, "days", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		stoppages, err := services.Analyzer.WidespreadStoppage(filter, minAccounts, days)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand": filter.Brand,
				"error": err.Error(),
			}).Error("brands: stoppage detection failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "stoppage detection failed", nil)
			return
		}

		respondJSON(w, stoppages)
	})
}

// GetBrandSeasonal lists items of the brand whose sales concentrate in a few
// months of the year.
func GetBrandSeasonal(services BrandServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := services.resolveBrand(r)
		if err != nil {
			writeBrandError(w, logger, err)
			return
		}

		minSales, err := floatParam(r, "min_sales", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		months, err := intParam(r, "months", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		items, err := services.Analyzer.SeasonalItems(filter, minSales, months)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand": filter.Brand,
				"error": err.Error(),
			}).Error("brands: seasonal detection failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "seasonal item detection failed", nil)
			return
		}

		respondJSON(w, items)
	})
}

// GetBrandAnomalies lists months whose sales deviate from the brand's
// average by more than the z-score threshold.
func GetBrandAnomalies(services BrandServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := services.resolveBrand(r)
		if err != nil {
			writeBrandError(w, logger, err)
			return
		}

		months, err := intParam(r, "months", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		threshold, err := floatParam(r, "threshold", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		anomalies, err := services.Analyzer.Anomalies(filter, months, threshold)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand": filter.Brand,
				"error": err.Error(),
			}).Error("brands: anomaly detection failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "anomaly detection failed", nil)
			return
		}

		respondJSON(w, anomalies)
	})
}

// GetBrandSupplyChain assembles the full supply-chain view of a brand: OOS
// items, widespread stoppages, lost accounts, seasonal items and anomalies.
func GetBrandSupplyChain(services BrandServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := services.resolveBrand(r)
		if err != nil {
			writeBrandError(w, logger, err)
			return
		}

		days, err := intParam(r, "days", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := services.Analyzer.SupplyChainDashboard(filter, days)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand": filter.Brand,
				"error": err.Error(),
			}).Error("brands: supply chain dashboard failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "supply chain analysis failed", nil)
			return
		}

		respondJSON(w, report)
	})
}
