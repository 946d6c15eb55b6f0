package handler

import (
	"errors"
	"net/http"

	"github.com/melsayed/sales-analyst-api/infrastructure/repository"
	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/internal/usecases/performing"
	"github.com/melsayed/sales-analyst-api/pkg/apiErrors"
	"github.com/melsayed/sales-analyst-api/pkg/log"
)

var (
	errTrendSlicePair = errors.New("parameters \"dimension\" and \"value\" must be given together")
	errTrendDimension = errors.New("unknown trend dimension")
)

// GetBrandAnalytics returns the per-brand sales, target, achievement and gap
// table for one year.
func GetBrandAnalytics(service performing.PerformingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := intParam(r, "year", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		rows, err := service.BrandAnalytics(year)
		if err != nil {
			logger.WithError(err).Error("analytics: brand analytics failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "brand analytics failed", nil)
			return
		}

		respondJSON(w, rows)
	})
}

// GetGMAnalytics returns the same table grouped by general manager.
func GetGMAnalytics(service performing.PerformingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := intParam(r, "year", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		rows, err := service.GMAnalytics(year)
		if err != nil {
			logger.WithError(err).Error("analytics: GM analytics failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "GM analytics failed", nil)
			return
		}

		respondJSON(w, rows)
	})
}

// GetSalesmanAnalytics returns the per-salesman table, optionally filtered
// to one GM or one brand.
func GetSalesmanAnalytics(service performing.PerformingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := intParam(r, "year", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		gm := r.URL.Query().Get("gm")
		brand := r.URL.Query().Get("brand")

		rows, err := service.SalesmanAnalytics(year, gm, brand)
		if err != nil {
			logger.WithError(err).Error("analytics: salesman analytics failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "salesman analytics failed", nil)
			return
		}

		respondJSON(w, rows)
	})
}

// GetAccountAnalytics returns the per-account table, optionally filtered to
// one salesman or one brand.
func GetAccountAnalytics(service performing.PerformingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := intParam(r, "year", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		salesman := r.URL.Query().Get("salesman")
		brand := r.URL.Query().Get("brand")

		rows, err := service.AccountAnalytics(year, salesman, brand)
		if err != nil {
			logger.WithError(err).Error("analytics: account analytics failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "account analytics failed", nil)
			return
		}

		respondJSON(w, rows)
	})
}

// GetGapAnalysis ranks entities of one type by how far they run behind
// target.
func GetGapAnalysis(service performing.PerformingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entity := r.URL.Query().Get("entity")
		if entity == "" {
			entity = performing.EntityBrand
		}
		if !validEntityType(entity) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "parameter \"entity\" must be brand, gm, salesman or account", nil)
			return
		}

		year, err := intParam(r, "year", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.GapAnalysis(entity, year)
		if err != nil {
			logger.WithFields(log.Fields{
				"entity": entity,
				"error":  err.Error(),
			}).Error("analytics: gap analysis failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "gap analysis failed", nil)
			return
		}

		respondJSON(w, report)
	})
}

// GetRecommendations turns the achievement tables into suggested actions.
// Without an entity filter it covers brands, salesmen and accounts in one
// response.
func GetRecommendations(service performing.PerformingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := intParam(r, "year", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		entities := []string{performing.EntityBrand, performing.EntitySalesman, performing.EntityAccount}
		if entity := r.URL.Query().Get("entity"); entity != "" {
			if !validEntityType(entity) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "parameter \"entity\" must be brand, gm, salesman or account", nil)
				return
			}
			entities = []string{entity}
		}

		recommendations := make([]domain.Recommendation, 0)
		for _, entity := range entities {
			rows, err := service.Recommendations(entity, year)
			if err != nil {
				logger.WithFields(log.Fields{
					"entity": entity,
					"error":  err.Error(),
				}).Error("analytics: recommendations failed")

				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "building recommendations failed", nil)
				return
			}
			recommendations = append(recommendations, rows...)
		}

		respondJSON(w, recommendations)
	})
}

// GetMonthlyTrend returns month-by-month sales for one year, for the whole
// company or sliced to one dimension value.
func GetMonthlyTrend(service performing.PerformingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := intParam(r, "year", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dimension := r.URL.Query().Get("dimension")
		value := r.URL.Query().Get("value")
		if err := validateTrendSlice(dimension, value); err != nil {
			writeTrendSliceError(w, err)
			return
		}

		points, err := service.MonthlyTrend(year, dimension, value)
		if err != nil {
			logger.WithFields(log.Fields{
				"dimension": dimension,
				"value":     value,
				"error":     err.Error(),
			}).Error("trends: monthly trend failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "monthly trend failed", nil)
			return
		}

		respondJSON(w, points)
	})
}

// GetYearOverYear returns yearly totals with growth, for the whole company
// or sliced to one dimension value.
func GetYearOverYear(service performing.PerformingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dimension := r.URL.Query().Get("dimension")
		value := r.URL.Query().Get("value")
		if err := validateTrendSlice(dimension, value); err != nil {
			writeTrendSliceError(w, err)
			return
		}

		totals, err := service.YearOverYear(dimension, value)
		if err != nil {
			logger.WithFields(log.Fields{
				"dimension": dimension,
				"value":     value,
				"error":     err.Error(),
			}).Error("trends: year over year failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "year-over-year comparison failed", nil)
			return
		}

		respondJSON(w, totals)
	})
}

func validEntityType(entity string) bool {
	switch entity {
	case performing.EntityBrand, performing.EntityGM, performing.EntitySalesman, performing.EntityAccount:
		return true
	}
	return false
}

// validateTrendSlice enforces that dimension and value come together and the
// dimension is one the summary table can slice by.
func validateTrendSlice(dimension, value string) error {
	if (dimension == "") != (value == "") {
		return errTrendSlicePair
	}
	if !repository.ValidTrendDimension(dimension) {
		return errTrendDimension
	}
	return nil
}

func writeTrendSliceError(w http.ResponseWriter, err error) {
	if errors.Is(err, errTrendDimension) {
		apiErrors.WriteError(w, apiErrors.ErrUnknownEntity, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
}
