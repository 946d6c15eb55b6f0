package handler

import (
	"net/http"

	"github.com/melsayed/sales-analyst-api/infrastructure/repository"
	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/pkg/apiErrors"
	"github.com/melsayed/sales-analyst-api/pkg/log"
)

// GetCompanyCoverage reports company-wide account reach per trailing window.
func GetCompanyCoverage(services BrandServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

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

		report, err := services.Analyzer.Coverage(domain.CoverageCompany, "", false, windows, dimension)
		if err != nil {
			logger.WithError(err).Error("coverage: company coverage failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "coverage analysis failed", nil)
			return
		}

		respondJSON(w, report)
	})
}

// GetCoverageComparison compares a brand's reach against the whole company,
// or against a second brand when "other" is given.
func GetCoverageComparison(services BrandServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		brandParam := r.URL.Query().Get("brand")
		if brandParam == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "parameter \"brand\" is required", nil)
			return
		}

		filter, err := services.resolveBrandName(brandParam)
		if err != nil {
			writeBrandError(w, logger, err)
			return
		}

		if other := r.URL.Query().Get("other"); other != "" {
			otherFilter, err := services.resolveBrandName(other)
			if err != nil {
				writeBrandError(w, logger, err)
				return
			}

			months, err := intParam(r, "months", 0)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}

			comparison, err := services.Analyzer.CompareBrandCoverage(filter.Brand, otherFilter.Brand, months)
			if err != nil {
				logger.WithFields(log.Fields{
					"brand": filter.Brand,
					"other": otherFilter.Brand,
					"error": err.Error(),
				}).Error("coverage: brand comparison failed")

				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "coverage comparison failed", nil)
				return
			}

			respondJSON(w, comparison)
			return
		}

		windows, err := intListParam(r, "windows")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		comparison, err := services.Analyzer.BrandVsCompany(filter, windows)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand": filter.Brand,
				"error": err.Error(),
			}).Error("coverage: brand vs company failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "coverage comparison failed", nil)
			return
		}

		respondJSON(w, comparison)
	})
}

// GetOverstockRisk lists customers whose recent purchases run well above
// their historical monthly average, optionally scoped to one brand.
func GetOverstockRisk(services BrandServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var filter domain.BrandFilter
		if brandParam := r.URL.Query().Get("brand"); brandParam != "" {
			resolved, err := services.resolveBrandName(brandParam)
			if err != nil {
				writeBrandError(w, logger, err)
				return
			}
			filter = resolved
		}

		days, err := intParam(r, "days", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		risks, err := services.Analyzer.OverstockRisk(filter, days)
		if err != nil {
			logger.WithError(err).Error("coverage: overstock scan failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "overstock analysis failed", nil)
			return
		}

		respondJSON(w, risks)
	})
}
