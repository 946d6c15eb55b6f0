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

var errUnknownItem = errors.New("unknown item")

// ItemServices groups what the item endpoints need: the analyzer plus the
// catalog used to validate the :code path segment.
type ItemServices struct {
	Analyzer analyzing.AnalyzingService
	Sales    repository.SalesRepository
	Config   *config.Config
}

// resolveItem verifies the :code path segment against the catalog. The
// masking flag follows the item's brand.
func (s ItemServices) resolveItem(r *http.Request) (*domain.ItemRef, bool, error) {
	code := httprouter.ParamsFromContext(r.Context()).ByName("code")

	item, err := s.Sales.FindItemByCode(code)
	if err != nil {
		return nil, false, err
	}
	if item == nil {
		return nil, false, errUnknownItem
	}

	masked := s.Config.Analysis.MaskedBrands[strings.ToUpper(item.Brand)]

	return item, masked, nil
}

func writeItemError(w http.ResponseWriter, logger log.Logger, err error) {
	if errors.Is(err, errUnknownItem) {
		apiErrors.WriteError(w, apiErrors.ErrUnknownEntity, "unknown item code", nil)
		return
	}

	logger.WithError(err).Error("items: catalog lookup failed")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "looking up the item failed", nil)
}

// GetItemPattern classifies the item's monthly sales shape: steady, growing,
// declining, seasonal, interrupted or discontinued.
func GetItemPattern(services ItemServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		item, masked, err := services.resolveItem(r)
		if err != nil {
			writeItemError(w, logger, err)
			return
		}

		months, err := intParam(r, "months", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := services.Analyzer.ClassifyPattern(domain.CoverageItem, item.Code, masked, months)
		if err != nil {
			logger.WithFields(log.Fields{
				"item_code": item.Code,
				"error":     err.Error(),
			}).Error("items: pattern classification failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "pattern classification failed", nil)
			return
		}

		respondJSON(w, report)
	})
}

// GetItemStability measures how evenly the item's recent months sell.
func GetItemStability(services ItemServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		item, masked, err := services.resolveItem(r)
		if err != nil {
			writeItemError(w, logger, err)
			return
		}

		months, err := intParam(r, "months", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := services.Analyzer.RunRateStability(domain.CoverageItem, item.Code, masked, months)
		if err != nil {
			logger.WithFields(log.Fields{
				"item_code": item.Code,
				"error":     err.Error(),
			}).Error("items: stability analysis failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "stability analysis failed", nil)
			return
		}

		respondJSON(w, report)
	})
}

// GetItemHealth runs the quick item health check: recent run rate against
// the historical average plus days since the last sale.
func GetItemHealth(services ItemServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		item, _, err := services.resolveItem(r)
		if err != nil {
			writeItemError(w, logger, err)
			return
		}

		health, err := services.Analyzer.ItemHealthCheck(item.Code)
		if err != nil {
			logger.WithFields(log.Fields{
				"item_code": item.Code,
				"error":     err.Error(),
			}).Error("items: health check failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "item health check failed", nil)
			return
		}

		respondJSON(w, health)
	})
}

// GetItemDeclineCause attributes an item's decline to a supply or a demand
// cause from the shape of its customer loading.
func GetItemDeclineCause(services ItemServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		item, _, err := services.resolveItem(r)
		if err != nil {
			writeItemError(w, logger, err)
			return
		}

		classification, err := services.Analyzer.ClassifyDeclineCause(item.Code)
		if err != nil {
			logger.WithFields(log.Fields{
				"item_code": item.Code,
				"error":     err.Error(),
			}).Error("items: decline cause classification failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "decline cause classification failed", nil)
			return
		}

		respondJSON(w, map[string]string{
			"item_code":      item.Code,
			"item_desc":      item.Desc,
			"classification": classification,
		})
	})
}

// GetItemOOSImpact estimates the sales lost while the item was out of stock.
func GetItemOOSImpact(services ItemServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		item, _, err := services.resolveItem(r)
		if err != nil {
			writeItemError(w, logger, err)
			return
		}

		days, err := intParam(r, "days", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		impact, err := services.Analyzer.EstimateOOSImpact(item.Code, days)
		if err != nil {
			logger.WithFields(log.Fields{
				"item_code": item.Code,
				"error":     err.Error(),
			}).Error("items: OOS impact estimate failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "out-of-stock impact estimate failed", nil)
			return
		}

		respondJSON(w, impact)
	})
}

// GetItemChannels reports per-channel availability of the item, separating
// channels that went quiet from those still buying.
func GetItemChannels(services ItemServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		item, _, err := services.resolveItem(r)
		if err != nil {
			writeItemError(w, logger, err)
			return
		}

		days, err := intParam(r, "days", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		channels, err := services.Analyzer.ChannelOOS(item.Code, days)
		if err != nil {
			logger.WithFields(log.Fields{
				"item_code": item.Code,
				"error":     err.Error(),
			}).Error("items: channel availability failed")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "channel availability analysis failed", nil)
			return
		}

		respondJSON(w, channels)
	})
}
