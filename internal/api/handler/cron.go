package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/melsayed/sales-analyst-api/internal/scheduler"
	"github.com/melsayed/sales-analyst-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Job types accepted by the manual trigger endpoint.
const (
	CronJobTypeSummary = "summary"
	CronJobTypeOOSScan = "oos-scan"
	CronJobTypeAll     = "all"
)

// CronJobServices holds the background services the cron endpoints can
// trigger and inspect.
type CronJobServices struct {
	SummaryRefreshService *scheduler.SummaryRefreshService
	OOSScanService        *scheduler.OOSScanService
}

// RunCronJob triggers one background job, or all of them, out of schedule.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeSummary:
			if services.SummaryRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "summary refresh service not available", nil)
				return
			}
			services.SummaryRefreshService.TriggerManualSync()

		case CronJobTypeOOSScan:
			if services.OOSScanService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "OOS scan service not available", nil)
				return
			}
			services.OOSScanService.TriggerManualSync()

		case CronJobTypeAll:
			if services.SummaryRefreshService != nil {
				services.SummaryRefreshService.TriggerManualSync()
			}
			if services.OOSScanService != nil {
				services.OOSScanService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: summary, oos-scan, all", nil)
			return
		}

		response := map[string]any{
			"message": "cron job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus reports scheduling state and last run times of the
// background jobs.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"summary":  services.SummaryRefreshService.GetStatus(),
			"oos-scan": services.OOSScanService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
