package handler

import (
	"net/http"

	"github.com/melsayed/sales-analyst-api/internal/api/handler/router"
	"github.com/melsayed/sales-analyst-api/internal/usecases/answering"
	"github.com/melsayed/sales-analyst-api/internal/usecases/authenticating"
	"github.com/melsayed/sales-analyst-api/internal/usecases/performing"
	"github.com/melsayed/sales-analyst-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Questions wires the natural-language entry point and the saved answers.
func Questions(service answering.AnsweringService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ask",
			Method:      http.MethodPost,
			Handler:     Ask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/answers",
			Method:      http.MethodGet,
			Handler:     ListAnswers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/answers/:id",
			Method:      http.MethodGet,
			Handler:     GetAnswer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Brands(services BrandServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/brands",
			Method:      http.MethodGet,
			Handler:     ListBrands(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:brand/analysis",
			Method:      http.MethodGet,
			Handler:     GetBrandAnalysis(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:brand/coverage",
			Method:      http.MethodGet,
			Handler:     GetBrandCoverage(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:brand/coverage/loss",
			Method:      http.MethodGet,
			Handler:     GetBrandCoverageLoss(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:brand/coverage/movement",
			Method:      http.MethodGet,
			Handler:     GetBrandCoverageMovement(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:brand/oos",
			Method:      http.MethodGet,
			Handler:     GetBrandOOS(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:brand/stoppages",
			Method:      http.MethodGet,
			Handler:     GetBrandStoppages(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:brand/seasonal",
			Method:      http.MethodGet,
			Handler:     GetBrandSeasonal(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:brand/anomalies",
			Method:      http.MethodGet,
			Handler:     GetBrandAnomalies(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:brand/supply-chain",
			Method:      http.MethodGet,
			Handler:     GetBrandSupplyChain(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Coverage wires the company-wide views that are not scoped to one brand.
func Coverage(services BrandServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/coverage",
			Method:      http.MethodGet,
			Handler:     GetCompanyCoverage(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/coverage/comparison",
			Method:      http.MethodGet,
			Handler:     GetCoverageComparison(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/overstock",
			Method:      http.MethodGet,
			Handler:     GetOverstockRisk(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Items(services ItemServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/items/:code/pattern",
			Method:      http.MethodGet,
			Handler:     GetItemPattern(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:code/stability",
			Method:      http.MethodGet,
			Handler:     GetItemStability(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:code/health",
			Method:      http.MethodGet,
			Handler:     GetItemHealth(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:code/decline-cause",
			Method:      http.MethodGet,
			Handler:     GetItemDeclineCause(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:code/oos-impact",
			Method:      http.MethodGet,
			Handler:     GetItemOOSImpact(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:code/channels",
			Method:      http.MethodGet,
			Handler:     GetItemChannels(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(service performing.PerformingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/brands",
			Method:      http.MethodGet,
			Handler:     GetBrandAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/gms",
			Method:      http.MethodGet,
			Handler:     GetGMAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/salesmen",
			Method:      http.MethodGet,
			Handler:     GetSalesmanAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/accounts",
			Method:      http.MethodGet,
			Handler:     GetAccountAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/gaps",
			Method:      http.MethodGet,
			Handler:     GetGapAnalysis(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/recommendations",
			Method:      http.MethodGet,
			Handler:     GetRecommendations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/trends/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyTrend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/trends/yoy",
			Method:      http.MethodGet,
			Handler:     GetYearOverYear(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
