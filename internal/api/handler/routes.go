package handler

import (
	"net/http"

	"github.com/vfg2006/marketplace-sync-api/internal/api/handler/router"
	"github.com/vfg2006/marketplace-sync-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Notifications(queue NotificationEnqueuer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/notifications",
			Method:  http.MethodPost,
			Handler: ReceiveNotification(queue),
		},
	}
}

func Accounts(services AccountServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/sync",
			Method:      http.MethodPost,
			Handler:     SyncAccount(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/accounts/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetAccountMetrics(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/milestones",
			Method:      http.MethodGet,
			Handler:     GetAccountMilestones(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services map[string]CronService) []router.Route {
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
