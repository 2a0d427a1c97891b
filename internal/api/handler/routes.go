package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ad-extractor-api/infrastructure/repository"
	"github.com/vfg2006/ad-extractor-api/internal/api/handler/router"
	"github.com/vfg2006/ad-extractor-api/internal/catalog"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/connecting"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/extracting"
	"github.com/vfg2006/ad-extractor-api/pkg/middleware"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
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
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Catalog(c *catalog.Catalog) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/catalog/fields",
			Method:      http.MethodGet,
			Handler:     ListCatalogFields(c),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/catalog/breakdowns",
			Method:      http.MethodGet,
			Handler:     ListCatalogBreakdowns(c),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Extractions(extractor extracting.Extractor, historyRepo repository.ExtractionHistoryRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/extractions",
			Method:      http.MethodPost,
			Handler:     RunExtraction(extractor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/extractions/history",
			Method:      http.MethodGet,
			Handler:     ListExtractionHistory(historyRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Connections(service connecting.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/connections",
			Method:      http.MethodPost,
			Handler:     CreateConnection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/connections",
			Method:      http.MethodGet,
			Handler:     ListConnections(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/connections/:id",
			Method:      http.MethodGet,
			Handler:     GetConnection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/connections/:id",
			Method:      http.MethodPut,
			Handler:     UpdateConnection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/connections/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteConnection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/extraction-sync",
			Method:      http.MethodPost,
			Handler:     TriggerExtractionSync(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/extraction-sync/status",
			Method:      http.MethodGet,
			Handler:     ExtractionSyncStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
