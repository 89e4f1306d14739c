package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JaimeStill/route-docs/internal/catalog"
	"github.com/JaimeStill/route-docs/internal/config"
	"github.com/JaimeStill/route-docs/internal/logger"
	"github.com/JaimeStill/route-docs/pkg/openapi"
	"github.com/JaimeStill/route-docs/pkg/routes"
	"github.com/JaimeStill/route-docs/web/docs"
)

const metricsPath = "/metrics"

// registerRoutes builds the service route tree. The catalog API lives under
// /api/v1/ with a router index at /api/; admin views sit in their own namespace
// so documentation can exclude them.
func registerRoutes(r routes.System, cfg *config.Config, loggerSys logger.System, docsHandler *docs.Handler, registry *prometheus.Registry) {
	items := catalog.NewSystem()
	catalogLogger := loggerSys.Module("catalog")

	v1 := routes.Group{
		Prefix:    "^v1/",
		Namespace: "v1",
		Nodes: []routes.Node{
			catalog.Routes(items, catalogLogger, "^items/", cfg.Pagination),
		},
	}

	api := []routes.Node{v1}
	api = append([]routes.Node{routes.Route{
		Method:  http.MethodGet,
		Pattern: "^$",
		Name:    "api-root",
		View:    routes.Instance(routes.NewRoot("/api/", api)),
	}}, api...)

	r.RegisterGroup(routes.Group{
		Prefix:    "^api/",
		Namespace: "api",
		Nodes:     api,
	})

	r.RegisterGroup(routes.Group{
		Prefix:    "^admin/",
		Namespace: "admin",
		Nodes: []routes.Node{
			routes.Route{
				Method:  http.MethodGet,
				Pattern: "^stats/$",
				Name:    "admin-stats",
				View:    routes.Instance(catalog.NewStatsView(items, catalogLogger)),
			},
		},
	})

	r.RegisterGroup(docsHandler.Routes())

	r.RegisterRoute(routes.Route{
		Method:  http.MethodGet,
		Pattern: "^healthz/$",
		Name:    "healthz",
		Handler: http.HandlerFunc(handleHealthCheck),
		OpenAPI: &openapi.Operation{
			Summary: "Health check endpoint",
			Tags:    []string{"Infrastructure"},
		},
	})

	r.RegisterRoute(routes.Route{
		Method:  http.MethodGet,
		Pattern: metricsPath,
		Name:    "metrics",
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	})
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
