package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/hrms-backend/internal/resource"
	"github.com/frahmantamala/hrms-backend/internal/transport"
	"github.com/frahmantamala/hrms-backend/internal/transport/middleware"
	"github.com/frahmantamala/hrms-backend/internal/transport/swagger"
)

type RouterOptions struct {
	// DB backs the readiness probe.
	DB             *sql.DB
	Resources      []resource.Routable
	AllowedOrigins []string
	TrustedHosts   []string
	OpenAPISpec    []byte
	Logger         *slog.Logger
}

func RegisterAllRoutes(router *chi.Mux, opts RouterOptions) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	healthHandler := NewHealthHandler(transport.NewBaseHandler(logger), opts.DB)

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.TrustedHosts(opts.TrustedHosts, logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.RequestID(logger))
	router.Use(middleware.LoggingMiddleware)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		transport.NewBaseHandler(logger).WriteJSON(w, http.StatusNotFound, transport.Failure("Not Found", nil))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		transport.NewBaseHandler(logger).WriteJSON(w, http.StatusMethodNotAllowed, transport.Failure("Method Not Allowed", nil))
	})

	// probes are served at the root as well
	router.Get("/health", healthHandler.livenessHandler)
	router.Get("/ready", healthHandler.readinessHandler)

	if len(opts.OpenAPISpec) > 0 {
		swagger.Mount(router, opts.OpenAPISpec)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.livenessHandler)
		r.Get("/ready", healthHandler.readinessHandler)

		for _, h := range opts.Resources {
			h.Routes(r)
		}
	})
}
