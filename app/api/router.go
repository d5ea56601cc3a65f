package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// HealthCheck reports whether the record store is reachable.
type HealthCheck func(ctx context.Context) error

type RouterConfig struct {
	Logger         *zap.Logger
	AllowedOrigins []string
	GraphQL        http.Handler
	Health         HealthCheck
	// Metrics is optional; when set, requests are instrumented and
	// GET /metrics serves the registry.
	Metrics *Metrics
}

// NewRouter mounts the GraphQL endpoint, the health check and, when
// configured, the metrics endpoint.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	r.Method(http.MethodPost, "/graphql", cfg.GraphQL)
	r.Get("/healthz", healthHandler(cfg.Health))
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	return r
}

func healthHandler(check HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				ErrorResponse(w, http.StatusServiceUnavailable, "store unavailable")
				return
			}
		}
		OKResponse(w, map[string]string{"status": "ok"})
	}
}
