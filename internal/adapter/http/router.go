package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pattarin/banchi/internal/adapter/http/handler"
	"github.com/pattarin/banchi/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	WebhookHandler *handler.WebhookHandler
	SummaryHandler *handler.SummaryHandler
	HealthHandler  *handler.HealthHandler
	RateLimiter    *middleware.RateLimiter
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// Transport bridge
	r.Group(func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}
		r.Post("/webhook", cfg.WebhookHandler.Handle)
	})

	// Query API
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/groups/{id}/summary", func(r chi.Router) {
			r.Get("/today", cfg.SummaryHandler.Today)
			r.Get("/cycle", cfg.SummaryHandler.Cycle)
		})
	})

	return r
}
