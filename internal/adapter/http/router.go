package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/fiscledger/internal/adapter/http/handler"
	"github.com/iho/fiscledger/internal/adapter/http/middleware"
	"github.com/iho/fiscledger/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	EntryHandler      *handler.EntryHandler
	FiscalYearHandler *handler.FiscalYearHandler
	AccountHandler    *handler.AccountHandler
	LedgerHandler     *handler.LedgerHandler
	HealthHandler     *handler.HealthHandler

	Logger      zerolog.Logger
	Metrics     *metrics.Metrics                  // optional
	Gatherer    prometheus.Gatherer               // serves /metrics when set
	Idempotency *middleware.IdempotencyMiddleware // optional
	RateLimiter *middleware.RateLimiter           // optional
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Identity)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Idempotency != nil {
			r.Use(cfg.Idempotency.Wrap)
		}

		r.Route("/entries", func(r chi.Router) {
			r.Post("/", cfg.EntryHandler.Create)
			r.Get("/", cfg.EntryHandler.List)
			r.Get("/{id}", cfg.EntryHandler.Get)
			r.Put("/{id}", cfg.EntryHandler.Update)
			r.Delete("/{id}", cfg.EntryHandler.Delete)
			r.Post("/{id}/post", cfg.EntryHandler.Post)
			r.Post("/{id}/void", cfg.EntryHandler.Void)
		})

		r.Route("/fiscal-years", func(r chi.Router) {
			r.Post("/", cfg.FiscalYearHandler.Create)
			r.Get("/", cfg.FiscalYearHandler.List)
			r.Get("/{id}", cfg.FiscalYearHandler.Get)
			r.Post("/{id}/lock", cfg.FiscalYearHandler.Lock)
			r.Post("/{id}/close", cfg.FiscalYearHandler.Close)
			r.Get("/{id}/consistency", cfg.LedgerHandler.CheckConsistency)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.CreateAccount)
			r.Get("/", cfg.AccountHandler.ListAccounts)
		})

		r.Route("/third-parties", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.CreateThirdParty)
			r.Get("/", cfg.AccountHandler.ListThirdParties)
		})
	})

	return r
}
