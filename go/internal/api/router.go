// Package api assembles the HTTP surface: connect services under one chi
// router with request ids, access logs, CORS, rate limiting and health checks.
package api

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/footballdb/go/internal/rpc"
)

// Config controls the cross-cutting middleware
type Config struct {
	AllowedOrigins    []string
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Service is implemented by every connect service in the module
type Service interface {
	Handler(opts ...connect.HandlerOption) (string, http.Handler)
}

// Pinger reports whether the store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewRouter mounts every service on a chi router behind the middleware stack
func NewRouter(cfg Config, db Pinger, services ...Service) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(RequestID)
	r.Use(AccessLog())
	r.Use(middleware.Recoverer)

	c := corslib.New(corslib.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{
			HeaderRequestID,
			rpc.HeaderErrorKind,
			rpc.HeaderErrorEntity,
			rpc.HeaderErrorField,
			rpc.HeaderErrorID,
		},
	})
	r.Use(c.Handler)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", healthCheck)
		r.Get("/db", healthCheckDB(db))
	})

	r.Group(func(r chi.Router) {
		if cfg.RateLimitEnabled {
			r.Use(RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))
		}
		for _, svc := range services {
			path, handler := svc.Handler()
			r.Handle(path+"*", handler)
			log.Debug().Str("path", path).Msg("Mounted service")
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to write health check response")
	}
}

func healthCheckDB(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("database health check failed")
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}
