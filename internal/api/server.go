// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/outfit"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/config"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/constants"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/metrics"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/middleware"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/recommendation"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/users/account"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/users/auth"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/wardrobe"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/weather"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler; always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; 200 only when postgres and redis answer.
	Readiness http.HandlerFunc

	// Auth handles registration, login, logout, /me and Google sign-in.
	Auth *auth.Handler

	// Account manages the caller's profile and avatar.
	Account *account.Handler

	// Weather is the public current-weather lookup.
	Weather *weather.Handler

	// Outfit runs the generation pipeline and its single-stage variants.
	Outfit *outfit.Handler

	// Recommendation serves both /recommendations and /history.
	Recommendation *recommendation.Handler

	// Wardrobe manages the clothing catalog.
	Wardrobe *wardrobe.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. The rate limiter's sweeper stops with context.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, identities middleware.IdentityResolver, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(metrics.Middleware)
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.NewRateLimiter(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst).Handler)
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated probes for container orchestration and scraping.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Handle("/metrics", metrics.Handler())

	// # Application API
	// Identity resolution runs only for API routes so probes never touch Redis.
	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Authenticate(identities))

		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/account", h.Account.Routes())
		api.Mount("/weather", h.Weather.Routes())
		api.Mount("/outfit", h.Outfit.Routes())
		api.Mount("/recommendations", h.Recommendation.Routes())
		api.Mount("/history", h.Recommendation.HistoryRoutes())
		api.Mount("/wardrobe", h.Wardrobe.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the root router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
