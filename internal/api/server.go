// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

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

	"github.com/taibuivan/persona/internal/core/address"
	"github.com/taibuivan/persona/internal/core/personal"
	"github.com/taibuivan/persona/internal/platform/config"
	"github.com/taibuivan/persona/internal/platform/constants"
	"github.com/taibuivan/persona/internal/platform/metrics"
	"github.com/taibuivan/persona/internal/platform/middleware"
	"github.com/taibuivan/persona/internal/platform/respond"
	"github.com/taibuivan/persona/internal/users/account"
	"github.com/taibuivan/persona/internal/users/auth"
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
	// Liveness is the /health handler and always returns 200 if the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler and returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles login, refresh and logout.
	Auth *auth.Handler

	// Account manages users; registration is its only public route.
	Account *account.Handler

	// Personal manages personal profiles.
	Personal *personal.Handler

	// Address manages addresses of personal profiles.
	Address *address.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. context stops background middleware work
// (rate limiter cleanup) when cancelled.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.AccessTokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(metrics.Instrument)
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/", func(writer http.ResponseWriter, _ *http.Request) {
		respond.Text(writer, http.StatusOK, "Hello persona")
	})
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	metrics.Register(r, cfg.MetricsPath)

	// # Application API
	guard := middleware.Authenticate(verifier)

	r.Route("/api", func(api chi.Router) {
		api.Mount("/users", h.Account.Routes(guard))

		api.Group(func(protected chi.Router) {
			protected.Use(guard)
			protected.Mount("/personal", h.Personal.Routes())
			protected.Mount("/address", h.Address.Routes())
		})

		// login, refresh, logout
		api.Mount("/", h.Auth.Routes())
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

// Handler exposes the router, mainly for in-process tests.
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
