// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

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

	"github.com/miigaik/vestnik/internal/catalog/archive"
	"github.com/miigaik/vestnik/internal/catalog/article"
	"github.com/miigaik/vestnik/internal/catalog/board"
	"github.com/miigaik/vestnik/internal/catalog/info"
	"github.com/miigaik/vestnik/internal/catalog/issue"
	"github.com/miigaik/vestnik/internal/contact"
	"github.com/miigaik/vestnik/internal/pages"
	"github.com/miigaik/vestnik/internal/platform/config"
	"github.com/miigaik/vestnik/internal/platform/constants"
	"github.com/miigaik/vestnik/internal/platform/middleware"
	"github.com/miigaik/vestnik/internal/users/auth"
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
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Home serves the landing-page payload.
	Home http.HandlerFunc

	// Auth handles staff authentication routes.
	Auth *auth.Handler

	// Issue handles journal issue listings and administration.
	Issue *issue.Handler

	// Article handles article listings, PDFs, and administration.
	Article *article.Handler

	// Archive handles year-range listings and the grouped archive view.
	Archive *archive.Handler

	// Board handles the editorial board page.
	Board *board.Handler

	// Info handles the journal masthead singleton.
	Info *info.Handler

	// Contact handles the public contact form and message processing.
	Contact *contact.Handler

	// Pages serves the static informational pages.
	Pages *pages.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/", h.Home)
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/issues", h.Issue.Routes())
		api.Mount("/articles", h.Article.Routes())
		api.Mount("/archive", h.Archive.Routes())
		api.Mount("/board", h.Board.Routes())
		api.Mount("/journal-info", h.Info.Routes())
		api.Mount("/contact", h.Contact.Routes())
		api.Mount("/pages", h.Pages.Routes())
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

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
