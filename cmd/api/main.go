// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

// Command api is the entry point for the Vestnik journal HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (.env honored in dev).
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent, includes seed data).
//  6. Open the media store.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/miigaik/vestnik/internal/api"
	"github.com/miigaik/vestnik/internal/catalog/archive"
	"github.com/miigaik/vestnik/internal/catalog/article"
	"github.com/miigaik/vestnik/internal/catalog/board"
	"github.com/miigaik/vestnik/internal/catalog/info"
	"github.com/miigaik/vestnik/internal/catalog/issue"
	"github.com/miigaik/vestnik/internal/contact"
	"github.com/miigaik/vestnik/internal/pages"
	"github.com/miigaik/vestnik/internal/platform/config"
	"github.com/miigaik/vestnik/internal/platform/constants"
	"github.com/miigaik/vestnik/internal/platform/migration"
	pgstore "github.com/miigaik/vestnik/internal/platform/postgres"
	redisstore "github.com/miigaik/vestnik/internal/platform/redis"
	"github.com/miigaik/vestnik/internal/platform/sec"
	"github.com/miigaik/vestnik/internal/platform/storage"
	"github.com/miigaik/vestnik/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// A missing .env is fine: production injects real environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Media Store ────────────────────────────────────────────────────
	media, err := storage.NewMediaStore(cfg.MediaDir)
	must(log, err, "open media store")

	// ── 7. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	accountRepository := auth.NewAccountRepository(pool)
	sessionRepository := auth.NewSessionRepository(rdb)
	authService := auth.NewService(accountRepository, sessionRepository, jwtSvc, log)
	authHandler := auth.NewHandler(authService)

	issueService := issue.NewService(issue.NewPostgresRepository(pool), log)
	issueHandler := issue.NewHandler(issueService)

	articleService := article.NewService(article.NewPostgresRepository(pool), log)
	articleHandler := article.NewHandler(articleService, media)

	archiveService := archive.NewService(archive.NewPostgresRepository(pool), log)
	archiveHandler := archive.NewHandler(archiveService)

	boardService := board.NewService(board.NewPostgresRepository(pool), log)
	boardHandler := board.NewHandler(boardService)

	infoService := info.NewService(info.NewPostgresRepository(pool), log)
	infoHandler := info.NewHandler(infoService)

	contactService := contact.NewService(contact.NewPostgresRepository(pool), log)
	contactHandler := contact.NewHandler(contactService)

	pagesHandler := pages.NewHandler()

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Home:      api.NewHomeHandler(infoService, issueService, articleService),
		Auth:      authHandler,
		Issue:     issueHandler,
		Article:   articleHandler,
		Archive:   archiveHandler,
		Board:     boardHandler,
		Info:      infoHandler,
		Contact:   contactHandler,
		Pages:     pagesHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
