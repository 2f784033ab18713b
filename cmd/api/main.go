// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

// Command api is the entry point for the Smart Wardrobe HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (fails closed on missing secrets).
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run embedded database migrations (idempotent).
//  6. Build token services, object storage and upstream clients.
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

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/data"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/api"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/genai"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/outfit"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/config"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/constants"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/migration"
	pgstore "github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/postgres"
	redisstore "github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/redis"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/sec"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/storage"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/recommendation"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/users/account"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/users/auth"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/wardrobe"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/weather"
)

const appName = "smart-wardrobe"

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("google_sign_in", cfg.GoogleEnabled()),
		slog.Bool("object_storage", cfg.S3Bucket != ""),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	if cfg.MigrateOnStart {
		must(log, migration.RunUp(cfg.DatabaseURL, data.Migrations(), log), "run migrations")
	}

	// ── 6. Security, storage and upstreams ────────────────────────────────
	appTokens, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer)
	must(log, err, "initialize app token service")

	identityTokens, err := sec.NewIdentityTokenService(cfg.IdentityTokenSecret)
	must(log, err, "initialize identity token service")

	images := newImageStore(startupCtx, cfg, log)

	weatherClient := weather.NewClient(weather.Config{
		BaseURL: cfg.OpenWeatherBaseURL,
		APIKey:  cfg.OpenWeatherAPIKey,
		Timeout: cfg.WeatherTimeout,
	})
	textClient := genai.NewTextClient(genai.TextConfig{
		BaseURL: cfg.GeminiBaseURL,
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.PromptTimeout,
	})
	imageClient := genai.NewImageClient(genai.ImageConfig{
		BaseURL: cfg.StabilityBaseURL,
		APIKey:  cfg.StabilityAPIKey,
		Timeout: cfg.ImageTimeout,
	})

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckCache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	cookies := auth.Cookies{Secure: cfg.IsProduction()}

	authService := auth.NewService(auth.NewUserRepository(pool), auth.NewHandleStore(rdb), appTokens)

	var google *auth.GoogleSignIn
	if cfg.GoogleEnabled() {
		google = auth.NewGoogleSignIn(auth.GoogleConfig{
			ClientID:      cfg.GoogleClientID,
			ClientSecret:  cfg.GoogleClientSecret,
			RedirectURL:   cfg.GoogleRedirectURL,
			FrontendURL:   cfg.FrontendURL,
			SessionSecret: cfg.SessionSecret,
		}, identityTokens, cookies)
	}

	pipeline := outfit.NewPipeline(weatherClient, textClient, imageClient, images, outfit.Timeouts{
		Weather: cfg.WeatherTimeout,
		Prompt:  cfg.PromptTimeout,
		Image:   cfg.ImageTimeout,
	})

	handlers := api.Handlers{
		Liveness:       liveness,
		Readiness:      readiness,
		Auth:           auth.NewHandler(authService, cookies, google),
		Account:        account.NewHandler(account.NewService(account.NewAccountRepository(pool), images)),
		Weather:        weather.NewHandler(weatherClient),
		Outfit:         outfit.NewHandler(pipeline),
		Recommendation: recommendation.NewHandler(recommendation.NewService(recommendation.NewRepository(pool))),
		Wardrobe:       wardrobe.NewHandler(wardrobe.NewService(wardrobe.NewRepository(pool), images)),
	}

	identities := auth.Principals(auth.NewChain(authService, identityTokens, cookies))

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	server := api.NewServer(rootCtx, cfg, log, identities, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
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
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", appName))
}

// newImageStore uses the bucket when one is configured and inline data URIs otherwise.
func newImageStore(ctx context.Context, cfg *config.Config, log *slog.Logger) storage.Store {
	if cfg.S3Bucket == "" {
		log.Warn("object_storage_disabled", slog.String("fallback", "inline"))
		return storage.NewInlineStore()
	}

	store, err := storage.NewS3Store(ctx, storage.S3Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		PublicURL: cfg.S3PublicURL,
	})
	must(log, err, "initialize object storage")
	return store
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
