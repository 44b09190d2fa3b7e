// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

// Command api is the entry point for the Drama Collection storefront API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
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

	"github.com/dramacollection/storefront/internal/admin"
	"github.com/dramacollection/storefront/internal/api"
	"github.com/dramacollection/storefront/internal/cart"
	"github.com/dramacollection/storefront/internal/catalog/category"
	"github.com/dramacollection/storefront/internal/catalog/product"
	"github.com/dramacollection/storefront/internal/favorites"
	"github.com/dramacollection/storefront/internal/orders"
	"github.com/dramacollection/storefront/internal/platform/config"
	"github.com/dramacollection/storefront/internal/platform/constants"
	"github.com/dramacollection/storefront/internal/platform/migration"
	pgstore "github.com/dramacollection/storefront/internal/platform/postgres"
	redisstore "github.com/dramacollection/storefront/internal/platform/redis"
	"github.com/dramacollection/storefront/internal/platform/sec"
	"github.com/dramacollection/storefront/internal/users/account"
	"github.com/dramacollection/storefront/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "storefront"))
	slog.SetDefault(log)

	log.Info("[Storefront] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "storefront"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("favorites_backend", cfg.FavoritesBackend),
	)

	// Root context for the process. Cancelled on shutdown so background
	// middleware janitors stop with the server.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// Startup context with a 30s deadline so misconfiguration is caught
	// quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(appCtx, 30*time.Second)
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

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────

	// Catalog
	productRepository := product.NewPostgresRepository(pool)
	productService := product.NewService(productRepository, log)
	productHandler := product.NewHandler(productService)

	categoryRepository := category.NewPostgresRepository(pool)
	categoryService := category.NewService(categoryRepository, log)
	categoryHandler := category.NewHandler(categoryService)

	// Cart (identity-namespaced, Redis-backed)
	cartRepository := cart.NewRedisRepository(rdb, log)
	cartService := cart.NewService(cartRepository, productRepository, log)
	cartHandler := cart.NewHandler(cartService)

	// Favorites (backend selected via configuration)
	var favoritesRepository favorites.Repository
	if cfg.FavoritesBackend == "postgres" {
		favoritesRepository = favorites.NewPostgresRepository(pool, log)
	} else {
		favoritesRepository = favorites.NewRedisRepository(rdb, log)
	}
	favoritesService := favorites.NewService(favoritesRepository, productRepository, log)
	favoritesHandler := favorites.NewHandler(favoritesService)

	// Orders and checkout handoff
	orderRepository := orders.NewPostgresRepository(pool)
	orderService := orders.NewService(orderRepository, cartRepository, cfg.WhatsAppNumber, log)
	orderHandler := orders.NewHandler(orderService)

	// Admin gate (Postgres privilege row + Redis elevation flag)
	privilegeRepository := admin.NewPostgresPrivilegeRepository(pool)
	elevationRepository := admin.NewRedisElevationRepository(rdb)
	adminGate := admin.NewGate(privilegeRepository, elevationRepository, cfg.AdminPassphrase, log)
	adminHandler := admin.NewHandler(adminGate, productService, orderService)

	// Identity
	userRepository := auth.NewUserRepository(pool)
	sessionRepository := auth.NewSessionRepository(pool)
	resetTokenRepository := auth.NewResetTokenRepository(rdb)
	verifyTokenRepository := auth.NewVerificationTokenRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, resetTokenRepository, verifyTokenRepository, jwtSvc)
	authHandler := auth.NewHandler(authService)

	accountRepository := account.NewAccountRepository(pool)
	accountSessionRepository := account.NewSessionRepository(pool)
	accountService := account.NewService(accountRepository, accountSessionRepository, log)
	accountHandler := account.NewHandler(accountService)

	// Identity transitions cascade to everything namespaced by email.
	authService.Subscribe(cartService)
	authService.Subscribe(favoritesService)
	authService.Subscribe(adminGate)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Account:   accountHandler,
		Product:   productHandler,
		Category:  categoryHandler,
		Cart:      cartHandler,
		Favorites: favoritesHandler,
		Orders:    orderHandler,
		Admin:     adminHandler,
		AdminGate: adminGate,
	}

	server := api.NewServer(appCtx, cfg, log, jwtSvc, handlers)

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
