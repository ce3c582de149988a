// Package main is the entry point for the Inkwell blog API server.
// It loads configuration, prepares the lazy database handle, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"inkwell/internal/blog"
	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/internal/router"
	"inkwell/internal/store"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load a .env file when present, then configuration from the environment.
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"degraded_reads", cfg.DegradedReads,
	)

	// The database handle connects lazily: the server starts even when the
	// database is down or unconfigured, serving empty reads until it
	// appears. When it is reachable now, run migrations and dev seeding
	// up front.
	handle := database.NewHandle(cfg.DatabaseURL)
	defer handle.Close()

	if db, err := handle.DB(); err != nil {
		slog.Warn("starting without a database — reads degrade, mutations fail", "error", err)
	} else {
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		if cfg.IsDev() {
			if err := database.Seed(db); err != nil {
				slog.Error("failed to seed database", "error", err)
				os.Exit(1)
			}
		}
	}

	// Initialize data stores and the service layer.
	userStore := store.NewUserStore(handle, cfg.OwnerOpenID)
	articleStore := store.NewArticleStore(handle)
	categoryStore := store.NewCategoryStore(handle)
	tagStore := store.NewTagStore(handle)

	svc := blog.New(articleStore, categoryStore, tagStore, userStore, cfg.DegradedReads)

	// Handler groups.
	publicHandlers := handlers.NewPublic(svc)
	adminHandlers := handlers.NewAdmin(svc)

	opts := router.Options{
		Authenticate: middleware.Authenticate(userStore, cfg.JWTSecret),
	}

	// Valkey-backed rate limiting is optional; without it the public API
	// runs unthrottled.
	if addr := cfg.ValkeyAddr(); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.ValkeyPassword,
			DB:       0,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err != nil {
			slog.Warn("valkey unreachable — rate limiting disabled", "addr", addr, "error", err)
		} else {
			defer client.Close()
			limiter := middleware.NewRateLimiter(client, cfg.RateLimit, cfg.RateWindow)
			opts.RateLimit = limiter.Middleware
			slog.Info("rate limiting enabled", "addr", addr, "limit", cfg.RateLimit)
		}
	}

	r := router.New(publicHandlers, adminHandlers, opts)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
