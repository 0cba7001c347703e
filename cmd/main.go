package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	httpadapter "trackpanel/internal/adapter/http"
	"trackpanel/internal/adapter/memory"
	"trackpanel/internal/adapter/notifier"
	"trackpanel/internal/adapter/postgres"
	redisadapter "trackpanel/internal/adapter/redis"
	"trackpanel/internal/adapter/usecase"
	"trackpanel/internal/config"
	"trackpanel/internal/core/port"
	"trackpanel/internal/db"
)

// main is the entry point of the trackpanel service. It loads configuration,
// optionally runs database migrations and demo seeding, initializes the
// database pool, quota backend and repositories, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	// Fixed-mode sampling caps need an atomic shared counter. Redis backs
	// it when configured; otherwise an in-process counter is used, which
	// is only correct for a single instance.
	var quota port.SampleQuota
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		if err = client.Ping(ctx).Err(); err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			os.Exit(1)
		}
		quota = redisadapter.NewQuota(client)
		logger.Info("sampling quota backed by redis", slog.String("addr", cfg.Redis.Addr))
	} else {
		quota = memory.NewQuota()
		logger.Warn("sampling quota is in-process; run a single instance or configure REDIS_ADDR")
	}

	repo := postgres.NewTrackerRepository(pool)
	postbacks := notifier.NewHTTPNotifier(logger, cfg.Postback.Timeout, cfg.Postback.MaxAttempts)
	svc := usecase.NewTrackerUseCase(repo, quota, postbacks, logger)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
