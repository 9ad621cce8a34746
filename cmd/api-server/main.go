package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"bookworm/database"
	"bookworm/internal/cache"
	"bookworm/internal/config"
	"bookworm/internal/microservices/http-api/server"
	"bookworm/internal/microservices/http-api/service"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Connect to the database
	db, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Error("database_connect_failed", "error", err.Error())
		os.Exit(1)
	}
	defer database.Close(db)

	// 3. Optional dashboard cache
	var statsCache service.AdminStatsCache
	if cfg.CacheEnabled() {
		c, err := cache.NewStatsCache(ctx, cfg.RedisURL, cfg.RedisPassword, cfg.StatsCacheTTL)
		if err != nil {
			logger.Warn("stats_cache_disabled", "error", err.Error())
		} else {
			defer c.Close()
			statsCache = c
			logger.Info("stats_cache_enabled", "ttl", cfg.StatsCacheTTL.String())
		}
	}

	// 4. Setup Gin
	router := server.NewRouter(server.Options{
		DB:             db,
		Cache:          statsCache,
		Logger:         logger,
		RequestTimeout: cfg.RequestTimeout,
		CORSOrigins:    cfg.CORSOrigins,
		Ping: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("http_server_listening", "addr", cfg.Addr(), "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("received_shutdown_signal")
	case err := <-errChan:
		logger.Error("server_error", "error", err.Error())
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_failed", "error", err.Error())
		return
	}
	logger.Info("server_stopped_gracefully")
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
