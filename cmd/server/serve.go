package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"content-api/internal/config"
	"content-api/internal/health"
	"content-api/internal/infrastructure/database"
	"content-api/internal/logger"
	"content-api/internal/metrics"
	"content-api/internal/repository"
	"content-api/internal/service"
	"content-api/internal/validator"
)

const shutdownTimeout = 10 * time.Second

// serve starts the HTTP server. The listener comes up before the store is
// reached; until the monitor sees the store, content routes answer 503.
func serve(ctx context.Context, _ *cli.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	monitor := health.NewMonitor(cfg.StorePingInterval)

	pool, err := database.NewPostgres(ctx, poolConfig(cfg), monitor)
	if err != nil {
		return err
	}
	defer pool.Close()

	monitor.Start(pool)
	defer monitor.Stop()

	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	content := service.NewContentService(
		repository.NewPostgresArticleRepository(pool),
		repository.NewPostgresCategoryRepository(pool),
		repository.NewPostgresAuthorRepository(pool),
		validator.NewValidator(),
	)

	router, err := newRouter(cfg, content, monitor)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			slog.String("addr", srv.Addr),
			slog.String("api_prefix", cfg.APIPrefix),
			slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}
	metrics.LogPoolStats(pool)

	logger.Info("Server exited")
	return nil
}

func poolConfig(cfg *config.Config) database.PoolConfig {
	return database.PoolConfig{
		DSN:               cfg.DatabaseDSN(),
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
		ConnectTimeout:    cfg.DBConnectTimeout,
	}
}
