package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "lp-publisher/internal/adapter/http"
	"lp-publisher/internal/adapter/postgres"
	"lp-publisher/internal/adapter/redislock"
	"lp-publisher/internal/adapter/sharedstore"
	"lp-publisher/internal/adapter/usecase"
	"lp-publisher/internal/config"
	"lp-publisher/internal/db"
	"lp-publisher/internal/scheduler"
)

// main is the entry point of lp-publisher. It loads configuration, runs
// migrations, wires the reconciler to Postgres and the shared store, then
// starts the operations HTTP server and, when enabled, the daily job
// scheduler. On SIGINT or SIGTERM it shuts both down.
func main() {
	if err := run(); err != nil {
		slog.Error("lp-publisher stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return err
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool); err != nil {
			return err
		}
		logger.Info("demo data seeded")
	}

	store, err := sharedstore.New(ctx, cfg.Shared)
	if err != nil {
		return fmt.Errorf("shared store: %w", err)
	}

	location, err := cfg.Reconcile.Location()
	if err != nil {
		return err
	}

	repo := postgres.NewCampaignRepository(pool)
	reconciler := usecase.NewReconcilerUseCase(repo, store, usecase.ReconcilerConfig{
		StatusKeyPrefix: cfg.Reconcile.StatusKeyPrefix,
		OrderKeyPrefix:  cfg.Reconcile.OrderKeyPrefix,
		Location:        location,
	}, logger.With(slog.String("component", "reconciler")))
	funding := usecase.NewFundingUseCase(repo, location, logger.With(slog.String("component", "funding")))

	schedulerDone := make(chan struct{})
	if cfg.Scheduler.Enabled {
		rdb, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()

		sched := scheduler.New(redislock.NewLocker(rdb), cfg.Scheduler, location,
			logger.With(slog.String("component", "scheduler")),
			scheduler.Job{Name: "renew", Run: func(ctx context.Context) error {
				_, err := reconciler.RenewMonthlyCampaigns(ctx)
				return err
			}},
			scheduler.Job{Name: "stats", Run: func(ctx context.Context) error {
				_, err := reconciler.UpdateCampaignsStatsFromSharedStorage(ctx)
				return err
			}},
			scheduler.Job{Name: "quota", Run: func(ctx context.Context) error {
				_, err := reconciler.PostCampaignsImpressionQuotaToSharedStorage(ctx)
				return err
			}},
		)
		go func() {
			defer close(schedulerDone)
			sched.Run(ctx)
		}()
	} else {
		close(schedulerDone)
	}

	handler := httpadapter.NewHandler(reconciler, funding, logger.With(slog.String("component", "http")))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err = <-serveErr:
		cancel()
		<-schedulerDone
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	<-schedulerDone
	return nil
}
