// @title SubRace API
// @version 1.0
// @description Subscriber tracking and daily prediction game for a group of livestreamers.
// @BasePath /
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

	"github.com/osse101/SubRace_Go/internal/bootstrap"
	"github.com/osse101/SubRace_Go/internal/config"
	"github.com/osse101/SubRace_Go/internal/scheduler"
	"github.com/osse101/SubRace_Go/internal/server"
	"github.com/osse101/SubRace_Go/internal/worker"
)

const (
	workerCount     = 2
	jobQueueSize    = 16
	shutdownTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx := context.Background()

	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.Streamer.Seed(ctx); err != nil {
		slog.Error("Failed to seed streamers", "error", err)
		app.Close()
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		CronSecret:     cfg.CronSecret,
		TrustedProxies: cfg.TrustedProxies,
	}, app.Pinger(), server.Services{
		Ingest:      app.Ingest,
		Scoring:     app.Scoring,
		Streamer:    app.Streamer,
		Subs:        app.Subs,
		User:        app.User,
		Prediction:  app.Prediction,
		Leaderboard: app.Leaderboard,
		Events:      app.Events,
	})

	components := bootstrap.ShutdownComponents{Server: srv, App: app}

	if cfg.EnableScheduler {
		pool := worker.NewPool(workerCount, jobQueueSize)
		pool.Start()

		sched := scheduler.New(pool)
		sched.Schedule("ingest", cfg.IngestInterval, &worker.IngestJob{Service: app.Ingest}, true)

		daily := worker.NewDailyScoringWorker(pool, &worker.ScoringJob{Service: app.Scoring},
			cfg.Location, cfg.ScoringHour, cfg.ScoringMinute)
		daily.Start()

		components.Pool = pool
		components.Scheduler = sched
		components.DailyScoringWorker = daily
		slog.Info("Scheduler enabled",
			"ingest_interval", cfg.IngestInterval,
			"scoring_hour", cfg.ScoringHour,
			"scoring_minute", cfg.ScoringMinute,
			"timezone", cfg.Location.String())
	} else {
		slog.Info("Scheduler disabled, expecting external cron triggers")
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)
}
