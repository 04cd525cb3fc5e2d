package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SubRace_Go/internal/scheduler"
	"github.com/osse101/SubRace_Go/internal/server"
	"github.com/osse101/SubRace_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	DailyScoringWorker *worker.DailyScoringWorker
	Pool               *worker.Pool
	App                *App
}

// GracefulShutdown stops components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Timers and the scheduler (stop producing jobs)
// 3. Worker pool (cancel and wait for running jobs)
// 4. Storage connections
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.DailyScoringWorker != nil {
		if err := c.DailyScoringWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}

	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.App != nil {
		c.App.Close()
	}

	slog.Info(LogMsgServerStopped)
}
