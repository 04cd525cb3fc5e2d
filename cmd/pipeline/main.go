// Command pipeline runs a single pipeline step and exits. It is meant for
// external schedulers that do not call the HTTP cron endpoints.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/osse101/SubRace_Go/internal/bootstrap"
	"github.com/osse101/SubRace_Go/internal/config"
	"github.com/osse101/SubRace_Go/internal/database"
	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/logger"
)

const (
	stepIngest  = "ingest"
	stepScore   = "score"
	stepMigrate = "migrate"
)

// Exit code for a run skipped because another instance holds the lease
const exitBusy = 3

func main() {
	step := flag.String("step", "", "pipeline step to run: ingest|score|migrate")
	timeout := flag.Duration("timeout", 10*time.Minute, "maximum run time")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger.Init(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, bootstrap.ServiceName, cfg.Version, cfg.Environment, false), os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := run(ctx, cfg, *step)
	if err != nil {
		slog.Error("Pipeline step failed", "step", *step, "error", err)
		if errors.Is(err, errBusy) {
			os.Exit(exitBusy)
		}
		os.Exit(1)
	}

	if result != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	}
}

var errBusy = errors.New("another run holds the lease")

func run(ctx context.Context, cfg *config.Config, step string) (any, error) {
	switch step {
	case stepMigrate:
		if cfg.Storage != config.StoragePostgres {
			return nil, fmt.Errorf("migrate requires STORAGE=%s", config.StoragePostgres)
		}
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return nil, database.Migrate(ctx, pool)

	case stepIngest, stepScore:
		app, err := bootstrap.NewApp(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer app.Close()

		ctx = logger.WithRun(ctx, logger.TriggerCLI)
		if step == stepIngest {
			summary, err := app.Ingest.Run(ctx)
			return summary, wrapBusy(err)
		}
		summary, err := app.Scoring.RunDailyPass(ctx)
		return summary, wrapBusy(err)

	default:
		flag.Usage()
		return nil, fmt.Errorf("unknown step %q", step)
	}
}

func wrapBusy(err error) error {
	if errors.Is(err, domain.ErrIngestInProgress) || errors.Is(err, domain.ErrScoringInProgress) {
		return fmt.Errorf("%w: %w", errBusy, err)
	}
	return err
}
