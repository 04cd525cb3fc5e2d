package worker

import (
	"context"
	"errors"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/ingest"
	"github.com/osse101/SubRace_Go/internal/logger"
	"github.com/osse101/SubRace_Go/internal/scoring"
)

// IngestJob runs one ingestion pass
type IngestJob struct {
	Service ingest.Service
}

func (j *IngestJob) Process(ctx context.Context) error {
	ctx = logger.WithRun(ctx, logger.TriggerScheduler)
	log := logger.FromContext(ctx)

	summary, err := j.Service.Run(ctx)
	if errors.Is(err, domain.ErrIngestInProgress) {
		log.Info(LogMsgWorkerJobSkipped, "job", "ingest")
		return nil
	}
	if err != nil {
		return err
	}
	log.Info(LogMsgIngestJobCompleted, "scraped", summary.ScrapedCount, "pruned", summary.Pruned)
	return nil
}

// ScoringJob runs one daily scoring pass
type ScoringJob struct {
	Service scoring.Service
}

func (j *ScoringJob) Process(ctx context.Context) error {
	ctx = logger.WithRun(ctx, logger.TriggerScheduler)
	log := logger.FromContext(ctx)

	summary, err := j.Service.RunDailyPass(ctx)
	if errors.Is(err, domain.ErrScoringInProgress) {
		log.Info(LogMsgWorkerJobSkipped, "job", "scoring")
		return nil
	}
	if err != nil {
		return err
	}
	log.Info(LogMsgScoringJobCompleted,
		"scored", summary.Scored,
		"skipped", summary.Skipped,
		"quarantined", summary.Quarantined)
	return nil
}
