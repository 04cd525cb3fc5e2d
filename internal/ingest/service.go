package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/SubRace_Go/internal/concurrency"
	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/logger"
	"github.com/osse101/SubRace_Go/internal/metrics"
	"github.com/osse101/SubRace_Go/internal/repository"
	"github.com/osse101/SubRace_Go/internal/scraper"
	"github.com/osse101/SubRace_Go/internal/streamer"
)

// Service runs the subscriber ingestion step
type Service interface {
	Run(ctx context.Context) (*domain.IngestSummary, error)
}

// Config tunes ingestion
type Config struct {
	Retention time.Duration
	LeaseTTL  time.Duration
}

type service struct {
	streamers    streamer.Service
	snapshotRepo repository.Snapshot
	scraper      scraper.Scraper
	leaser       concurrency.Leaser
	cfg          Config
	now          func() time.Time
}

// NewService creates an ingestion service
func NewService(
	streamers streamer.Service,
	snapshotRepo repository.Snapshot,
	sc scraper.Scraper,
	leaser concurrency.Leaser,
	cfg Config,
) Service {
	if cfg.Retention <= 0 {
		cfg.Retention = domain.DefaultSnapshotRetention
	}
	if cfg.LeaseTTL <= 0 {
		cfg.LeaseTTL = DefaultLeaseTTL
	}
	return &service{
		streamers:    streamers,
		snapshotRepo: snapshotRepo,
		scraper:      sc,
		leaser:       leaser,
		cfg:          cfg,
		now:          time.Now,
	}
}

func (s *service) Run(ctx context.Context) (*domain.IngestSummary, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	lease, err := s.leaser.TryAcquire(ctx, LeaseKey, s.cfg.LeaseTTL)
	if err != nil {
		if errors.Is(err, concurrency.ErrLeaseHeld) {
			log.Warn(LogMsgLeaseHeld)
			metrics.LeaseContention.WithLabelValues(LeaseKey).Inc()
			metrics.IngestRunsTotal.WithLabelValues(metrics.ResultBusy).Inc()
			return nil, domain.ErrIngestInProgress
		}
		metrics.IngestRunsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("failed to acquire ingestion lease: %w", err)
	}
	defer func() {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			log.Error(LogMsgLeaseReleaseFail, "error", err)
		}
	}()

	log.Info(LogMsgRunStarted)
	summary, err := s.run(ctx)
	metrics.IngestRunDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.IngestRunsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}
	metrics.IngestRunsTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	log.Info(LogMsgRunCompleted,
		"scraped", summary.ScrapedCount,
		"saved", len(summary.Data),
		"pruned", summary.Pruned,
		"duration", time.Since(start))
	return summary, nil
}

func (s *service) run(ctx context.Context) (*domain.IngestSummary, error) {
	log := logger.FromContext(ctx)

	// 1. Seed roster, enrich best effort
	if err := s.streamers.Seed(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed streamers: %w", err)
	}
	if _, err := s.streamers.SyncProfiles(ctx); err != nil {
		log.Warn(LogMsgProfileSyncFail, "error", err)
	}

	// 2. Roster
	streamers, err := s.streamers.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(streamers) == 0 {
		return nil, domain.ErrNoStreamers
	}

	byHandle := make(map[string]domain.Streamer, len(streamers))
	handles := make([]string, 0, len(streamers))
	for _, st := range streamers {
		byHandle[strings.ToLower(st.Handle)] = st
		handles = append(handles, st.Handle)
	}

	// 3. Scrape; failures are already dropped
	scraped := s.scraper.ScrapeAll(ctx, handles)

	// 4. Persist with growth
	now := s.now()
	summary := &domain.IngestSummary{
		Success:      true,
		ScrapedCount: len(scraped),
		Data:         make([]domain.IngestedStreamer, 0, len(scraped)),
	}

	for _, data := range scraped {
		st, ok := byHandle[strings.ToLower(data.Handle)]
		if !ok {
			log.Warn(LogMsgUnmatchedHandle, "handle", data.Handle)
			continue
		}

		previous, err := s.snapshotRepo.GetLatestSnapshotBefore(ctx, st.ID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to load previous snapshot for %s: %w", st.Handle, err)
		}

		snap := NewSnapshot(st.ID, now, data, previous)
		if err := s.snapshotRepo.InsertSnapshot(ctx, snap); err != nil {
			return nil, fmt.Errorf("failed to save snapshot for %s: %w", st.Handle, err)
		}
		metrics.SnapshotsIngested.Inc()

		summary.Data = append(summary.Data, domain.IngestedStreamer{
			Streamer:  st.Name,
			TotalSubs: snap.TotalSubs,
			Growth:    snap.Growth,
		})
	}

	// 5. Retention, even when nothing was scraped
	pruned, err := s.snapshotRepo.DeleteSnapshotsBefore(ctx, now.Add(-s.cfg.Retention))
	if err != nil {
		return nil, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	metrics.SnapshotsPruned.Add(float64(pruned))
	summary.Pruned = pruned
	summary.Timestamp = now

	return summary, nil
}

// NewSnapshot builds the snapshot for a scrape. Growth is measured against
// the previous snapshot, or 0 when there is none.
func NewSnapshot(streamerID string, at time.Time, data domain.ScrapedSubs, previous *domain.Snapshot) *domain.Snapshot {
	var growth int64
	if previous != nil {
		growth = data.TotalSubs - previous.TotalSubs
	}
	return &domain.Snapshot{
		StreamerID: streamerID,
		TakenAt:    at,
		TotalSubs:  data.TotalSubs,
		PaidSubs:   data.PaidSubs,
		GiftedSubs: data.GiftedSubs,
		PrimeSubs:  data.PrimeSubs,
		Tier1Subs:  data.Tier1Subs,
		Tier2Subs:  data.Tier2Subs,
		Tier3Subs:  data.Tier3Subs,
		Growth:     growth,
	}
}
