package subs

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/repository"
)

// Service serves subscriber reads for the dashboard
type Service interface {
	// Latest returns streamers with data, most subscribers first
	Latest(ctx context.Context) (*domain.LatestSubs, error)
	// History returns snapshots for the last days, oldest first. Days is
	// clamped to [1, MaxHistoryDays]; zero means DefaultHistoryDays.
	History(ctx context.Context, streamerID string, days int) ([]domain.Snapshot, error)
	ExportHistoryCSV(ctx context.Context, w io.Writer, streamerID string, days int) error
}

// HistoryRow is one CSV export line
type HistoryRow struct {
	Streamer   string `csv:"streamer"`
	Handle     string `csv:"handle"`
	Timestamp  string `csv:"timestamp"`
	TotalSubs  int64  `csv:"total_subs"`
	PaidSubs   int64  `csv:"paid_subs"`
	GiftedSubs int64  `csv:"gifted_subs"`
	PrimeSubs  int64  `csv:"prime_subs"`
	Tier1Subs  int64  `csv:"tier1_subs"`
	Tier2Subs  int64  `csv:"tier2_subs"`
	Tier3Subs  int64  `csv:"tier3_subs"`
	Growth     int64  `csv:"growth"`
}

type service struct {
	streamerRepo repository.Streamer
	snapshotRepo repository.Snapshot
	latest       *expirable.LRU[string, *domain.LatestSubs]
	now          func() time.Time
}

// NewService creates a subs read service. A non-positive ttl falls back to
// DefaultLatestTTL.
func NewService(streamerRepo repository.Streamer, snapshotRepo repository.Snapshot, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultLatestTTL
	}
	return &service{
		streamerRepo: streamerRepo,
		snapshotRepo: snapshotRepo,
		latest:       expirable.NewLRU[string, *domain.LatestSubs](1, nil, ttl),
		now:          time.Now,
	}
}

func (s *service) Latest(ctx context.Context) (*domain.LatestSubs, error) {
	if cached, ok := s.latest.Get(latestKey); ok {
		return cached, nil
	}

	streamers, err := s.streamerRepo.ListStreamers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list streamers: %w", err)
	}
	snapshots, err := s.snapshotRepo.GetLatestSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest snapshots: %w", err)
	}

	byStreamer := make(map[string]domain.Snapshot, len(snapshots))
	for _, snap := range snapshots {
		byStreamer[snap.StreamerID] = snap
	}

	result := &domain.LatestSubs{Streamers: make([]domain.StreamerSubs, 0, len(streamers))}
	for _, st := range streamers {
		snap, ok := byStreamer[st.ID]
		if !ok {
			continue
		}
		result.Streamers = append(result.Streamers, domain.StreamerSubs{Streamer: st, Snapshot: &snap})
		result.CombinedTotal += snap.TotalSubs
	}
	sort.SliceStable(result.Streamers, func(i, j int) bool {
		return result.Streamers[i].Snapshot.TotalSubs > result.Streamers[j].Snapshot.TotalSubs
	})

	if len(result.Streamers) > 0 {
		result.Timestamp = result.Streamers[0].Snapshot.TakenAt
	} else {
		result.Timestamp = s.now()
	}

	s.latest.Add(latestKey, result)
	return result, nil
}

// ClampDays applies the history window defaults
func ClampDays(days int) int {
	switch {
	case days <= 0:
		return domain.DefaultHistoryDays
	case days > domain.MaxHistoryDays:
		return domain.MaxHistoryDays
	default:
		return days
	}
}

func (s *service) History(ctx context.Context, streamerID string, days int) ([]domain.Snapshot, error) {
	since := s.now().AddDate(0, 0, -ClampDays(days))
	history, err := s.snapshotRepo.GetSnapshotHistory(ctx, streamerID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return history, nil
}

func (s *service) ExportHistoryCSV(ctx context.Context, w io.Writer, streamerID string, days int) error {
	history, err := s.History(ctx, streamerID, days)
	if err != nil {
		return err
	}
	streamers, err := s.streamerRepo.ListStreamers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list streamers: %w", err)
	}
	byID := make(map[string]domain.Streamer, len(streamers))
	for _, st := range streamers {
		byID[st.ID] = st
	}

	rows := make([]HistoryRow, 0, len(history))
	for _, snap := range history {
		st := byID[snap.StreamerID]
		rows = append(rows, HistoryRow{
			Streamer:   st.Name,
			Handle:     st.Handle,
			Timestamp:  snap.TakenAt.UTC().Format(time.RFC3339),
			TotalSubs:  snap.TotalSubs,
			PaidSubs:   snap.PaidSubs,
			GiftedSubs: snap.GiftedSubs,
			PrimeSubs:  snap.PrimeSubs,
			Tier1Subs:  snap.Tier1Subs,
			Tier2Subs:  snap.Tier2Subs,
			Tier3Subs:  snap.Tier3Subs,
			Growth:     snap.Growth,
		})
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
