package repository

import (
	"context"
	"time"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// Snapshot defines the data access interface for subscriber snapshots
type Snapshot interface {
	InsertSnapshot(ctx context.Context, snapshot *domain.Snapshot) error
	// GetLatestSnapshotBefore returns nil, nil when the streamer has no
	// snapshot strictly before the given instant
	GetLatestSnapshotBefore(ctx context.Context, streamerID string, before time.Time) (*domain.Snapshot, error)
	// GetLatestSnapshotsInRange returns at most one snapshot per streamer:
	// the latest with from <= taken_at < to
	GetLatestSnapshotsInRange(ctx context.Context, from, to time.Time) ([]domain.Snapshot, error)
	// GetLatestSnapshots returns the latest snapshot of every streamer
	GetLatestSnapshots(ctx context.Context) ([]domain.Snapshot, error)
	// GetSnapshotHistory returns snapshots since the given instant, oldest
	// first. An empty streamerID selects every streamer.
	GetSnapshotHistory(ctx context.Context, streamerID string, since time.Time) ([]domain.Snapshot, error)
	DeleteSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
