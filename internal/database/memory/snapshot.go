package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SubRace_Go/internal/domain"
)

func (s *Store) InsertSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}
	stored := *snapshot
	s.snapshots = append(s.snapshots, &stored)
	return nil
}

func (s *Store) GetLatestSnapshotBefore(ctx context.Context, streamerID string, before time.Time) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *domain.Snapshot
	for _, snap := range s.snapshots {
		if snap.StreamerID != streamerID || !snap.TakenAt.Before(before) {
			continue
		}
		if latest == nil || snap.TakenAt.After(latest.TakenAt) {
			latest = snap
		}
	}
	if latest == nil {
		return nil, nil
	}
	out := *latest
	return &out, nil
}

func (s *Store) GetLatestSnapshotsInRange(ctx context.Context, from, to time.Time) ([]domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latestPerStreamer(func(snap *domain.Snapshot) bool {
		return !snap.TakenAt.Before(from) && snap.TakenAt.Before(to)
	}), nil
}

func (s *Store) GetLatestSnapshots(ctx context.Context) ([]domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latestPerStreamer(func(*domain.Snapshot) bool { return true }), nil
}

func (s *Store) GetSnapshotHistory(ctx context.Context, streamerID string, since time.Time) ([]domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Snapshot, 0)
	for _, snap := range s.snapshots {
		if streamerID != "" && snap.StreamerID != streamerID {
			continue
		}
		if snap.TakenAt.Before(since) {
			continue
		}
		out = append(out, *snap)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TakenAt.Before(out[j].TakenAt) })
	return out, nil
}

func (s *Store) DeleteSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.snapshots[:0]
	var deleted int64
	for _, snap := range s.snapshots {
		if snap.TakenAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, snap)
	}
	s.snapshots = kept
	return deleted, nil
}

// latestPerStreamer must be called with mu held
func (s *Store) latestPerStreamer(match func(*domain.Snapshot) bool) []domain.Snapshot {
	latest := make(map[string]*domain.Snapshot)
	for _, snap := range s.snapshots {
		if !match(snap) {
			continue
		}
		if prev, ok := latest[snap.StreamerID]; !ok || snap.TakenAt.After(prev.TakenAt) {
			latest[snap.StreamerID] = snap
		}
	}
	out := make([]domain.Snapshot, 0, len(latest))
	for _, snap := range latest {
		out = append(out, *snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StreamerID < out[j].StreamerID })
	return out
}
