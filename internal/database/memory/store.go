// Package memory is a process-local implementation of every repository
// interface. It backs STORAGE=memory and the service tests.
package memory

import (
	"sync"
	"time"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/repository"
)

// Store holds all state behind a single mutex
type Store struct {
	mu          sync.Mutex
	streamers   map[string]*domain.Streamer
	snapshots   []*domain.Snapshot
	users       map[string]*domain.User
	predictions map[string]*domain.Prediction
	now         func() time.Time
}

// Compile-time interface checks
var (
	_ repository.Streamer    = (*Store)(nil)
	_ repository.Snapshot    = (*Store)(nil)
	_ repository.User        = (*Store)(nil)
	_ repository.Prediction  = (*Store)(nil)
	_ repository.Leaderboard = (*Store)(nil)
)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		streamers:   make(map[string]*domain.Streamer),
		users:       make(map[string]*domain.User),
		predictions: make(map[string]*domain.Prediction),
		now:         time.Now,
	}
}
