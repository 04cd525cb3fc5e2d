package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SubRace_Go/internal/database/memory"
	"github.com/osse101/SubRace_Go/internal/database/postgres"
	"github.com/osse101/SubRace_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Streamer    repository.Streamer
	Snapshot    repository.Snapshot
	User        repository.User
	Prediction  repository.Prediction
	Leaderboard repository.Leaderboard
}

// InitializeRepositories creates the PostgreSQL repositories
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Streamer:    postgres.NewStreamerRepository(dbPool),
		Snapshot:    postgres.NewSnapshotRepository(dbPool),
		User:        postgres.NewUserRepository(dbPool),
		Prediction:  postgres.NewPredictionRepository(dbPool),
		Leaderboard: postgres.NewLeaderboardRepository(dbPool),
	}
}

// InMemoryRepositories serves every repository from one process-local store
func InMemoryRepositories(store *memory.Store) *Repositories {
	return &Repositories{
		Streamer:    store,
		Snapshot:    store,
		User:        store,
		Prediction:  store,
		Leaderboard: store,
	}
}
