package repository

import (
	"context"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// Leaderboard defines read-only ranking queries
type Leaderboard interface {
	// GetTopUsers ranks users by points. An empty teamID selects everyone.
	GetTopUsers(ctx context.Context, teamID string, limit int) ([]domain.LeaderboardEntry, error)
	GetTeamStats(ctx context.Context) ([]domain.TeamStats, error)
}
