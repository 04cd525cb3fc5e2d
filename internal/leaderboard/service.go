package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/logger"
	"github.com/osse101/SubRace_Go/internal/repository"
)

// Service serves the ranked user list and team aggregates
type Service interface {
	// Get returns the top users, optionally filtered by team, with team stats
	Get(ctx context.Context, teamID string) (*domain.Leaderboard, error)
	// Invalidate drops cached boards, e.g. after a scoring pass
	Invalidate(ctx context.Context)
}

type service struct {
	repo  repository.Leaderboard
	cache *boardCache
}

// NewService creates a leaderboard service with a TTL cache. A non-positive
// ttl falls back to DefaultCacheTTL.
func NewService(repo repository.Leaderboard, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		repo:  repo,
		cache: newBoardCache(DefaultCacheSize, ttl),
	}
}

func (s *service) Get(ctx context.Context, teamID string) (*domain.Leaderboard, error) {
	if board, ok := s.cache.Get(teamID); ok {
		return board, nil
	}

	entries, err := s.repo.GetTopUsers(ctx, teamID, domain.LeaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	teams, err := s.repo.GetTeamStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load team stats: %w", err)
	}

	board := &domain.Leaderboard{Entries: entries, TeamStats: teams}
	s.cache.Set(teamID, board)
	return board, nil
}

func (s *service) Invalidate(ctx context.Context) {
	s.cache.Clear()
	logger.FromContext(ctx).Debug(LogMsgCacheCleared)
}
