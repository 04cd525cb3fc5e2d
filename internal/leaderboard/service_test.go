package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SubRace_Go/internal/database/memory"
	"github.com/osse101/SubRace_Go/internal/domain"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetTopUsers(ctx context.Context, teamID string, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, teamID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *mockRepo) GetTeamStats(ctx context.Context) ([]domain.TeamStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamStats), args.Error(1)
}

func TestGet_CachesPerTeam(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTopUsers", mock.Anything, "", domain.LeaderboardLimit).
		Return([]domain.LeaderboardEntry{{Rank: 1, Username: "a"}}, nil).Once()
	repo.On("GetTopUsers", mock.Anything, "team-1", domain.LeaderboardLimit).
		Return([]domain.LeaderboardEntry{}, nil).Once()
	repo.On("GetTeamStats", mock.Anything).Return([]domain.TeamStats{}, nil).Twice()

	svc := NewService(repo, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		board, err := svc.Get(ctx, "")
		require.NoError(t, err)
		assert.Len(t, board.Entries, 1)
	}
	_, err := svc.Get(ctx, "team-1")
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestInvalidate(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTopUsers", mock.Anything, "", domain.LeaderboardLimit).Return([]domain.LeaderboardEntry{}, nil).Twice()
	repo.On("GetTeamStats", mock.Anything).Return([]domain.TeamStats{}, nil).Twice()

	svc := NewService(repo, time.Minute)
	ctx := context.Background()

	_, err := svc.Get(ctx, "")
	require.NoError(t, err)
	svc.Invalidate(ctx)
	_, err = svc.Get(ctx, "")
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestGet_ErrorsAreNotCached(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetTopUsers", mock.Anything, "", domain.LeaderboardLimit).Return(nil, errors.New("boom")).Once()
	repo.On("GetTopUsers", mock.Anything, "", domain.LeaderboardLimit).Return([]domain.LeaderboardEntry{}, nil).Once()
	repo.On("GetTeamStats", mock.Anything).Return([]domain.TeamStats{}, nil).Once()

	svc := NewService(repo, time.Minute)

	_, err := svc.Get(context.Background(), "")
	assert.Error(t, err)
	_, err = svc.Get(context.Background(), "")
	assert.NoError(t, err)
}

func TestCache_VersionMismatch(t *testing.T) {
	c := newBoardCache(4, time.Minute)
	c.lru.Add(allTeamsKey, &cachedBoard{Version: "0.9", Board: &domain.Leaderboard{}})

	_, ok := c.Get("")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestGet_WithMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	team := domain.Streamer{Name: "Lacy", Handle: "lacy", Color: "#FFE66D"}
	require.NoError(t, store.UpsertStreamer(ctx, &team))
	require.NoError(t, store.CreateUser(ctx, &domain.User{AnonymousID: "a", Username: "a", Points: 500, TeamID: team.ID, TotalPredictions: 3, CorrectPredictions: 2}))
	require.NoError(t, store.CreateUser(ctx, &domain.User{AnonymousID: "b", Username: "b", Points: 900}))

	board, err := NewService(store, 0).Get(ctx, "")
	require.NoError(t, err)
	require.Len(t, board.Entries, 2)
	assert.Equal(t, "b", board.Entries[0].Username)
	assert.Equal(t, domain.NoTeamName, board.Entries[0].TeamName)
	assert.Equal(t, domain.NoTeamColor, board.Entries[0].TeamColor)
	assert.Equal(t, "Lacy", board.Entries[1].TeamName)
	assert.Equal(t, 67, board.Entries[1].Accuracy)
	require.Len(t, board.TeamStats, 1)
	assert.Equal(t, int64(500), board.TeamStats[0].TotalPoints)
}
