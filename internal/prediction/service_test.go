package prediction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SubRace_Go/internal/database/memory"
	"github.com/osse101/SubRace_Go/internal/domain"
)

type fixture struct {
	svc   *service
	store *memory.Store
	lacy  domain.Streamer
	silky domain.Streamer
	user  *domain.User
}

var fixedNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	lacy := domain.Streamer{Name: "Lacy", Handle: "lacy", Color: "#FFE66D"}
	silky := domain.Streamer{Name: "Silky", Handle: "silky", Color: "#4ECDC4"}
	require.NoError(t, store.UpsertStreamer(ctx, &lacy))
	require.NoError(t, store.UpsertStreamer(ctx, &silky))

	user := &domain.User{AnonymousID: "anon_1", Username: "SwiftWolf1", Coins: 100, Level: 1, ReferralCode: "AAAA1111", TeamID: lacy.ID}
	require.NoError(t, store.CreateUser(ctx, user))

	svc := NewService(store, store, store, time.UTC).(*service)
	svc.now = func() time.Time { return fixedNow }

	return &fixture{svc: svc, store: store, lacy: lacy, silky: silky, user: user}
}

func (f *fixture) request(winnerID string) domain.SubmitPredictionRequest {
	return domain.SubmitPredictionRequest{
		AnonymousID:        f.user.AnonymousID,
		WinnerID:           winnerID,
		PredictedTeamSubs:  1040,
		PredictedTotalSubs: 10800,
	}
}

func TestSubmit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.Submit(ctx, f.request(f.lacy.ID))
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.True(t, p.Locked)
	assert.False(t, p.Scored)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), p.Date)

	u, err := f.store.GetUserByID(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(110), u.Coins)
	assert.True(t, u.LastActive.Equal(fixedNow))
}

func TestSubmit_OncePerDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, f.request(f.lacy.ID))
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, f.request(f.silky.ID))
	assert.ErrorIs(t, err, domain.ErrPredictionExists)
	assert.EqualError(t, err, domain.ErrMsgPredictionExists)

	u, err := f.store.GetUserByID(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(110), u.Coins, "coins credited once")

	// Next day is open again
	f.svc.now = func() time.Time { return fixedNow.Add(24 * time.Hour) }
	_, err = f.svc.Submit(ctx, f.request(f.silky.ID))
	assert.NoError(t, err)
}

func TestSubmit_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	noTeam := &domain.User{AnonymousID: "anon_2", Username: "BoldHawk2", ReferralCode: "BBBB2222"}
	require.NoError(t, f.store.CreateUser(ctx, noTeam))

	tests := []struct {
		name    string
		req     domain.SubmitPredictionRequest
		wantErr error
	}{
		{"unknown user", domain.SubmitPredictionRequest{AnonymousID: "missing", WinnerID: f.lacy.ID}, domain.ErrUserNotFound},
		{"no team", domain.SubmitPredictionRequest{AnonymousID: "anon_2", WinnerID: f.lacy.ID}, domain.ErrTeamRequired},
		{"unknown winner", domain.SubmitPredictionRequest{AnonymousID: "anon_1", WinnerID: "00000000-0000-0000-0000-000000000099"}, domain.ErrStreamerNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Submit(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i, anon := range []string{"anon_a", "anon_b"} {
		u := &domain.User{AnonymousID: anon, Username: anon, TeamID: f.silky.ID, ReferralCode: []string{"CCCC3333", "DDDD4444"}[i]}
		require.NoError(t, f.store.CreateUser(ctx, u))
		_, err := f.svc.Submit(ctx, domain.SubmitPredictionRequest{AnonymousID: anon, WinnerID: f.silky.ID})
		require.NoError(t, err)
	}
	_, err := f.svc.Submit(ctx, f.request(f.lacy.ID))
	require.NoError(t, err)

	today, err := f.svc.Today(ctx, "anon_1")
	require.NoError(t, err)
	assert.Equal(t, 3, today.CommunityStats.TotalPredictions)
	require.Len(t, today.CommunityStats.Streamers, 2)
	assert.Equal(t, "Silky", today.CommunityStats.Streamers[0].Name)
	assert.Equal(t, 2, today.CommunityStats.Streamers[0].Count)
	assert.Equal(t, 67, today.CommunityStats.Streamers[0].Percentage)
	assert.Equal(t, 33, today.CommunityStats.Streamers[1].Percentage)
	require.NotNil(t, today.UserPrediction)
	assert.Equal(t, f.lacy.ID, today.UserPrediction.PredictedWinnerID)

	anonymous, err := f.svc.Today(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, anonymous.UserPrediction)

	unknown, err := f.svc.Today(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, unknown.UserPrediction)
}

func TestCommunityStats_Empty(t *testing.T) {
	stats := CommunityStats([]domain.Streamer{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}, nil)
	assert.Equal(t, 0, stats.TotalPredictions)
	require.Len(t, stats.Streamers, 2)
	assert.Equal(t, "A", stats.Streamers[0].Name, "ties keep roster order")
	assert.Equal(t, 0, stats.Streamers[0].Percentage)
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for d := 0; d < 12; d++ {
		day := fixedNow.AddDate(0, 0, d)
		f.svc.now = func() time.Time { return day }
		_, err := f.svc.Submit(ctx, f.request(f.lacy.ID))
		require.NoError(t, err)
	}

	history, err := f.svc.History(ctx, "anon_1")
	require.NoError(t, err)
	require.Len(t, history, domain.PredictionHistoryLimit)
	assert.True(t, history[0].Date.After(history[1].Date), "newest first")
	assert.Equal(t, time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC), history[0].Date)

	_, err = f.svc.History(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
