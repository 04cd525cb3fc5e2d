package user

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SubRace_Go/internal/database/memory"
	"github.com/osse101/SubRace_Go/internal/domain"
)

var usernamePattern = regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+\d{1,4}$`)

func newTestService(t *testing.T) (*service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewService(store, store).(*service), store
}

func TestCreate_NewUserDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	u, isNew, err := svc.Create(context.Background(), "anon_1", "")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "anon_1", u.AnonymousID)
	assert.Equal(t, int64(domain.DefaultStartingCoins), u.Coins)
	assert.Equal(t, int64(0), u.Points)
	assert.Equal(t, 1, u.Level)
	assert.Regexp(t, usernamePattern, u.Username)
	assert.Regexp(t, `^[A-Z0-9]{8}$`, u.ReferralCode)
	assert.Empty(t, u.ReferredBy)
}

func TestCreate_ExistingReturnsSameUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, _, err := svc.Create(ctx, "anon_1", "")
	require.NoError(t, err)

	second, isNew, err := svc.Create(ctx, "anon_1", "")
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, first.ID, second.ID)
}

func TestCreate_ReferralBonus(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	referrer, _, err := svc.Create(ctx, "anon_ref", "")
	require.NoError(t, err)

	invited, _, err := svc.Create(ctx, "anon_new", referrer.ReferralCode)
	require.NoError(t, err)
	assert.Equal(t, referrer.ID, invited.ReferredBy)
	assert.Equal(t, int64(domain.DefaultStartingCoins), invited.Coins)

	updated, err := store.GetUserByID(ctx, referrer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(domain.DefaultStartingCoins+domain.ReferralBonusCoins), updated.Coins)
}

func TestCreate_UnknownReferralIgnored(t *testing.T) {
	svc, _ := newTestService(t)

	u, isNew, err := svc.Create(context.Background(), "anon_1", "NOPE1234")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Empty(t, u.ReferredBy)
}

func TestCreate_ConcurrentSameDevice(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	const n = 10
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, _, err := svc.Create(ctx, "anon_race", "")
			if assert.NoError(t, err) {
				ids[i] = u.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	created, _, err := svc.Create(ctx, "anon_1", "")
	require.NoError(t, err)

	later := created.LastActive.Add(time.Hour)
	svc.now = func() time.Time { return later }

	got, err := svc.Get(ctx, "anon_1")
	require.NoError(t, err)
	assert.True(t, got.LastActive.Equal(later))
}

func TestUpdate(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	team := &domain.Streamer{Name: "Lacy", Handle: "lacy", Color: "#FFE66D"}
	require.NoError(t, store.UpsertStreamer(ctx, team))

	created, _, err := svc.Create(ctx, "anon_1", "")
	require.NoError(t, err)

	name := "  NewName  "
	updated, err := svc.Update(ctx, "anon_1", domain.UserUpdate{Username: &name, TeamID: &team.ID})
	require.NoError(t, err)
	assert.Equal(t, "NewName", updated.Username)
	assert.Equal(t, team.ID, updated.TeamID)

	// Omitted fields are kept
	renamed, err := svc.Update(ctx, "anon_1", domain.UserUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "NewName", renamed.Username)
	assert.Equal(t, team.ID, renamed.TeamID)
	assert.Equal(t, created.ID, renamed.ID)
}

func TestUpdate_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, "anon_1", "")
	require.NoError(t, err)

	tests := []struct {
		name    string
		update  domain.UserUpdate
		wantErr error
	}{
		{"too short", domain.UserUpdate{Username: ptr("ab")}, domain.ErrInvalidUsername},
		{"too long", domain.UserUpdate{Username: ptr("abcdefghijklmnopqrstu")}, domain.ErrInvalidUsername},
		{"blank", domain.UserUpdate{Username: ptr("    ")}, domain.ErrInvalidUsername},
		{"unknown team", domain.UserUpdate{TeamID: ptr("00000000-0000-0000-0000-000000000099")}, domain.ErrStreamerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, "anon_1", tt.update)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err = svc.Update(ctx, "missing", domain.UserUpdate{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGenerators(t *testing.T) {
	for i := 0; i < 50; i++ {
		name, err := GenerateUsername()
		require.NoError(t, err)
		assert.Regexp(t, usernamePattern, name)

		code, err := GenerateReferralCode()
		require.NoError(t, err)
		assert.Len(t, code, domain.ReferralCodeLength)
	}
}

func ptr(s string) *string { return &s }
