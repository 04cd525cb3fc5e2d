package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SubRace_Go/internal/concurrency"
	"github.com/osse101/SubRace_Go/internal/database/memory"
	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/streamer"
)

type mockScraper struct {
	mock.Mock
}

func (m *mockScraper) Scrape(ctx context.Context, handle string) (*domain.ScrapedSubs, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScrapedSubs), args.Error(1)
}

func (m *mockScraper) ScrapeAll(ctx context.Context, handles []string) []domain.ScrapedSubs {
	args := m.Called(ctx, handles)
	return args.Get(0).([]domain.ScrapedSubs)
}

var roster = []domain.Streamer{
	{Name: "Lacy", Handle: "lacy", Color: "#FFE66D"},
	{Name: "Silky", Handle: "silky", Color: "#4ECDC4"},
}

func newTestService(t *testing.T, sc *mockScraper, at time.Time) (*service, *memory.Store, *concurrency.LocalLeaser) {
	t.Helper()
	store := memory.NewStore()
	leaser := concurrency.NewLocalLeaser(concurrency.NewLockManager())
	svc := NewService(streamer.NewService(store, nil, roster), store, sc, leaser, Config{}).(*service)
	svc.now = func() time.Time { return at }
	return svc, store, leaser
}

func TestRun_GrowthAgainstPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	sc := new(mockScraper)
	sc.On("ScrapeAll", mock.Anything, mock.Anything).Return([]domain.ScrapedSubs{
		{Handle: "lacy", TotalSubs: 100},
	}).Once()
	sc.On("ScrapeAll", mock.Anything, mock.Anything).Return([]domain.ScrapedSubs{
		{Handle: "LACY", TotalSubs: 140, PaidSubs: 120, GiftedSubs: 20},
	}).Once()

	svc, store, _ := newTestService(t, sc, t0)

	first, err := svc.Run(ctx)
	require.NoError(t, err)
	require.Len(t, first.Data, 1)
	assert.Equal(t, int64(0), first.Data[0].Growth, "first snapshot has no growth")

	svc.now = func() time.Time { return t0.Add(time.Hour) }
	second, err := svc.Run(ctx)
	require.NoError(t, err)
	require.Len(t, second.Data, 1)
	assert.Equal(t, "Lacy", second.Data[0].Streamer)
	assert.Equal(t, int64(140), second.Data[0].TotalSubs)
	assert.Equal(t, int64(40), second.Data[0].Growth)
	assert.Equal(t, t0.Add(time.Hour), second.Timestamp)

	latest, err := store.GetLatestSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, int64(120), latest[0].PaidSubs)
}

func TestRun_PartialScrape(t *testing.T) {
	sc := new(mockScraper)
	sc.On("ScrapeAll", mock.Anything, []string{"lacy", "silky"}).Return([]domain.ScrapedSubs{
		{Handle: "silky", TotalSubs: 900},
		{Handle: "unknown", TotalSubs: 5},
	})

	svc, _, _ := newTestService(t, sc, time.Now())

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.Success)
	assert.Equal(t, 2, summary.ScrapedCount)
	require.Len(t, summary.Data, 1)
	assert.Equal(t, "Silky", summary.Data[0].Streamer)
	sc.AssertExpectations(t)
}

func TestRun_RetentionRunsWhenNothingScraped(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	sc := new(mockScraper)
	sc.On("ScrapeAll", mock.Anything, mock.Anything).Return([]domain.ScrapedSubs{})

	svc, store, _ := newTestService(t, sc, now)
	require.NoError(t, svc.streamers.Seed(ctx))
	list, err := svc.streamers.List(ctx)
	require.NoError(t, err)

	old := &domain.Snapshot{StreamerID: list[0].ID, TakenAt: now.AddDate(0, 0, -31), TotalSubs: 1}
	recent := &domain.Snapshot{StreamerID: list[0].ID, TakenAt: now.AddDate(0, 0, -29), TotalSubs: 2}
	require.NoError(t, store.InsertSnapshot(ctx, old))
	require.NoError(t, store.InsertSnapshot(ctx, recent))

	summary, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ScrapedCount)
	assert.Equal(t, int64(1), summary.Pruned)

	history, err := store.GetSnapshotHistory(ctx, "", time.Time{})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, int64(2), history[0].TotalSubs)
	for _, snap := range history {
		assert.False(t, snap.TakenAt.Before(now.Add(-domain.DefaultSnapshotRetention)))
	}
}

func TestRun_NoStreamers(t *testing.T) {
	store := memory.NewStore()
	sc := new(mockScraper)
	svc := NewService(streamer.NewService(store, nil, []domain.Streamer{}), store, sc,
		concurrency.NewLocalLeaser(concurrency.NewLockManager()), Config{})

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoStreamers)
	sc.AssertNotCalled(t, "ScrapeAll", mock.Anything, mock.Anything)
}

func TestRun_HeldLease(t *testing.T) {
	ctx := context.Background()
	sc := new(mockScraper)
	svc, _, leaser := newTestService(t, sc, time.Now())

	held, err := leaser.TryAcquire(ctx, LeaseKey, time.Minute)
	require.NoError(t, err)
	defer func() { _ = held.Release(ctx) }()

	_, err = svc.Run(ctx)
	assert.ErrorIs(t, err, domain.ErrIngestInProgress)
	sc.AssertNotCalled(t, "ScrapeAll", mock.Anything, mock.Anything)
}

func TestNewSnapshot(t *testing.T) {
	at := time.Now()
	data := domain.ScrapedSubs{Handle: "lacy", TotalSubs: 140, Tier1Subs: 100}

	first := NewSnapshot("s1", at, data, nil)
	assert.Equal(t, int64(0), first.Growth)

	next := NewSnapshot("s1", at, data, &domain.Snapshot{TotalSubs: 100})
	assert.Equal(t, int64(40), next.Growth)
	assert.Equal(t, int64(100), next.Tier1Subs)

	shrink := NewSnapshot("s1", at, data, &domain.Snapshot{TotalSubs: 150})
	assert.Equal(t, int64(-10), shrink.Growth)
}
