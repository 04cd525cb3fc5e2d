package subs

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SubRace_Go/internal/database/memory"
	"github.com/osse101/SubRace_Go/internal/domain"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*service, *memory.Store, []domain.Streamer) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	streamers := []domain.Streamer{
		{Name: "Adapt", Handle: "adapt", Color: "#95E1D3"},
		{Name: "Lacy", Handle: "lacy", Color: "#FFE66D"},
		{Name: "Silky", Handle: "silky", Color: "#4ECDC4"},
	}
	for i := range streamers {
		require.NoError(t, store.UpsertStreamer(ctx, &streamers[i]))
	}

	svc := NewService(store, store, time.Minute).(*service)
	svc.now = func() time.Time { return now }
	return svc, store, streamers
}

func insert(t *testing.T, store *memory.Store, streamerID string, at time.Time, total int64) {
	t.Helper()
	require.NoError(t, store.InsertSnapshot(context.Background(), &domain.Snapshot{
		StreamerID: streamerID, TakenAt: at, TotalSubs: total,
	}))
}

func TestLatest(t *testing.T) {
	svc, store, streamers := setup(t)
	ctx := context.Background()

	insert(t, store, streamers[1].ID, now.Add(-2*time.Hour), 900)
	insert(t, store, streamers[1].ID, now.Add(-time.Hour), 1000)
	insert(t, store, streamers[2].ID, now.Add(-time.Hour), 5000)

	latest, err := svc.Latest(ctx)
	require.NoError(t, err)
	require.Len(t, latest.Streamers, 2, "streamers without data are omitted")
	assert.Equal(t, "Silky", latest.Streamers[0].Streamer.Name)
	assert.Equal(t, int64(1000), latest.Streamers[1].Snapshot.TotalSubs)
	assert.Equal(t, int64(6000), latest.CombinedTotal)
	assert.Equal(t, now.Add(-time.Hour), latest.Timestamp)

	// Served from cache until the TTL expires
	insert(t, store, streamers[0].ID, now, 7000)
	cached, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), cached.CombinedTotal)
}

func TestLatest_Empty(t *testing.T) {
	svc, _, _ := setup(t)

	latest, err := svc.Latest(context.Background())
	require.NoError(t, err)
	assert.Empty(t, latest.Streamers)
	assert.Equal(t, int64(0), latest.CombinedTotal)
	assert.Equal(t, now, latest.Timestamp)
}

func TestClampDays(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 7},
		{-3, 7},
		{1, 1},
		{14, 14},
		{30, 30},
		{90, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampDays(tt.in), "days=%d", tt.in)
	}
}

func TestHistory(t *testing.T) {
	svc, store, streamers := setup(t)
	ctx := context.Background()

	insert(t, store, streamers[1].ID, now.AddDate(0, 0, -10), 100)
	insert(t, store, streamers[1].ID, now.AddDate(0, 0, -3), 200)
	insert(t, store, streamers[1].ID, now.AddDate(0, 0, -1), 300)
	insert(t, store, streamers[2].ID, now.AddDate(0, 0, -1), 999)

	week, err := svc.History(ctx, streamers[1].ID, 0)
	require.NoError(t, err)
	require.Len(t, week, 2)
	assert.Equal(t, int64(200), week[0].TotalSubs, "oldest first")

	all, err := svc.History(ctx, "", 30)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestExportHistoryCSV(t *testing.T) {
	svc, store, streamers := setup(t)
	ctx := context.Background()

	insert(t, store, streamers[1].ID, now.Add(-time.Hour), 1000)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportHistoryCSV(ctx, &buf, streamers[1].ID, 7))

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Equal(t, "streamer,handle,timestamp,total_subs,paid_subs,gifted_subs,prime_subs,tier1_subs,tier2_subs,tier3_subs,growth", header)

	var rows []HistoryRow
	require.NoError(t, gocsv.UnmarshalBytes(buf.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Lacy", rows[0].Streamer)
	assert.Equal(t, "2026-03-14T11:00:00Z", rows[0].Timestamp)
	assert.Equal(t, int64(1000), rows[0].TotalSubs)
}
