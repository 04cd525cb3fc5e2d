package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SubRace_Go/internal/domain"
)

func TestDetermineGroundTruth_MaxGrowthWins(t *testing.T) {
	streamers := []domain.Streamer{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}}
	snapshots := []domain.Snapshot{
		{StreamerID: "a", TotalSubs: 1000, Growth: 10},
		{StreamerID: "b", TotalSubs: 2000, Growth: 50},
		{StreamerID: "c", TotalSubs: 500, Growth: -5},
	}

	truth := DetermineGroundTruth(streamers, snapshots)

	assert.Equal(t, "b", truth.WinnerID)
	assert.Equal(t, "B", truth.WinnerName)
	assert.Equal(t, int64(50), truth.WinnerGrowth)
	assert.Equal(t, int64(3500), truth.CombinedTotal)
	require.NotNil(t, truth.SnapshotFor("a"))
	assert.Nil(t, truth.SnapshotFor("missing"))
	assert.Nil(t, truth.SnapshotFor(""))
}

func TestDetermineGroundTruth_TieBreakIsOrderIndependent(t *testing.T) {
	snapshots := []domain.Snapshot{
		{StreamerID: "b", TotalSubs: 100, Growth: 20},
		{StreamerID: "a", TotalSubs: 100, Growth: 20},
		{StreamerID: "c", TotalSubs: 100, Growth: 5},
	}
	orders := [][]domain.Streamer{
		{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		{{ID: "c"}, {ID: "b"}, {ID: "a"}},
		{{ID: "b"}, {ID: "c"}, {ID: "a"}},
	}

	for _, streamers := range orders {
		truth := DetermineGroundTruth(streamers, snapshots)
		assert.Equal(t, "a", truth.WinnerID)
	}
}

func TestDetermineGroundTruth_MissingSnapshotCountsAsZero(t *testing.T) {
	streamers := []domain.Streamer{{ID: "a"}, {ID: "b"}}
	snapshots := []domain.Snapshot{{StreamerID: "b", TotalSubs: 300, Growth: -10}}

	truth := DetermineGroundTruth(streamers, snapshots)

	// a has no data (growth 0) and beats b's negative growth
	assert.Equal(t, "a", truth.WinnerID)
	assert.Equal(t, int64(0), truth.WinnerGrowth)
	assert.Equal(t, int64(300), truth.CombinedTotal)
}

func TestDetermineGroundTruth_NoSnapshots(t *testing.T) {
	truth := DetermineGroundTruth([]domain.Streamer{{ID: "z"}, {ID: "y"}}, nil)
	assert.Equal(t, "y", truth.WinnerID)
	assert.Zero(t, truth.CombinedTotal)
}

func TestDetermineGroundTruth_KeepsLatestPerStreamer(t *testing.T) {
	base := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	snapshots := []domain.Snapshot{
		{StreamerID: "a", TakenAt: base.Add(20 * time.Hour), TotalSubs: 120, Growth: 20},
		{StreamerID: "a", TakenAt: base.Add(2 * time.Hour), TotalSubs: 100, Growth: 90},
	}

	truth := DetermineGroundTruth([]domain.Streamer{{ID: "a"}}, snapshots)

	assert.Equal(t, int64(120), truth.CombinedTotal)
	assert.Equal(t, int64(20), truth.WinnerGrowth)
}

func TestDetermineGroundTruth_IgnoresStreamersOffRoster(t *testing.T) {
	streamers := []domain.Streamer{{ID: "a"}, {ID: "b"}}
	snapshots := []domain.Snapshot{
		{StreamerID: "a", TotalSubs: 1000, Growth: 10},
		{StreamerID: "b", TotalSubs: 2000, Growth: 20},
		{StreamerID: "removed", TotalSubs: 5000, Growth: 900},
	}

	truth := DetermineGroundTruth(streamers, snapshots)

	assert.Equal(t, "b", truth.WinnerID)
	assert.Equal(t, int64(3000), truth.CombinedTotal)
}
