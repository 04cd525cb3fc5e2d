package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SubRace_Go/internal/domain"
)

func TestComputeReward_CompositionExample(t *testing.T) {
	p := domain.Prediction{
		PredictedWinnerID:  "winner",
		PredictedTeamSubs:  1040,  // 4% off
		PredictedTotalSubs: 10800, // 8% off
	}
	team := &domain.Snapshot{StreamerID: "team", TotalSubs: 1000}

	r := ComputeReward(p, "winner", team, 10000, 3)

	assert.Equal(t, int64(330), r.Points)
	assert.Equal(t, int64(30), r.Coins)
	assert.Equal(t, int64(2), r.Multiplier)
	assert.True(t, r.Accuracy.WinnerCorrect)
	assert.Equal(t, int64(40), r.Accuracy.SubCountAccuracy)
	assert.Equal(t, int64(800), r.Accuracy.TotalSubsAccuracy)
}

func TestComputeReward_Tiers(t *testing.T) {
	team := func(total int64) *domain.Snapshot { return &domain.Snapshot{TotalSubs: total} }

	tests := []struct {
		name       string
		prediction domain.Prediction
		winnerID   string
		team       *domain.Snapshot
		combined   int64
		streak     int
		wantPoints int64
		wantCoins  int64
	}{
		{
			name:       "nothing right",
			prediction: domain.Prediction{PredictedWinnerID: "a", PredictedTeamSubs: 1, PredictedTotalSubs: 1},
			winnerID:   "b",
			team:       team(1000),
			combined:   5000,
		},
		{
			name:       "winner only",
			prediction: domain.Prediction{PredictedWinnerID: "a"},
			winnerID:   "a",
			combined:   5000,
			wantPoints: 100,
			wantCoins:  20,
		},
		{
			name:       "team exactly five percent is top tier",
			prediction: domain.Prediction{PredictedTeamSubs: 1050},
			winnerID:   "x",
			team:       team(1000),
			wantPoints: 50,
			wantCoins:  10,
		},
		{
			name:       "team just over five percent is near tier",
			prediction: domain.Prediction{PredictedTeamSubs: 1051},
			winnerID:   "x",
			team:       team(1000),
			wantPoints: 25,
			wantCoins:  5,
		},
		{
			name:       "team exactly ten percent below",
			prediction: domain.Prediction{PredictedTeamSubs: 900},
			winnerID:   "x",
			team:       team(1000),
			wantPoints: 25,
			wantCoins:  5,
		},
		{
			name:       "team beyond ten percent",
			prediction: domain.Prediction{PredictedTeamSubs: 1101},
			winnerID:   "x",
			team:       team(1000),
		},
		{
			name:       "no team snapshot means no team tier",
			prediction: domain.Prediction{PredictedTeamSubs: 1000},
			winnerID:   "x",
		},
		{
			name:       "total top tier gives points only",
			prediction: domain.Prediction{PredictedTotalSubs: 10000},
			winnerID:   "x",
			combined:   10000,
			wantPoints: 30,
		},
		{
			name:       "total near tier",
			prediction: domain.Prediction{PredictedTotalSubs: 9000},
			winnerID:   "x",
			combined:   10000,
			wantPoints: 15,
		},
		{
			name:       "streak of seven triples points but not coins",
			prediction: domain.Prediction{PredictedWinnerID: "a", PredictedTotalSubs: 100},
			winnerID:   "a",
			combined:   100,
			streak:     7,
			wantPoints: 390,
			wantCoins:  20,
		},
		{
			name:       "streak of two has no multiplier",
			prediction: domain.Prediction{PredictedWinnerID: "a"},
			winnerID:   "a",
			streak:     2,
			wantPoints: 100,
			wantCoins:  20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComputeReward(tt.prediction, tt.winnerID, tt.team, tt.combined, tt.streak)
			assert.Equal(t, tt.wantPoints, r.Points)
			assert.Equal(t, tt.wantCoins, r.Coins)
		})
	}
}

func TestComputeReward_ZeroActualNeverMatches(t *testing.T) {
	p := domain.Prediction{PredictedWinnerID: "a", PredictedTeamSubs: 0, PredictedTotalSubs: 0}

	r := ComputeReward(p, "b", &domain.Snapshot{TotalSubs: 0}, 0, 0)

	assert.Zero(t, r.Points)
	assert.Zero(t, r.Coins)
	assert.False(t, r.Accuracy.WinnerCorrect)
	assert.Zero(t, r.Accuracy.SubCountAccuracy)
	assert.Zero(t, r.Accuracy.TotalSubsAccuracy)
}

func TestComputeReward_HugePredictionEarnsNoAccuracyTier(t *testing.T) {
	const huge = 184467440737095517 // *100 wraps int64
	p := domain.Prediction{PredictedWinnerID: "a", PredictedTeamSubs: huge, PredictedTotalSubs: huge}

	r := ComputeReward(p, "w", &domain.Snapshot{TotalSubs: 1000}, 1000, 0)

	assert.Zero(t, r.Points)
	assert.Zero(t, r.Coins)
	assert.Equal(t, int64(huge-1000), r.Accuracy.SubCountAccuracy)
	assert.Equal(t, int64(huge-1000), r.Accuracy.TotalSubsAccuracy)
}

func TestComputeReward_EmptyWinnerNeverCorrect(t *testing.T) {
	r := ComputeReward(domain.Prediction{}, "", nil, 0, 0)
	assert.False(t, r.Accuracy.WinnerCorrect)
}

func TestStreakMultiplier(t *testing.T) {
	cases := map[int]int64{0: 1, 1: 1, 2: 1, 3: 2, 6: 2, 7: 3, 30: 3}
	for streak, want := range cases {
		assert.Equal(t, want, StreakMultiplier(streak), "streak %d", streak)
	}
}
