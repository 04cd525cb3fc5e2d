package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SubRace_Go/internal/domain"
)

func TestApplyReward_CorrectExtendsStreak(t *testing.T) {
	u := &domain.User{Level: 1, Coins: 100, CurrentStreak: 3, LongestStreak: 3}
	r := Reward{Points: 330, Coins: 30, Accuracy: domain.PredictionAccuracy{WinnerCorrect: true}}

	leveled := ApplyReward(u, r)

	assert.False(t, leveled)
	assert.Equal(t, 4, u.CurrentStreak)
	assert.Equal(t, 4, u.LongestStreak)
	assert.Equal(t, int64(330), u.Points)
	assert.Equal(t, int64(130), u.Coins)
	assert.Equal(t, 1, u.TotalPredictions)
	assert.Equal(t, 1, u.CorrectPredictions)
}

func TestApplyReward_WrongResetsStreak(t *testing.T) {
	u := &domain.User{Level: 1, CurrentStreak: 5, LongestStreak: 8}

	ApplyReward(u, Reward{Points: 15})

	assert.Equal(t, 0, u.CurrentStreak)
	assert.Equal(t, 8, u.LongestStreak)
	assert.Equal(t, 0, u.CorrectPredictions)
	assert.Equal(t, 1, u.TotalPredictions)
}

func TestApplyReward_LevelUpBoundary(t *testing.T) {
	u := &domain.User{Level: 1, Points: 950, Coins: 100}
	r := Reward{Points: 330, Coins: 30, Accuracy: domain.PredictionAccuracy{WinnerCorrect: true}}

	leveled := ApplyReward(u, r)

	assert.True(t, leveled)
	assert.Equal(t, 2, u.Level)
	assert.Equal(t, int64(1280), u.Points)
	assert.Equal(t, int64(100+30+domain.LevelUpBonusCoins), u.Coins)
}

func TestApplyReward_MultipleLevelsPayBonusOnce(t *testing.T) {
	u := &domain.User{Level: 1, Points: 900, Coins: 0}

	leveled := ApplyReward(u, Reward{Points: 2200})

	assert.True(t, leveled)
	assert.Equal(t, 4, u.Level)
	assert.Equal(t, int64(domain.LevelUpBonusCoins), u.Coins)
}

func TestApplyReward_ExactlyAtThreshold(t *testing.T) {
	u := &domain.User{Level: 1, Points: 999}
	assert.True(t, ApplyReward(u, Reward{Points: 1}))
	assert.Equal(t, 2, u.Level)

	u = &domain.User{Level: 1, Points: 998}
	assert.False(t, ApplyReward(u, Reward{Points: 1}))
	assert.Equal(t, 1, u.Level)
}

func TestLevelForPoints(t *testing.T) {
	assert.Equal(t, 1, LevelForPoints(0))
	assert.Equal(t, 1, LevelForPoints(999))
	assert.Equal(t, 2, LevelForPoints(1000))
	assert.Equal(t, 11, LevelForPoints(10000))
	assert.Equal(t, 1, LevelForPoints(-5))
}
