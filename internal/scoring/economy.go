package scoring

import "github.com/osse101/SubRace_Go/internal/domain"

// ApplyReward folds a reward into the user's economy state and reports
// whether the user gained a level. The level-up bonus is paid once per pass
// regardless of how many levels were crossed.
func ApplyReward(u *domain.User, r Reward) bool {
	u.Points += r.Points
	u.Coins += r.Coins
	u.TotalPredictions++

	if r.Accuracy.WinnerCorrect {
		u.CorrectPredictions++
		u.CurrentStreak++
		if u.CurrentStreak > u.LongestStreak {
			u.LongestStreak = u.CurrentStreak
		}
	} else {
		u.CurrentStreak = 0
	}

	newLevel := LevelForPoints(u.Points)
	if newLevel > u.Level {
		u.Level = newLevel
		u.Coins += domain.LevelUpBonusCoins
		return true
	}
	return false
}

// LevelForPoints maps cumulative points to a level
func LevelForPoints(points int64) int {
	if points < 0 {
		return domain.DefaultStartingLevel
	}
	return int(points/domain.PointsPerLevel) + 1
}
