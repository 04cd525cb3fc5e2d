package scoring

import (
	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/utils"
)

// Reward is the outcome of scoring a single prediction
type Reward struct {
	Points     int64
	Coins      int64
	Multiplier int64
	Accuracy   domain.PredictionAccuracy
}

// ComputeReward scores a prediction against a day's ground truth. It has no
// side effects. teamSnapshot is nil when the user has no team or the team
// has no snapshot for the day; currentStreak is the streak before this pass.
func ComputeReward(p domain.Prediction, winnerID string, teamSnapshot *domain.Snapshot, combinedTotal int64, currentStreak int) Reward {
	var points, coins int64

	winnerCorrect := winnerID != "" && p.PredictedWinnerID == winnerID
	if winnerCorrect {
		points += domain.WinnerCorrectPoints
		coins += domain.WinnerCorrectCoins
	}

	var teamDiff int64
	if teamSnapshot != nil {
		actual := teamSnapshot.TotalSubs
		teamDiff = utils.AbsInt64(p.PredictedTeamSubs - actual)
		switch {
		case utils.WithinPercent(p.PredictedTeamSubs, actual, domain.AccuracyTopPercent):
			points += domain.TeamAccuracyTopPoints
			coins += domain.TeamAccuracyTopCoins
		case utils.WithinPercent(p.PredictedTeamSubs, actual, domain.AccuracyNearPercent):
			points += domain.TeamAccuracyNearPoints
			coins += domain.TeamAccuracyNearCoins
		}
	}

	switch {
	case utils.WithinPercent(p.PredictedTotalSubs, combinedTotal, domain.AccuracyTopPercent):
		points += domain.TotalAccuracyTopPoints
	case utils.WithinPercent(p.PredictedTotalSubs, combinedTotal, domain.AccuracyNearPercent):
		points += domain.TotalAccuracyNearPoints
	}

	multiplier := StreakMultiplier(currentStreak)

	return Reward{
		Points:     points * multiplier,
		Coins:      coins,
		Multiplier: multiplier,
		Accuracy: domain.PredictionAccuracy{
			WinnerCorrect:     winnerCorrect,
			SubCountAccuracy:  teamDiff,
			TotalSubsAccuracy: utils.AbsInt64(p.PredictedTotalSubs - combinedTotal),
		},
	}
}

// StreakMultiplier returns the points multiplier for a streak
func StreakMultiplier(streak int) int64 {
	switch {
	case streak >= domain.StreakTripleThreshold:
		return domain.StreakTripleMultiplier
	case streak >= domain.StreakDoubleThreshold:
		return domain.StreakDoubleMultiplier
	default:
		return 1
	}
}
