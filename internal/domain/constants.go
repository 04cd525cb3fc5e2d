package domain

import "time"

// Reward table for a scoring pass
const (
	WinnerCorrectPoints = 100
	WinnerCorrectCoins  = 20

	TeamAccuracyTopPoints  = 50
	TeamAccuracyTopCoins   = 10
	TeamAccuracyNearPoints = 25
	TeamAccuracyNearCoins  = 5

	TotalAccuracyTopPoints  = 30
	TotalAccuracyNearPoints = 15

	// Relative error tiers, in percent of the actual value
	AccuracyTopPercent  = 5
	AccuracyNearPercent = 10
)

// Streak multipliers apply to points only
const (
	StreakTripleThreshold  = 7
	StreakDoubleThreshold  = 3
	StreakTripleMultiplier = 3
	StreakDoubleMultiplier = 2
)

// Leveling
const (
	PointsPerLevel    = 1000
	LevelUpBonusCoins = 50
)

// Economy defaults and one-off rewards
const (
	DefaultStartingCoins   = 100
	DefaultStartingLevel   = 1
	PredictionSubmitCoins  = 10
	ReferralBonusCoins     = 50
	PredictionHistoryLimit = 10
	LeaderboardLimit       = 100
)

// Leaderboard display defaults for users without a team
const (
	NoTeamName  = "No Team"
	NoTeamColor = "#888888"
)

// Snapshot retention and read windows
const (
	DefaultSnapshotRetention = 30 * 24 * time.Hour
	DefaultHistoryDays       = 7
	MaxHistoryDays           = 30
)

// ReferralCodeLength is the length of generated referral codes
const ReferralCodeLength = 8
