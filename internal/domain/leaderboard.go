package domain

// LeaderboardEntry is one ranked user
type LeaderboardEntry struct {
	Rank               int    `json:"rank"`
	UserID             string `json:"id"`
	Username           string `json:"username"`
	Points             int64  `json:"points"`
	Level              int    `json:"level"`
	CurrentStreak      int    `json:"currentStreak"`
	TotalPredictions   int    `json:"totalPredictions"`
	CorrectPredictions int    `json:"correctPredictions"`
	Accuracy           int    `json:"accuracy"`
	TeamID             string `json:"teamId,omitempty"`
	TeamName           string `json:"teamName"`
	TeamColor          string `json:"teamColor"`
}

// TeamStats aggregates users by chosen team
type TeamStats struct {
	TeamID      string `json:"teamId"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	TotalPoints int64  `json:"totalPoints"`
	MemberCount int    `json:"memberCount"`
	AvgPoints   int64  `json:"avgPoints"`
}

// Leaderboard is the ranked view with team aggregates
type Leaderboard struct {
	Entries   []LeaderboardEntry `json:"leaderboard"`
	TeamStats []TeamStats        `json:"teamStats"`
}
