package domain

// ScoredResult is one scored prediction in a scoring summary
type ScoredResult struct {
	Username      string `json:"username"`
	Points        int64  `json:"points"`
	Coins         int64  `json:"coins"`
	WinnerCorrect bool   `json:"winnerCorrect"`
	LeveledUp     bool   `json:"-"`
}

// ScoringSummary is returned by a scoring pass
type ScoringSummary struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message,omitempty"`
	Scored      int            `json:"scored"`
	Skipped     int            `json:"skipped,omitempty"`
	Quarantined int            `json:"quarantined,omitempty"`
	Results     []ScoredResult `json:"results,omitempty"`
	Winner      string         `json:"winner,omitempty"`
}

// MsgNoPredictionsToScore is the summary message for an empty pass
const MsgNoPredictionsToScore = "No predictions to score"
