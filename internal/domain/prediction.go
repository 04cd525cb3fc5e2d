package domain

import "time"

// PredictionAccuracy is the breakdown stored once a prediction is scored
type PredictionAccuracy struct {
	WinnerCorrect     bool  `json:"winnerCorrect"`
	SubCountAccuracy  int64 `json:"subCountAccuracy"`
	TotalSubsAccuracy int64 `json:"totalSubsAccuracy"`
}

// Prediction is a user's locked guess for one calendar day
type Prediction struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"userId"`
	Date               time.Time          `json:"date"`
	PredictedWinnerID  string             `json:"predictedWinnerId"`
	PredictedTeamSubs  int64              `json:"userTeamSubs"`
	PredictedTotalSubs int64              `json:"totalSubs"`
	Locked             bool               `json:"locked"`
	Scored             bool               `json:"scored"`
	PointsAwarded      int64              `json:"pointsAwarded"`
	CoinsAwarded       int64              `json:"coinsAwarded"`
	Accuracy           PredictionAccuracy `json:"accuracy"`
	ScoringAttempts    int                `json:"-"`
	Quarantined        bool               `json:"-"`
	CreatedAt          time.Time          `json:"createdAt"`
	ScoredAt           *time.Time         `json:"scoredAt,omitempty"`
}

// SubmitPredictionRequest is the input for a new prediction
type SubmitPredictionRequest struct {
	AnonymousID        string `json:"anonymousId" validate:"required,max=128"`
	WinnerID           string `json:"winnerId" validate:"required,uuid"`
	PredictedTeamSubs  int64  `json:"userTeamSubs" validate:"min=0,max=1000000000"`
	PredictedTotalSubs int64  `json:"totalSubs" validate:"min=0,max=1000000000"`
}

// StreamerVotes is the community share for one streamer
type StreamerVotes struct {
	StreamerID string `json:"streamerId"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// CommunityStats summarises today's predictions
type CommunityStats struct {
	TotalPredictions int             `json:"totalPredictions"`
	Streamers        []StreamerVotes `json:"streamers"`
}

// TodayPredictions is the view of today's predictions for a user
type TodayPredictions struct {
	Date           time.Time      `json:"date"`
	CommunityStats CommunityStats `json:"communityStats"`
	UserPrediction *Prediction    `json:"userPrediction"`
}
