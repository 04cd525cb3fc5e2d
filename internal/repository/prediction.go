package repository

import (
	"context"
	"time"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// Prediction defines the data access interface for daily predictions
type Prediction interface {
	// SubmitPrediction stores the prediction and credits the owner in one
	// transaction. A second prediction for the same day returns
	// domain.ErrPredictionExists.
	SubmitPrediction(ctx context.Context, prediction *domain.Prediction, coinReward int64) error
	GetUserPredictionForDay(ctx context.Context, userID string, day time.Time) (*domain.Prediction, error)
	GetPredictionsForDay(ctx context.Context, day time.Time) ([]domain.Prediction, error)
	// GetUnscoredPredictions excludes scored and quarantined predictions
	GetUnscoredPredictions(ctx context.Context, day time.Time) ([]domain.Prediction, error)
	GetUserPredictionHistory(ctx context.Context, userID string, limit int) ([]domain.Prediction, error)
	// RecordScoringMiss bumps the attempt counter and quarantines the
	// prediction once it reaches maxAttempts
	RecordScoringMiss(ctx context.Context, predictionID string, maxAttempts int) (quarantined bool, err error)

	BeginScoringTx(ctx context.Context) (ScoringTx, error)
}
