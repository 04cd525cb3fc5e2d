package repository

import (
	"context"
	"time"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// ScoringTx holds row locks on one user and one prediction while a
// prediction is scored.
type ScoringTx interface {
	Tx
	// GetPredictionForUpdate returns domain.ErrPredictionNotFound when missing
	GetPredictionForUpdate(ctx context.Context, predictionID string) (*domain.Prediction, error)
	// GetUserForUpdate returns domain.ErrUserNotFound when missing
	GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error)
	UpdateUserEconomy(ctx context.Context, user *domain.User) error
	MarkPredictionScored(ctx context.Context, predictionID string, points, coins int64, accuracy domain.PredictionAccuracy, scoredAt time.Time) error
}
