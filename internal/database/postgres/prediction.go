package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/repository"
)

// PredictionRepository implements repository.Prediction for PostgreSQL
type PredictionRepository struct {
	db *pgxpool.Pool
}

// NewPredictionRepository creates a new PredictionRepository
func NewPredictionRepository(db *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{db: db}
}

const predictionColumns = `prediction_id::text, user_id::text, prediction_date, predicted_winner_id::text,
	predicted_team_subs, predicted_total_subs, locked, scored, points_awarded, coins_awarded,
	winner_correct, sub_count_accuracy, total_subs_accuracy, scoring_attempts, quarantined,
	created_at, scored_at`

func scanPrediction(row pgx.Row) (*domain.Prediction, error) {
	var p domain.Prediction
	err := row.Scan(&p.ID, &p.UserID, &p.Date, &p.PredictedWinnerID,
		&p.PredictedTeamSubs, &p.PredictedTotalSubs, &p.Locked, &p.Scored, &p.PointsAwarded, &p.CoinsAwarded,
		&p.Accuracy.WinnerCorrect, &p.Accuracy.SubCountAccuracy, &p.Accuracy.TotalSubsAccuracy,
		&p.ScoringAttempts, &p.Quarantined, &p.CreatedAt, &p.ScoredAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPredictions(rows pgx.Rows) ([]domain.Prediction, error) {
	defer rows.Close()

	predictions := make([]domain.Prediction, 0)
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, *p)
	}
	return predictions, rows.Err()
}

// SubmitPrediction stores a locked prediction and credits the submitter in one transaction
func (r *PredictionRepository) SubmitPrediction(ctx context.Context, prediction *domain.Prediction, coinReward int64) error {
	userID, err := parseUUID("user", prediction.UserID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	winnerID, err := parseUUID("streamer", prediction.PredictedWinnerID)
	if err != nil {
		return domain.ErrStreamerNotFound
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	created, err := scanPrediction(tx.QueryRow(ctx, `
		INSERT INTO predictions (user_id, prediction_date, predicted_winner_id,
			predicted_team_subs, predicted_total_subs, locked)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+predictionColumns,
		userID, prediction.Date, winnerID, prediction.PredictedTeamSubs, prediction.PredictedTotalSubs, prediction.Locked))
	if err != nil {
		if constraint, ok := isUniqueViolation(err); ok && constraint == constraintPredictionUserDate {
			return domain.ErrPredictionExists
		}
		return fmt.Errorf("failed to insert prediction: %w", err)
	}

	tag, err := tx.Exec(ctx, `UPDATE users SET coins = coins + $2, last_active = NOW() WHERE user_id = $1`, userID, coinReward)
	if err != nil {
		return fmt.Errorf("failed to credit prediction reward: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit prediction: %w", err)
	}
	*prediction = *created
	return nil
}

// GetUserPredictionForDay returns domain.ErrPredictionNotFound when the user has none
func (r *PredictionRepository) GetUserPredictionForDay(ctx context.Context, userID string, day time.Time) (*domain.Prediction, error) {
	id, err := parseUUID("user", userID)
	if err != nil {
		return nil, domain.ErrPredictionNotFound
	}
	p, err := scanPrediction(r.db.QueryRow(ctx, `
		SELECT `+predictionColumns+`
		FROM predictions
		WHERE user_id = $1 AND prediction_date = $2
	`, id, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPredictionNotFound
		}
		return nil, fmt.Errorf("failed to get prediction: %w", err)
	}
	return p, nil
}

// GetPredictionsForDay returns every prediction for a day
func (r *PredictionRepository) GetPredictionsForDay(ctx context.Context, day time.Time) ([]domain.Prediction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+predictionColumns+`
		FROM predictions
		WHERE prediction_date = $1
		ORDER BY created_at
	`, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get predictions for day: %w", err)
	}
	return collectPredictions(rows)
}

// GetUnscoredPredictions returns open predictions for a day
func (r *PredictionRepository) GetUnscoredPredictions(ctx context.Context, day time.Time) ([]domain.Prediction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+predictionColumns+`
		FROM predictions
		WHERE prediction_date = $1 AND scored = FALSE AND quarantined = FALSE
		ORDER BY created_at, prediction_id
	`, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get unscored predictions: %w", err)
	}
	return collectPredictions(rows)
}

// GetUserPredictionHistory returns the newest predictions first
func (r *PredictionRepository) GetUserPredictionHistory(ctx context.Context, userID string, limit int) ([]domain.Prediction, error) {
	id, err := parseUUID("user", userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+predictionColumns+`
		FROM predictions
		WHERE user_id = $1
		ORDER BY prediction_date DESC
		LIMIT $2
	`, id, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get prediction history: %w", err)
	}
	return collectPredictions(rows)
}

// RecordScoringMiss increments the attempt counter and quarantines at maxAttempts
func (r *PredictionRepository) RecordScoringMiss(ctx context.Context, predictionID string, maxAttempts int) (bool, error) {
	id, err := parseUUID("prediction", predictionID)
	if err != nil {
		return false, domain.ErrPredictionNotFound
	}
	var quarantined bool
	err = r.db.QueryRow(ctx, `
		UPDATE predictions
		SET scoring_attempts = scoring_attempts + 1,
		    quarantined = (scoring_attempts + 1 >= $2)
		WHERE prediction_id = $1
		RETURNING quarantined
	`, id, maxAttempts).Scan(&quarantined)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, domain.ErrPredictionNotFound
		}
		return false, fmt.Errorf("failed to record scoring miss: %w", err)
	}
	return quarantined, nil
}

// BeginScoringTx starts a transaction for scoring one prediction
func (r *PredictionRepository) BeginScoringTx(ctx context.Context) (repository.ScoringTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &scoringTx{tx: tx}, nil
}

type scoringTx struct {
	tx pgx.Tx
}

func (t *scoringTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *scoringTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *scoringTx) GetPredictionForUpdate(ctx context.Context, predictionID string) (*domain.Prediction, error) {
	id, err := parseUUID("prediction", predictionID)
	if err != nil {
		return nil, domain.ErrPredictionNotFound
	}
	p, err := scanPrediction(t.tx.QueryRow(ctx, `
		SELECT `+predictionColumns+`
		FROM predictions
		WHERE prediction_id = $1
		FOR UPDATE
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPredictionNotFound
		}
		return nil, fmt.Errorf("failed to lock prediction: %w", err)
	}
	return p, nil
}

func (t *scoringTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	id, err := parseUUID("user", userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	u, err := scanUser(t.tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}
	return u, nil
}

func (t *scoringTx) UpdateUserEconomy(ctx context.Context, user *domain.User) error {
	id, err := parseUUID("user", user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE users
		SET points = $2, coins = $3, level = $4, current_streak = $5, longest_streak = $6,
		    total_predictions = $7, correct_predictions = $8
		WHERE user_id = $1
	`, id, user.Points, user.Coins, user.Level, user.CurrentStreak, user.LongestStreak,
		user.TotalPredictions, user.CorrectPredictions)
	if err != nil {
		return fmt.Errorf("failed to update user economy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (t *scoringTx) MarkPredictionScored(ctx context.Context, predictionID string, points, coins int64, accuracy domain.PredictionAccuracy, scoredAt time.Time) error {
	id, err := parseUUID("prediction", predictionID)
	if err != nil {
		return domain.ErrPredictionNotFound
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE predictions
		SET scored = TRUE, points_awarded = $2, coins_awarded = $3,
		    winner_correct = $4, sub_count_accuracy = $5, total_subs_accuracy = $6, scored_at = $7
		WHERE prediction_id = $1 AND scored = FALSE
	`, id, points, coins, accuracy.WinnerCorrect, accuracy.SubCountAccuracy, accuracy.TotalSubsAccuracy, scoredAt)
	if err != nil {
		return fmt.Errorf("failed to mark prediction scored: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPredictionNotFound
	}
	return nil
}
