package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/repository"
)

func (s *Store) SubmitPrediction(ctx context.Context, prediction *domain.Prediction, coinReward int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[prediction.UserID]
	if !ok {
		return domain.ErrUserNotFound
	}
	for _, p := range s.predictions {
		if p.UserID == prediction.UserID && p.Date.Equal(prediction.Date) {
			return domain.ErrPredictionExists
		}
	}

	if prediction.ID == "" {
		prediction.ID = uuid.NewString()
	}
	if prediction.CreatedAt.IsZero() {
		prediction.CreatedAt = s.now()
	}
	stored := *prediction
	s.predictions[stored.ID] = &stored
	u.Coins += coinReward
	return nil
}

func (s *Store) GetUserPredictionForDay(ctx context.Context, userID string, day time.Time) (*domain.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.predictions {
		if p.UserID == userID && p.Date.Equal(day) {
			out := *p
			return &out, nil
		}
	}
	return nil, domain.ErrPredictionNotFound
}

func (s *Store) GetPredictionsForDay(ctx context.Context, day time.Time) ([]domain.Prediction, error) {
	return s.filterPredictions(func(p *domain.Prediction) bool { return p.Date.Equal(day) }), nil
}

func (s *Store) GetUnscoredPredictions(ctx context.Context, day time.Time) ([]domain.Prediction, error) {
	return s.filterPredictions(func(p *domain.Prediction) bool {
		return p.Date.Equal(day) && !p.Scored && !p.Quarantined
	}), nil
}

func (s *Store) GetUserPredictionHistory(ctx context.Context, userID string, limit int) ([]domain.Prediction, error) {
	out := s.filterPredictions(func(p *domain.Prediction) bool { return p.UserID == userID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) RecordScoringMiss(ctx context.Context, predictionID string, maxAttempts int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.predictions[predictionID]
	if !ok {
		return false, domain.ErrPredictionNotFound
	}
	p.ScoringAttempts++
	if p.ScoringAttempts >= maxAttempts {
		p.Quarantined = true
	}
	return p.Quarantined, nil
}

// GetPrediction returns a copy of a stored prediction
func (s *Store) GetPrediction(ctx context.Context, predictionID string) (*domain.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.predictions[predictionID]
	if !ok {
		return nil, domain.ErrPredictionNotFound
	}
	out := *p
	return &out, nil
}

// filterPredictions returns matches ordered by creation time
func (s *Store) filterPredictions(match func(*domain.Prediction) bool) []domain.Prediction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Prediction, 0)
	for _, p := range s.predictions {
		if match(p) {
			out = append(out, *p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// BeginScoringTx holds the store lock until Commit or Rollback, which
// serialises scoring transactions the way row locks do in postgres. Writes
// are staged and applied on Commit.
func (s *Store) BeginScoringTx(ctx context.Context) (repository.ScoringTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return &scoringTx{store: s}, nil
}

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

type scoringTx struct {
	store  *Store
	closed bool

	user       *domain.User
	prediction *domain.Prediction
}

func (t *scoringTx) GetPredictionForUpdate(ctx context.Context, predictionID string) (*domain.Prediction, error) {
	if t.closed {
		return nil, errTxClosed
	}
	p, ok := t.store.predictions[predictionID]
	if !ok {
		return nil, domain.ErrPredictionNotFound
	}
	out := *p
	return &out, nil
}

func (t *scoringTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	if t.closed {
		return nil, errTxClosed
	}
	u, ok := t.store.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (t *scoringTx) UpdateUserEconomy(ctx context.Context, user *domain.User) error {
	if t.closed {
		return errTxClosed
	}
	if _, ok := t.store.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	staged := *user
	t.user = &staged
	return nil
}

func (t *scoringTx) MarkPredictionScored(ctx context.Context, predictionID string, points, coins int64, accuracy domain.PredictionAccuracy, scoredAt time.Time) error {
	if t.closed {
		return errTxClosed
	}
	p, ok := t.store.predictions[predictionID]
	if !ok {
		return domain.ErrPredictionNotFound
	}
	staged := *p
	staged.Scored = true
	staged.PointsAwarded = points
	staged.CoinsAwarded = coins
	staged.Accuracy = accuracy
	at := scoredAt
	staged.ScoredAt = &at
	t.prediction = &staged
	return nil
}

func (t *scoringTx) Commit(ctx context.Context) error {
	if t.closed {
		return errTxClosed
	}
	if t.user != nil {
		t.store.users[t.user.ID] = t.user
	}
	if t.prediction != nil {
		t.store.predictions[t.prediction.ID] = t.prediction
	}
	t.close()
	return nil
}

func (t *scoringTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.close()
	return nil
}

func (t *scoringTx) close() {
	t.closed = true
	t.user = nil
	t.prediction = nil
	t.store.mu.Unlock()
}
