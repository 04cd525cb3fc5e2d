package prediction

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/logger"
	"github.com/osse101/SubRace_Go/internal/metrics"
	"github.com/osse101/SubRace_Go/internal/repository"
	"github.com/osse101/SubRace_Go/internal/utils"
)

// Service defines daily prediction operations
type Service interface {
	Submit(ctx context.Context, req domain.SubmitPredictionRequest) (*domain.Prediction, error)
	// Today returns community stats for today and, when anonymousID names a
	// known user, that user's prediction
	Today(ctx context.Context, anonymousID string) (*domain.TodayPredictions, error)
	History(ctx context.Context, anonymousID string) ([]domain.Prediction, error)
}

type service struct {
	repo         repository.Prediction
	userRepo     repository.User
	streamerRepo repository.Streamer
	loc          *time.Location
	now          func() time.Time
}

// NewService creates a new prediction service. Calendar days are computed
// in loc, UTC when nil.
func NewService(repo repository.Prediction, userRepo repository.User, streamerRepo repository.Streamer, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:         repo,
		userRepo:     userRepo,
		streamerRepo: streamerRepo,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *service) today() time.Time {
	return utils.StartOfDay(s.now(), s.loc)
}

func (s *service) Submit(ctx context.Context, req domain.SubmitPredictionRequest) (*domain.Prediction, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepo.GetUserByAnonymousID(ctx, req.AnonymousID)
	if err != nil {
		return nil, err
	}
	if !user.HasTeam() {
		return nil, domain.ErrTeamRequired
	}
	if _, err := s.streamerRepo.GetStreamerByID(ctx, req.WinnerID); err != nil {
		return nil, err
	}

	now := s.now()
	p := &domain.Prediction{
		UserID:             user.ID,
		Date:               s.today(),
		PredictedWinnerID:  req.WinnerID,
		PredictedTeamSubs:  req.PredictedTeamSubs,
		PredictedTotalSubs: req.PredictedTotalSubs,
		Locked:             true,
		CreatedAt:          now,
	}
	if err := s.repo.SubmitPrediction(ctx, p, domain.PredictionSubmitCoins); err != nil {
		if errors.Is(err, domain.ErrPredictionExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to submit prediction: %w", err)
	}
	metrics.PredictionsSubmitted.Inc()

	if err := s.userRepo.TouchLastActive(ctx, user.ID, now); err != nil {
		log.Warn(LogMsgTouchFailed, "error", err, "user_id", user.ID)
	}

	log.Info(LogMsgPredictionSubmitted, "user_id", user.ID, "prediction_id", p.ID, "winner_id", p.PredictedWinnerID)
	return p, nil
}

func (s *service) Today(ctx context.Context, anonymousID string) (*domain.TodayPredictions, error) {
	day := s.today()

	streamers, err := s.streamerRepo.ListStreamers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list streamers: %w", err)
	}
	predictions, err := s.repo.GetPredictionsForDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions: %w", err)
	}

	result := &domain.TodayPredictions{
		Date:           day,
		CommunityStats: CommunityStats(streamers, predictions),
	}

	if anonymousID == "" {
		return result, nil
	}
	user, err := s.userRepo.GetUserByAnonymousID(ctx, anonymousID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	own, err := s.repo.GetUserPredictionForDay(ctx, user.ID, day)
	switch {
	case errors.Is(err, domain.ErrPredictionNotFound):
	case err != nil:
		return nil, err
	default:
		result.UserPrediction = own
	}
	return result, nil
}

func (s *service) History(ctx context.Context, anonymousID string) ([]domain.Prediction, error) {
	user, err := s.userRepo.GetUserByAnonymousID(ctx, anonymousID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetUserPredictionHistory(ctx, user.ID, domain.PredictionHistoryLimit)
}

// CommunityStats counts votes per streamer. Every streamer is listed, most
// voted first; equal counts keep the roster order.
func CommunityStats(streamers []domain.Streamer, predictions []domain.Prediction) domain.CommunityStats {
	counts := make(map[string]int, len(streamers))
	for _, p := range predictions {
		counts[p.PredictedWinnerID]++
	}

	total := len(predictions)
	votes := make([]domain.StreamerVotes, 0, len(streamers))
	for _, st := range streamers {
		votes = append(votes, domain.StreamerVotes{
			StreamerID: st.ID,
			Name:       st.Name,
			Color:      st.Color,
			Count:      counts[st.ID],
			Percentage: utils.Percentage(counts[st.ID], total),
		})
	}
	sort.SliceStable(votes, func(i, j int) bool { return votes[i].Count > votes[j].Count })

	return domain.CommunityStats{
		TotalPredictions: total,
		Streamers:        votes,
	}
}
