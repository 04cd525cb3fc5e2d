package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/SubRace_Go/internal/concurrency"
	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/logger"
	"github.com/osse101/SubRace_Go/internal/metrics"
	"github.com/osse101/SubRace_Go/internal/repository"
	"github.com/osse101/SubRace_Go/internal/utils"
)

// Service runs the daily scoring pass
type Service interface {
	// RunDailyPass scores every open prediction for the previous calendar
	// day. Safe to re-run: predictions already scored are skipped.
	RunDailyPass(ctx context.Context) (*domain.ScoringSummary, error)
}

// Notifier receives the result of a pass that scored something
type Notifier interface {
	AnnounceScoring(ctx context.Context, day time.Time, summary *domain.ScoringSummary) error
}

// Config tunes the scoring pass
type Config struct {
	Location    *time.Location
	MaxAttempts int
	LeaseTTL    time.Duration
}

type service struct {
	streamerRepo   repository.Streamer
	snapshotRepo   repository.Snapshot
	predictionRepo repository.Prediction
	leaser         concurrency.Leaser
	locks          *concurrency.LockManager
	notifier       Notifier
	cfg            Config
	now            func() time.Time
}

type outcome int

const (
	outcomeScored outcome = iota
	outcomeSkipped
	outcomeQuarantined
)

// NewService creates a new scoring service. notifier may be nil.
func NewService(
	streamerRepo repository.Streamer,
	snapshotRepo repository.Snapshot,
	predictionRepo repository.Prediction,
	leaser concurrency.Leaser,
	locks *concurrency.LockManager,
	notifier Notifier,
	cfg Config,
) Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.LeaseTTL <= 0 {
		cfg.LeaseTTL = DefaultLeaseTTL
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		streamerRepo:   streamerRepo,
		snapshotRepo:   snapshotRepo,
		predictionRepo: predictionRepo,
		leaser:         leaser,
		locks:          locks,
		notifier:       notifier,
		cfg:            cfg,
		now:            time.Now,
	}
}

func (s *service) RunDailyPass(ctx context.Context) (*domain.ScoringSummary, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	today := utils.StartOfDay(s.now(), s.cfg.Location)
	day := today.AddDate(0, 0, -1)
	key := leaseKeyPrefix + day.Format(dayKeyLayout)

	lease, err := s.leaser.TryAcquire(ctx, key, s.cfg.LeaseTTL)
	if err != nil {
		if errors.Is(err, concurrency.ErrLeaseHeld) {
			log.Warn(LogMsgLeaseHeld, "lease", key)
			metrics.LeaseContention.WithLabelValues("scoring").Inc()
			metrics.ScoringPassesTotal.WithLabelValues(metrics.ResultBusy).Inc()
			return nil, domain.ErrScoringInProgress
		}
		metrics.ScoringPassesTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("failed to acquire scoring lease: %w", err)
	}
	defer func() {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			log.Error(LogMsgLeaseReleaseFailed, "lease", key, "error", err)
		}
	}()

	log.Info(LogMsgPassStarted, "day", day.Format(dayKeyLayout))

	summary, err := s.runPass(ctx, day, today)
	metrics.ScoringPassDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ScoringPassesTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}

	if summary.Scored == 0 && summary.Message != "" {
		metrics.ScoringPassesTotal.WithLabelValues(metrics.ResultEmpty).Inc()
	} else {
		metrics.ScoringPassesTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	}

	log.Info(LogMsgPassCompleted,
		"day", day.Format(dayKeyLayout),
		"scored", summary.Scored,
		"skipped", summary.Skipped,
		"quarantined", summary.Quarantined,
		"winner", summary.Winner,
		"duration", time.Since(start))

	return summary, nil
}

func (s *service) runPass(ctx context.Context, day, nextDay time.Time) (*domain.ScoringSummary, error) {
	log := logger.FromContext(ctx)

	// 1. Candidates
	candidates, err := s.predictionRepo.GetUnscoredPredictions(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load unscored predictions: %w", err)
	}
	if len(candidates) == 0 {
		log.Info(LogMsgNoPredictions, "day", day.Format(dayKeyLayout))
		return &domain.ScoringSummary{Success: true, Message: domain.MsgNoPredictionsToScore}, nil
	}

	// 2. Ground truth
	streamers, err := s.streamerRepo.ListStreamers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list streamers: %w", err)
	}
	if len(streamers) == 0 {
		return nil, domain.ErrNoStreamers
	}

	snapshots, err := s.snapshotRepo.GetLatestSnapshotsInRange(ctx, day, nextDay)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshots for %s: %w", day.Format(dayKeyLayout), err)
	}

	truth := DetermineGroundTruth(streamers, snapshots)
	log.Info(LogMsgGroundTruth,
		"winner_id", truth.WinnerID,
		"winner", truth.WinnerName,
		"winner_growth", truth.WinnerGrowth,
		"combined_total", truth.CombinedTotal,
		"snapshots", len(snapshots))

	// 3. Score one by one; each prediction commits independently
	summary := &domain.ScoringSummary{
		Success: true,
		Results: make([]domain.ScoredResult, 0, len(candidates)),
		Winner:  truth.WinnerName,
	}

	for i := range candidates {
		result, out, err := s.scorePrediction(ctx, candidates[i], truth)
		if err != nil {
			return nil, fmt.Errorf("failed to score prediction %s: %w", candidates[i].ID, err)
		}
		switch out {
		case outcomeScored:
			summary.Scored++
			summary.Results = append(summary.Results, *result)
		case outcomeQuarantined:
			summary.Quarantined++
		default:
			summary.Skipped++
		}
	}

	// 4. Announce, best effort
	if summary.Scored > 0 && s.notifier != nil {
		if err := s.notifier.AnnounceScoring(ctx, day, summary); err != nil {
			log.Warn(LogMsgNotifyFailed, "error", err)
		}
	}

	return summary, nil
}

// scorePrediction holds the user's mutex around the scoring transaction.
// Lock order: user mutex, then prediction row, then user row.
func (s *service) scorePrediction(ctx context.Context, candidate domain.Prediction, truth *GroundTruth) (result *domain.ScoredResult, out outcome, err error) {
	err = s.locks.WithLock(userLockKey(candidate.UserID), func() error {
		var scoreErr error
		result, out, scoreErr = s.scoreLocked(ctx, candidate, truth)
		return scoreErr
	})
	return result, out, err
}

func (s *service) scoreLocked(ctx context.Context, candidate domain.Prediction, truth *GroundTruth) (*domain.ScoredResult, outcome, error) {
	log := logger.FromContext(ctx)

	tx, err := s.predictionRepo.BeginScoringTx(ctx)
	if err != nil {
		return nil, outcomeSkipped, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetPredictionForUpdate(ctx, candidate.ID)
	if err != nil {
		return nil, outcomeSkipped, fmt.Errorf("failed to lock prediction: %w", err)
	}
	if p.Scored || p.Quarantined {
		log.Debug(LogMsgPredictionSkipped, "prediction_id", p.ID)
		return nil, outcomeSkipped, nil
	}

	u, err := tx.GetUserForUpdate(ctx, p.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		// Release the prediction row before recording the miss
		repository.SafeRollback(ctx, tx)
		return s.recordMiss(ctx, p)
	}
	if err != nil {
		return nil, outcomeSkipped, fmt.Errorf("failed to lock user: %w", err)
	}

	reward := ComputeReward(*p, truth.WinnerID, truth.SnapshotFor(u.TeamID), truth.CombinedTotal, u.CurrentStreak)
	leveledUp := ApplyReward(u, reward)

	if err := tx.UpdateUserEconomy(ctx, u); err != nil {
		return nil, outcomeSkipped, fmt.Errorf("failed to update user economy: %w", err)
	}
	if err := tx.MarkPredictionScored(ctx, p.ID, reward.Points, reward.Coins, reward.Accuracy, s.now()); err != nil {
		return nil, outcomeSkipped, fmt.Errorf("failed to mark prediction scored: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, outcomeSkipped, fmt.Errorf("failed to commit: %w", err)
	}

	recordRewardMetrics(reward, leveledUp)
	log.Debug(LogMsgPredictionScored,
		"prediction_id", p.ID,
		"user_id", u.ID,
		"points", reward.Points,
		"coins", reward.Coins,
		"multiplier", reward.Multiplier,
		"streak", u.CurrentStreak,
		"leveled_up", leveledUp)

	return &domain.ScoredResult{
		Username:      u.Username,
		Points:        reward.Points,
		Coins:         reward.Coins,
		WinnerCorrect: reward.Accuracy.WinnerCorrect,
		LeveledUp:     leveledUp,
	}, outcomeScored, nil
}

func (s *service) recordMiss(ctx context.Context, p *domain.Prediction) (*domain.ScoredResult, outcome, error) {
	log := logger.FromContext(ctx)

	quarantined, err := s.predictionRepo.RecordScoringMiss(ctx, p.ID, s.cfg.MaxAttempts)
	if err != nil {
		return nil, outcomeSkipped, fmt.Errorf("failed to record scoring miss: %w", err)
	}
	if quarantined {
		log.Warn(LogMsgQuarantined, "prediction_id", p.ID, "user_id", p.UserID, "max_attempts", s.cfg.MaxAttempts)
		metrics.PredictionsQuarantined.Inc()
		return nil, outcomeQuarantined, nil
	}
	log.Warn(LogMsgUserMissing, "prediction_id", p.ID, "user_id", p.UserID, "attempt", p.ScoringAttempts+1)
	return nil, outcomeSkipped, nil
}

func recordRewardMetrics(r Reward, leveledUp bool) {
	if r.Accuracy.WinnerCorrect {
		metrics.PredictionsScored.WithLabelValues(metrics.OutcomeCorrect).Inc()
	} else {
		metrics.PredictionsScored.WithLabelValues(metrics.OutcomeIncorrect).Inc()
	}
	metrics.PointsAwarded.Add(float64(r.Points))
	metrics.CoinsAwarded.Add(float64(r.Coins))
	if leveledUp {
		metrics.LevelUps.Inc()
	}
}

func userLockKey(userID string) string {
	return "user:" + userID
}
