package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/logger"
	"github.com/osse101/SubRace_Go/internal/metrics"
	"github.com/osse101/SubRace_Go/internal/repository"
)

// Service defines the interface for anonymous player accounts
type Service interface {
	// Create returns the existing user for a known anonymous id, or registers
	// a new one. The bool reports whether a user was created.
	Create(ctx context.Context, anonymousID, referralCode string) (*domain.User, bool, error)
	Get(ctx context.Context, anonymousID string) (*domain.User, error)
	Update(ctx context.Context, anonymousID string, update domain.UserUpdate) (*domain.User, error)
}

type service struct {
	repo         repository.User
	streamerRepo repository.Streamer
	now          func() time.Time
}

// NewService creates a new user service
func NewService(repo repository.User, streamerRepo repository.Streamer) Service {
	return &service{
		repo:         repo,
		streamerRepo: streamerRepo,
		now:          time.Now,
	}
}

func (s *service) Create(ctx context.Context, anonymousID, referralCode string) (*domain.User, bool, error) {
	log := logger.FromContext(ctx)

	existing, err := s.repo.GetUserByAnonymousID(ctx, anonymousID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}

	var referrer *domain.User
	if referralCode != "" {
		referrer, err = s.repo.GetUserByReferralCode(ctx, referralCode)
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			log.Info(LogMsgReferralUnknown, "referral_code", referralCode)
			referrer = nil
		case err != nil:
			return nil, false, fmt.Errorf("failed to look up referral code: %w", err)
		}
	}

	user, err := s.insertWithFreshCode(ctx, anonymousID, referrer)
	if err != nil {
		// Lost a race with a concurrent create for the same device
		if errors.Is(err, domain.ErrUserExists) {
			if existing, getErr := s.repo.GetUserByAnonymousID(ctx, anonymousID); getErr == nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}
	metrics.UsersCreated.Inc()
	log.Info(LogMsgUserCreated, "user_id", user.ID, "username", user.Username)

	if referrer != nil {
		if err := s.repo.AddCoins(ctx, referrer.ID, domain.ReferralBonusCoins); err != nil {
			log.Error(LogMsgReferralCreditFailed, "error", err, "referrer_id", referrer.ID)
		} else {
			log.Info(LogMsgReferralCredited, "referrer_id", referrer.ID, "coins", domain.ReferralBonusCoins)
		}
	}

	return user, true, nil
}

func (s *service) insertWithFreshCode(ctx context.Context, anonymousID string, referrer *domain.User) (*domain.User, error) {
	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		username, err := GenerateUsername()
		if err != nil {
			return nil, fmt.Errorf("failed to generate username: %w", err)
		}
		code, err := GenerateReferralCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate referral code: %w", err)
		}

		now := s.now()
		user := &domain.User{
			AnonymousID:  anonymousID,
			Username:     username,
			Coins:        domain.DefaultStartingCoins,
			Level:        domain.DefaultStartingLevel,
			ReferralCode: code,
			CreatedAt:    now,
			LastActive:   now,
		}
		if referrer != nil {
			user.ReferredBy = referrer.ID
		}

		err = s.repo.CreateUser(ctx, user)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, domain.ErrUserExists) {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		// Either the device registered concurrently or the code collided
		if _, getErr := s.repo.GetUserByAnonymousID(ctx, anonymousID); getErr == nil {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to allocate referral code: %w", lastErr)
}

func (s *service) Get(ctx context.Context, anonymousID string) (*domain.User, error) {
	user, err := s.repo.GetUserByAnonymousID(ctx, anonymousID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.repo.TouchLastActive(ctx, user.ID, now); err != nil {
		logger.FromContext(ctx).Warn(LogMsgTouchFailed, "error", err, "user_id", user.ID)
	} else {
		user.LastActive = now
	}
	return user, nil
}

func (s *service) Update(ctx context.Context, anonymousID string, update domain.UserUpdate) (*domain.User, error) {
	user, err := s.repo.GetUserByAnonymousID(ctx, anonymousID)
	if err != nil {
		return nil, err
	}

	username := user.Username
	if update.Username != nil {
		username, err = ValidateUsername(*update.Username)
		if err != nil {
			return nil, err
		}
	}

	teamID := user.TeamID
	if update.TeamID != nil && *update.TeamID != "" {
		team, err := s.streamerRepo.GetStreamerByID(ctx, *update.TeamID)
		if err != nil {
			return nil, err
		}
		teamID = team.ID
	}

	if err := s.repo.UpdateUserProfile(ctx, user.ID, username, teamID); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.repo.GetUserByID(ctx, user.ID)
}
