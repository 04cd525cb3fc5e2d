package repository

import (
	"context"
	"time"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// CreateUser inserts the user and fills in ID. A duplicate anonymous id
	// or referral code returns domain.ErrUserExists.
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByAnonymousID(ctx context.Context, anonymousID string) (*domain.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (*domain.User, error)
	UpdateUserProfile(ctx context.Context, userID, username, teamID string) error
	TouchLastActive(ctx context.Context, userID string, at time.Time) error
	AddCoins(ctx context.Context, userID string, amount int64) error
}
