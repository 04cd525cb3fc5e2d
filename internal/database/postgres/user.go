package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `user_id::text, anonymous_id, username, team_id, coins, points, level,
	current_streak, longest_streak, total_predictions, correct_predictions,
	referral_code, referred_by, created_at, last_active`

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u          domain.User
		teamID     pgtype.UUID
		referredBy pgtype.UUID
	)
	err := row.Scan(&u.ID, &u.AnonymousID, &u.Username, &teamID, &u.Coins, &u.Points, &u.Level,
		&u.CurrentStreak, &u.LongestStreak, &u.TotalPredictions, &u.CorrectPredictions,
		&u.ReferralCode, &referredBy, &u.CreatedAt, &u.LastActive)
	if err != nil {
		return nil, err
	}
	u.TeamID = uuidString(teamID)
	u.ReferredBy = uuidString(referredBy)
	return &u, nil
}

// CreateUser inserts a user and fills in ID and timestamps
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	created, err := scanUser(r.db.QueryRow(ctx, `
		INSERT INTO users (anonymous_id, username, team_id, coins, points, level, referral_code, referred_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+userColumns,
		user.AnonymousID, user.Username, nullableUUID(user.TeamID), user.Coins, user.Points, user.Level,
		user.ReferralCode, nullableUUID(user.ReferredBy)))
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return domain.ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	*user = *created
	return nil
}

func (r *UserRepository) getUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByID returns domain.ErrUserNotFound when missing
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	id, err := parseUUID("user", userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.getUser(ctx, "user_id = $1", id)
}

// GetUserByAnonymousID looks a user up by device identifier
func (r *UserRepository) GetUserByAnonymousID(ctx context.Context, anonymousID string) (*domain.User, error) {
	return r.getUser(ctx, "anonymous_id = $1", anonymousID)
}

// GetUserByReferralCode looks a user up by referral code
func (r *UserRepository) GetUserByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	return r.getUser(ctx, "referral_code = $1", code)
}

// UpdateUserProfile sets username and team. An empty teamID clears the team.
func (r *UserRepository) UpdateUserProfile(ctx context.Context, userID, username, teamID string) error {
	id, err := parseUUID("user", userID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET username = $2, team_id = $3, last_active = NOW()
		WHERE user_id = $1
	`, id, username, nullableUUID(teamID))
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// TouchLastActive records activity
func (r *UserRepository) TouchLastActive(ctx context.Context, userID string, at time.Time) error {
	id, err := parseUUID("user", userID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	if _, err := r.db.Exec(ctx, `UPDATE users SET last_active = $2 WHERE user_id = $1`, id, at); err != nil {
		return fmt.Errorf("failed to touch user: %w", err)
	}
	return nil
}

// AddCoins credits (or debits) a user's balance atomically
func (r *UserRepository) AddCoins(ctx context.Context, userID string, amount int64) error {
	id, err := parseUUID("user", userID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	tag, err := r.db.Exec(ctx, `UPDATE users SET coins = coins + $2 WHERE user_id = $1`, id, amount)
	if err != nil {
		return fmt.Errorf("failed to add coins: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
