package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SubRace_Go/internal/domain"
)

func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.AnonymousID == user.AnonymousID ||
			(user.ReferralCode != "" && existing.ReferralCode == user.ReferralCode) {
			return domain.ErrUserExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := s.now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.LastActive.IsZero() {
		user.LastActive = now
	}
	stored := *user
	s.users[stored.ID] = &stored
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (s *Store) GetUserByAnonymousID(ctx context.Context, anonymousID string) (*domain.User, error) {
	return s.findUser(func(u *domain.User) bool { return u.AnonymousID == anonymousID })
}

func (s *Store) GetUserByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	return s.findUser(func(u *domain.User) bool { return u.ReferralCode == code })
}

func (s *Store) UpdateUserProfile(ctx context.Context, userID, username, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Username = username
	u.TeamID = teamID
	u.LastActive = s.now()
	return nil
}

func (s *Store) TouchLastActive(ctx context.Context, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastActive = at
	return nil
}

func (s *Store) AddCoins(ctx context.Context, userID string, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Coins += amount
	return nil
}

// DeleteUser removes a user. Predictions are left in place.
func (s *Store) DeleteUser(ctx context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
}

func (s *Store) findUser(match func(*domain.User) bool) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if match(u) {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
