package domain

import "time"

// User is an anonymous player identified by a device identifier
type User struct {
	ID                 string    `json:"id"`
	AnonymousID        string    `json:"anonymousId"`
	Username           string    `json:"username"`
	TeamID             string    `json:"teamId,omitempty"`
	Coins              int64     `json:"coins"`
	Points             int64     `json:"points"`
	Level              int       `json:"level"`
	CurrentStreak      int       `json:"currentStreak"`
	LongestStreak      int       `json:"longestStreak"`
	TotalPredictions   int       `json:"totalPredictions"`
	CorrectPredictions int       `json:"correctPredictions"`
	ReferralCode       string    `json:"referralCode"`
	ReferredBy         string    `json:"referredBy,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	LastActive         time.Time `json:"lastActive"`
}

// HasTeam reports whether the user picked a team
func (u *User) HasTeam() bool {
	return u.TeamID != ""
}

// UserUpdate carries optional profile changes
type UserUpdate struct {
	Username *string
	TeamID   *string
}
