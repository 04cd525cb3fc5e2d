package domain

import "time"

// Streamer is a tracked livestreamer
type Streamer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Handle      string    `json:"handle"`
	Color       string    `json:"color"`
	Description string    `json:"description,omitempty"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StreamerProfile is the platform-side profile used to enrich a Streamer
type StreamerProfile struct {
	Handle          string
	DisplayName     string
	Description     string
	ProfileImageURL string
}
