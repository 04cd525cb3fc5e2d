package repository

import (
	"context"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// Streamer defines the data access interface for tracked streamers
type Streamer interface {
	// UpsertStreamer inserts or updates by handle and fills in ID
	UpsertStreamer(ctx context.Context, streamer *domain.Streamer) error
	// ListStreamers returns all streamers ordered by name
	ListStreamers(ctx context.Context) ([]domain.Streamer, error)
	GetStreamerByID(ctx context.Context, id string) (*domain.Streamer, error)
	UpdateStreamerProfile(ctx context.Context, id, description, logoURL string) error
}
