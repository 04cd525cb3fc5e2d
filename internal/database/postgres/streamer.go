package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// StreamerRepository implements repository.Streamer for PostgreSQL
type StreamerRepository struct {
	db *pgxpool.Pool
}

// NewStreamerRepository creates a new StreamerRepository
func NewStreamerRepository(db *pgxpool.Pool) *StreamerRepository {
	return &StreamerRepository{db: db}
}

const streamerColumns = `streamer_id::text, name, handle, color, description, logo_url, created_at, updated_at`

func scanStreamer(row pgx.Row) (*domain.Streamer, error) {
	var s domain.Streamer
	if err := row.Scan(&s.ID, &s.Name, &s.Handle, &s.Color, &s.Description, &s.LogoURL, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertStreamer inserts a streamer or refreshes name and color for an existing handle
func (r *StreamerRepository) UpsertStreamer(ctx context.Context, streamer *domain.Streamer) error {
	query := `
		INSERT INTO streamers (name, handle, color, description, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (LOWER(handle)) DO UPDATE
		SET name = EXCLUDED.name,
		    color = EXCLUDED.color,
		    description = CASE WHEN EXCLUDED.description <> '' THEN EXCLUDED.description ELSE streamers.description END,
		    logo_url = CASE WHEN EXCLUDED.logo_url <> '' THEN EXCLUDED.logo_url ELSE streamers.logo_url END,
		    updated_at = NOW()
		RETURNING ` + streamerColumns

	s, err := scanStreamer(r.db.QueryRow(ctx, query,
		streamer.Name, streamer.Handle, streamer.Color, streamer.Description, streamer.LogoURL))
	if err != nil {
		return fmt.Errorf("failed to upsert streamer %s: %w", streamer.Handle, err)
	}
	*streamer = *s
	return nil
}

// ListStreamers returns all streamers ordered by name
func (r *StreamerRepository) ListStreamers(ctx context.Context) ([]domain.Streamer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+streamerColumns+` FROM streamers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list streamers: %w", err)
	}
	defer rows.Close()

	streamers := make([]domain.Streamer, 0)
	for rows.Next() {
		s, err := scanStreamer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan streamer: %w", err)
		}
		streamers = append(streamers, *s)
	}
	return streamers, rows.Err()
}

// GetStreamerByID returns domain.ErrStreamerNotFound when missing
func (r *StreamerRepository) GetStreamerByID(ctx context.Context, id string) (*domain.Streamer, error) {
	streamerID, err := parseUUID("streamer", id)
	if err != nil {
		return nil, domain.ErrStreamerNotFound
	}

	s, err := scanStreamer(r.db.QueryRow(ctx,
		`SELECT `+streamerColumns+` FROM streamers WHERE streamer_id = $1`, streamerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStreamerNotFound
		}
		return nil, fmt.Errorf("failed to get streamer: %w", err)
	}
	return s, nil
}

// UpdateStreamerProfile stores enriched profile fields
func (r *StreamerRepository) UpdateStreamerProfile(ctx context.Context, id, description, logoURL string) error {
	streamerID, err := parseUUID("streamer", id)
	if err != nil {
		return domain.ErrStreamerNotFound
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE streamers
		SET description = $2, logo_url = $3, updated_at = NOW()
		WHERE streamer_id = $1
	`, streamerID, description, logoURL)
	if err != nil {
		return fmt.Errorf("failed to update streamer profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStreamerNotFound
	}
	return nil
}
