package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// SnapshotRepository implements repository.Snapshot for PostgreSQL
type SnapshotRepository struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

const snapshotColumns = `snapshot_id::text, streamer_id::text, taken_at, total_subs, paid_subs,
	gifted_subs, prime_subs, tier1_subs, tier2_subs, tier3_subs, growth`

func scanSnapshot(row pgx.Row) (*domain.Snapshot, error) {
	var s domain.Snapshot
	err := row.Scan(&s.ID, &s.StreamerID, &s.TakenAt, &s.TotalSubs, &s.PaidSubs,
		&s.GiftedSubs, &s.PrimeSubs, &s.Tier1Subs, &s.Tier2Subs, &s.Tier3Subs, &s.Growth)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectSnapshots(rows pgx.Rows) ([]domain.Snapshot, error) {
	defer rows.Close()

	snapshots := make([]domain.Snapshot, 0)
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, *s)
	}
	return snapshots, rows.Err()
}

// InsertSnapshot appends a snapshot and fills in its ID
func (r *SnapshotRepository) InsertSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	streamerID, err := parseUUID("streamer", snapshot.StreamerID)
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO sub_snapshots (streamer_id, taken_at, total_subs, paid_subs, gifted_subs,
			prime_subs, tier1_subs, tier2_subs, tier3_subs, growth)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING snapshot_id::text
	`, streamerID, snapshot.TakenAt, snapshot.TotalSubs, snapshot.PaidSubs, snapshot.GiftedSubs,
		snapshot.PrimeSubs, snapshot.Tier1Subs, snapshot.Tier2Subs, snapshot.Tier3Subs, snapshot.Growth,
	).Scan(&snapshot.ID)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// GetLatestSnapshotBefore returns nil, nil when there is no earlier snapshot
func (r *SnapshotRepository) GetLatestSnapshotBefore(ctx context.Context, streamerID string, before time.Time) (*domain.Snapshot, error) {
	id, err := parseUUID("streamer", streamerID)
	if err != nil {
		return nil, err
	}

	s, err := scanSnapshot(r.db.QueryRow(ctx, `
		SELECT `+snapshotColumns+`
		FROM sub_snapshots
		WHERE streamer_id = $1 AND taken_at < $2
		ORDER BY taken_at DESC
		LIMIT 1
	`, id, before))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get previous snapshot: %w", err)
	}
	return s, nil
}

// GetLatestSnapshotsInRange returns the latest snapshot per streamer in [from, to)
func (r *SnapshotRepository) GetLatestSnapshotsInRange(ctx context.Context, from, to time.Time) ([]domain.Snapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT ON (streamer_id) `+snapshotColumns+`
		FROM sub_snapshots
		WHERE taken_at >= $1 AND taken_at < $2
		ORDER BY streamer_id, taken_at DESC
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshots in range: %w", err)
	}
	return collectSnapshots(rows)
}

// GetLatestSnapshots returns the latest snapshot of every streamer
func (r *SnapshotRepository) GetLatestSnapshots(ctx context.Context) ([]domain.Snapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT ON (streamer_id) `+snapshotColumns+`
		FROM sub_snapshots
		ORDER BY streamer_id, taken_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshots: %w", err)
	}
	return collectSnapshots(rows)
}

// GetSnapshotHistory returns snapshots since the given instant, oldest first
func (r *SnapshotRepository) GetSnapshotHistory(ctx context.Context, streamerID string, since time.Time) ([]domain.Snapshot, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if streamerID == "" {
		rows, err = r.db.Query(ctx, `
			SELECT `+snapshotColumns+`
			FROM sub_snapshots
			WHERE taken_at >= $1
			ORDER BY taken_at ASC
		`, since)
	} else {
		id, perr := parseUUID("streamer", streamerID)
		if perr != nil {
			return nil, domain.ErrStreamerNotFound
		}
		rows, err = r.db.Query(ctx, `
			SELECT `+snapshotColumns+`
			FROM sub_snapshots
			WHERE streamer_id = $1 AND taken_at >= $2
			ORDER BY taken_at ASC
		`, id, since)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot history: %w", err)
	}
	return collectSnapshots(rows)
}

// DeleteSnapshotsBefore prunes snapshots older than cutoff
func (r *SnapshotRepository) DeleteSnapshotsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sub_snapshots WHERE taken_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	return tag.RowsAffected(), nil
}
