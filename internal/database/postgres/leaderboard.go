package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/utils"
)

// LeaderboardRepository implements repository.Leaderboard for PostgreSQL
type LeaderboardRepository struct {
	db *pgxpool.Pool
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(db *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// GetTopUsers ranks users by points, optionally within one team
func (r *LeaderboardRepository) GetTopUsers(ctx context.Context, teamID string, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.user_id::text, u.username, u.points, u.level, u.current_streak,
		       u.total_predictions, u.correct_predictions, u.team_id,
		       COALESCE(s.name, $3), COALESCE(s.color, $4)
		FROM users u
		LEFT JOIN streamers s ON s.streamer_id = u.team_id
		WHERE $1::uuid IS NULL OR u.team_id = $1::uuid
		ORDER BY u.points DESC, u.user_id
		LIMIT $2
	`, nullableUUID(teamID), limit, domain.NoTeamName, domain.NoTeamColor)
	if err != nil {
		return nil, fmt.Errorf("failed to get top users: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.LeaderboardEntry, 0)
	for rows.Next() {
		var (
			e    domain.LeaderboardEntry
			team pgtype.UUID
		)
		if err := rows.Scan(&e.UserID, &e.Username, &e.Points, &e.Level, &e.CurrentStreak,
			&e.TotalPredictions, &e.CorrectPredictions, &team, &e.TeamName, &e.TeamColor); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		e.Rank = len(entries) + 1
		e.TeamID = uuidString(team)
		e.Accuracy = utils.Percentage(e.CorrectPredictions, e.TotalPredictions)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetTeamStats aggregates users per chosen team
func (r *LeaderboardRepository) GetTeamStats(ctx context.Context) ([]domain.TeamStats, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.streamer_id::text, s.name, s.color, SUM(u.points)::bigint, COUNT(*)
		FROM users u
		JOIN streamers s ON s.streamer_id = u.team_id
		GROUP BY s.streamer_id, s.name, s.color
		ORDER BY SUM(u.points) DESC, s.streamer_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get team stats: %w", err)
	}
	defer rows.Close()

	stats := make([]domain.TeamStats, 0)
	for rows.Next() {
		var s domain.TeamStats
		if err := rows.Scan(&s.TeamID, &s.Name, &s.Color, &s.TotalPoints, &s.MemberCount); err != nil {
			return nil, fmt.Errorf("failed to scan team stats: %w", err)
		}
		s.AvgPoints = utils.RoundedAverage(s.TotalPoints, s.MemberCount)
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
