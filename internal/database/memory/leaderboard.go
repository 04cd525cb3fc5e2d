package memory

import (
	"context"
	"sort"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/utils"
)

func (s *Store) GetTopUsers(ctx context.Context, teamID string, limit int) ([]domain.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		if teamID != "" && u.TeamID != teamID {
			continue
		}
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Points == users[j].Points {
			return users[i].ID < users[j].ID
		}
		return users[i].Points > users[j].Points
	})
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}

	entries := make([]domain.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entry := domain.LeaderboardEntry{
			Rank:               i + 1,
			UserID:             u.ID,
			Username:           u.Username,
			Points:             u.Points,
			Level:              u.Level,
			CurrentStreak:      u.CurrentStreak,
			TotalPredictions:   u.TotalPredictions,
			CorrectPredictions: u.CorrectPredictions,
			Accuracy:           utils.Percentage(u.CorrectPredictions, u.TotalPredictions),
			TeamID:             u.TeamID,
			TeamName:           domain.NoTeamName,
			TeamColor:          domain.NoTeamColor,
		}
		if team, ok := s.streamers[u.TeamID]; ok {
			entry.TeamName = team.Name
			entry.TeamColor = team.Color
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Store) GetTeamStats(ctx context.Context) ([]domain.TeamStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byTeam := make(map[string]*domain.TeamStats)
	for _, u := range s.users {
		team, ok := s.streamers[u.TeamID]
		if !ok {
			continue
		}
		stats, ok := byTeam[team.ID]
		if !ok {
			stats = &domain.TeamStats{TeamID: team.ID, Name: team.Name, Color: team.Color}
			byTeam[team.ID] = stats
		}
		stats.TotalPoints += u.Points
		stats.MemberCount++
	}

	out := make([]domain.TeamStats, 0, len(byTeam))
	for _, stats := range byTeam {
		stats.AvgPoints = utils.RoundedAverage(stats.TotalPoints, stats.MemberCount)
		out = append(out, *stats)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints == out[j].TotalPoints {
			return out[i].TeamID < out[j].TeamID
		}
		return out[i].TotalPoints > out[j].TotalPoints
	})
	return out, nil
}
