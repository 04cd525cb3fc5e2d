package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/SubRace_Go/internal/domain"
)

func (s *Store) UpsertStreamer(ctx context.Context, streamer *domain.Streamer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, existing := range s.streamers {
		if strings.EqualFold(existing.Handle, streamer.Handle) {
			existing.Name = streamer.Name
			existing.Color = streamer.Color
			if streamer.Description != "" {
				existing.Description = streamer.Description
			}
			if streamer.LogoURL != "" {
				existing.LogoURL = streamer.LogoURL
			}
			existing.UpdatedAt = now
			*streamer = *existing
			return nil
		}
	}

	if streamer.ID == "" {
		streamer.ID = uuid.NewString()
	}
	streamer.CreatedAt = now
	streamer.UpdatedAt = now
	stored := *streamer
	s.streamers[stored.ID] = &stored
	return nil
}

func (s *Store) ListStreamers(ctx context.Context) ([]domain.Streamer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Streamer, 0, len(s.streamers))
	for _, st := range s.streamers {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) GetStreamerByID(ctx context.Context, id string) (*domain.Streamer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.streamers[id]
	if !ok {
		return nil, domain.ErrStreamerNotFound
	}
	out := *st
	return &out, nil
}

func (s *Store) UpdateStreamerProfile(ctx context.Context, id, description, logoURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.streamers[id]
	if !ok {
		return domain.ErrStreamerNotFound
	}
	st.Description = description
	st.LogoURL = logoURL
	st.UpdatedAt = s.now()
	return nil
}
