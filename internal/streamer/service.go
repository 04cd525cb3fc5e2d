package streamer

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/logger"
	"github.com/osse101/SubRace_Go/internal/repository"
	"github.com/osse101/SubRace_Go/internal/twitch"
)

// Service defines streamer roster operations
type Service interface {
	Seed(ctx context.Context) error
	List(ctx context.Context) ([]domain.Streamer, error)
	Get(ctx context.Context, id string) (*domain.Streamer, error)
	// SyncProfiles fills in missing logos and descriptions from the platform
	SyncProfiles(ctx context.Context) (int, error)
}

type service struct {
	repo     repository.Streamer
	profiles twitch.ProfileClient
	roster   []domain.Streamer
}

// NewService creates a streamer service. profiles may be nil when no
// platform credentials are configured.
func NewService(repo repository.Streamer, profiles twitch.ProfileClient, roster []domain.Streamer) Service {
	if roster == nil {
		roster = DefaultRoster()
	}
	return &service{repo: repo, profiles: profiles, roster: roster}
}

// Seed upserts the roster by handle
func (s *service) Seed(ctx context.Context) error {
	for _, st := range s.roster {
		if err := s.repo.UpsertStreamer(ctx, &st); err != nil {
			return fmt.Errorf("failed to seed streamer %s: %w", st.Handle, err)
		}
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]domain.Streamer, error) {
	streamers, err := s.repo.ListStreamers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list streamers: %w", err)
	}
	return streamers, nil
}

func (s *service) Get(ctx context.Context, id string) (*domain.Streamer, error) {
	return s.repo.GetStreamerByID(ctx, id)
}

func (s *service) SyncProfiles(ctx context.Context) (int, error) {
	if s.profiles == nil {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	streamers, err := s.repo.ListStreamers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list streamers: %w", err)
	}

	handles := make([]string, 0, len(streamers))
	for _, st := range streamers {
		if st.LogoURL == "" || st.Description == "" {
			handles = append(handles, strings.ToLower(st.Handle))
		}
	}
	if len(handles) == 0 {
		return 0, nil
	}

	profiles, err := s.profiles.GetProfiles(ctx, handles)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	byHandle := make(map[string]domain.StreamerProfile, len(profiles))
	for _, p := range profiles {
		byHandle[strings.ToLower(p.Handle)] = p
	}

	updated := 0
	for _, st := range streamers {
		p, ok := byHandle[strings.ToLower(st.Handle)]
		if !ok {
			continue
		}
		description, logo := st.Description, st.LogoURL
		if description == "" {
			description = p.Description
		}
		if logo == "" {
			logo = p.ProfileImageURL
		}
		if description == st.Description && logo == st.LogoURL {
			continue
		}
		if err := s.repo.UpdateStreamerProfile(ctx, st.ID, description, logo); err != nil {
			return updated, fmt.Errorf("failed to update profile for %s: %w", st.Handle, err)
		}
		updated++
	}

	log.Info(LogMsgProfilesSynced, "updated", updated)
	return updated, nil
}
