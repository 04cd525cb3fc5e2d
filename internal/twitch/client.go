// Package twitch enriches streamer profiles from the Twitch Helix API.
package twitch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/nicklaw5/helix/v2"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// helixMaxLogins is the most logins GetUsers accepts per call
const helixMaxLogins = 100

// ProfileClient fetches public profiles for platform handles
type ProfileClient interface {
	GetProfiles(ctx context.Context, handles []string) ([]domain.StreamerProfile, error)
}

// helixAPI is the part of *helix.Client used here
type helixAPI interface {
	GetUsers(params *helix.UsersParams) (*helix.UsersResponse, error)
	RequestAppAccessToken(scopes []string) (*helix.AppAccessTokenResponse, error)
	SetAppAccessToken(accessToken string)
}

// HelixClient implements ProfileClient with an app access token
type HelixClient struct {
	api    helixAPI
	mu     sync.Mutex
	authed bool
}

// NewHelixClient creates a client with app credentials. The access token is
// requested lazily on first use.
func NewHelixClient(clientID, clientSecret string) (*HelixClient, error) {
	client, err := helix.NewClient(&helix.Options{
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create helix client: %w", err)
	}
	return &HelixClient{api: client}, nil
}

func (c *HelixClient) ensureToken() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.authed {
		return nil
	}
	resp, err := c.api.RequestAppAccessToken(nil)
	if err != nil {
		return fmt.Errorf("failed to request app access token: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to request app access token: %s", resp.ErrorMessage)
	}
	c.api.SetAppAccessToken(resp.Data.AccessToken)
	c.authed = true
	return nil
}

// GetProfiles looks up handles in batches. The helix client does not take a
// context, so ctx is only checked between batches.
func (c *HelixClient) GetProfiles(ctx context.Context, handles []string) ([]domain.StreamerProfile, error) {
	if len(handles) == 0 {
		return nil, nil
	}
	if err := c.ensureToken(); err != nil {
		return nil, err
	}

	profiles := make([]domain.StreamerProfile, 0, len(handles))
	for start := 0; start < len(handles); start += helixMaxLogins {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+helixMaxLogins, len(handles))

		resp, err := c.api.GetUsers(&helix.UsersParams{Logins: handles[start:end]})
		if err != nil {
			return nil, fmt.Errorf("failed to get users: %w", err)
		}
		if resp.StatusCode == http.StatusUnauthorized {
			c.mu.Lock()
			c.authed = false
			c.mu.Unlock()
			return nil, errors.New("helix rejected the app access token")
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to get users: %d %s", resp.StatusCode, resp.ErrorMessage)
		}

		for _, u := range resp.Data.Users {
			profiles = append(profiles, domain.StreamerProfile{
				Handle:          u.Login,
				DisplayName:     u.DisplayName,
				Description:     u.Description,
				ProfileImageURL: u.ProfileImageURL,
			})
		}
	}
	return profiles, nil
}
