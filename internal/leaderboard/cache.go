package leaderboard

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

type cachedBoard struct {
	Version  string
	Board    *domain.Leaderboard
	CachedAt time.Time
}

// boardCache holds rendered leaderboards keyed by team filter
type boardCache struct {
	lru *expirable.LRU[string, *cachedBoard]
}

func newBoardCache(size int, ttl time.Duration) *boardCache {
	return &boardCache{
		lru: expirable.NewLRU[string, *cachedBoard](size, nil, ttl),
	}
}

func cacheKey(teamID string) string {
	if teamID == "" {
		return allTeamsKey
	}
	return "team:" + teamID
}

func (c *boardCache) Get(teamID string) (*domain.Leaderboard, bool) {
	key := cacheKey(teamID)
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.Board, true
}

func (c *boardCache) Set(teamID string, board *domain.Leaderboard) {
	c.lru.Add(cacheKey(teamID), &cachedBoard{
		Version:  CacheSchemaVersion,
		Board:    board,
		CachedAt: time.Now(),
	})
}

// Clear removes all entries from the cache.
func (c *boardCache) Clear() {
	c.lru.Purge()
}

func (c *boardCache) Len() int {
	return c.lru.Len()
}
