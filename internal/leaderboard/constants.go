package leaderboard

import "time"

const (
	DefaultCacheSize = 64
	DefaultCacheTTL  = 5 * time.Minute

	allTeamsKey = "all"
)

const LogMsgCacheCleared = "Leaderboard cache cleared"
