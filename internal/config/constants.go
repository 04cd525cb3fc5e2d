package config

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Default values
const (
	DefaultPort                     = "8080"
	DefaultTimezone                 = "UTC"
	DefaultScoringTime              = "00:10"
	DefaultScraperBaseURL           = "https://twitchtracker.com"
	DefaultScraperRequestsPerSecond = 1.0
	DefaultSnapshotRetentionDays    = 30
	DefaultScoringMaxAttempts       = 7
	DefaultDBMaxConns               = 10
)
