package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string

	Storage        string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxConns     int
	DBMaxConnIdle  time.Duration
	DBMaxConnLife  time.Duration
	RedisURL       string
	CronSecret     string
	TrustedProxies []string

	Location              *time.Location
	SnapshotRetention     time.Duration
	ScoringMaxAttempts    int
	ScoringLeaseTTL       time.Duration
	IngestInterval        time.Duration
	ScoringHour           int
	ScoringMinute         int
	EnableScheduler       bool
	ScraperBaseURL        string
	ScraperRequestsPerSec float64
	ScraperTimeout        time.Duration

	TwitchClientID     string
	TwitchClientSecret string
	DiscordWebhookURL  string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),

		Storage:       strings.ToLower(getEnv("STORAGE", StoragePostgres)),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "subrace"),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdle: getEnvAsDuration("DB_MAX_CONN_IDLE", 5*time.Minute),
		DBMaxConnLife: getEnvAsDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		RedisURL:      getEnv("REDIS_URL", ""),
		CronSecret:    getEnv("CRON_SECRET", ""),

		SnapshotRetention:     time.Duration(getEnvAsInt("SNAPSHOT_RETENTION_DAYS", DefaultSnapshotRetentionDays)) * 24 * time.Hour,
		ScoringMaxAttempts:    getEnvAsInt("SCORING_MAX_ATTEMPTS", DefaultScoringMaxAttempts),
		ScoringLeaseTTL:       getEnvAsDuration("SCORING_LEASE_TTL", 10*time.Minute),
		IngestInterval:        getEnvAsDuration("INGEST_INTERVAL", time.Hour),
		EnableScheduler:       getEnvAsBool("ENABLE_SCHEDULER", true),
		ScraperBaseURL:        strings.TrimRight(getEnv("SCRAPER_BASE_URL", DefaultScraperBaseURL), "/"),
		ScraperRequestsPerSec: getEnvAsFloat("SCRAPER_REQUESTS_PER_SECOND", DefaultScraperRequestsPerSecond),
		ScraperTimeout:        getEnvAsDuration("SCRAPER_TIMEOUT", 15*time.Second),

		TwitchClientID:     getEnv("TWITCH_CLIENT_ID", ""),
		TwitchClientSecret: getEnv("TWITCH_CLIENT_SECRET", ""),
		DiscordWebhookURL:  getEnv("DISCORD_WEBHOOK_URL", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("invalid STORAGE value %q: must be %s or %s", cfg.Storage, StoragePostgres, StorageMemory)
	}

	loc, err := time.LoadLocation(getEnv("TIMEZONE", DefaultTimezone))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE value: %w", err)
	}
	cfg.Location = loc

	hour, minute, err := parseClock(getEnv("SCORING_TIME", DefaultScoringTime))
	if err != nil {
		return nil, fmt.Errorf("invalid SCORING_TIME value: %w", err)
	}
	cfg.ScoringHour, cfg.ScoringMinute = hour, minute

	if cfg.ScoringMaxAttempts < 1 {
		return nil, fmt.Errorf("SCORING_MAX_ATTEMPTS must be at least 1")
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// HasTwitchCredentials reports whether Helix enrichment can be enabled
func (c *Config) HasTwitchCredentials() bool {
	return c.TwitchClientID != "" && c.TwitchClientSecret != ""
}

// parseClock parses "HH:MM" into hour and minute
func parseClock(s string) (int, int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}
