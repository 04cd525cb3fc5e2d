package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/osse101/SubRace_Go/internal/concurrency"
	"github.com/osse101/SubRace_Go/internal/config"
	"github.com/osse101/SubRace_Go/internal/database"
	"github.com/osse101/SubRace_Go/internal/database/memory"
	"github.com/osse101/SubRace_Go/internal/discord"
	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/ingest"
	"github.com/osse101/SubRace_Go/internal/leaderboard"
	"github.com/osse101/SubRace_Go/internal/prediction"
	"github.com/osse101/SubRace_Go/internal/scoring"
	"github.com/osse101/SubRace_Go/internal/scraper"
	"github.com/osse101/SubRace_Go/internal/sse"
	"github.com/osse101/SubRace_Go/internal/streamer"
	"github.com/osse101/SubRace_Go/internal/subs"
	"github.com/osse101/SubRace_Go/internal/twitch"
	"github.com/osse101/SubRace_Go/internal/user"
)

// Lease key namespace in redis
const redisLeasePrefix = "subrace:lease:"

// App is the wired application graph shared by the binaries
type App struct {
	DB    *pgxpool.Pool // nil on in-memory storage
	Redis *redis.Client // nil without REDIS_URL
	Repos *Repositories

	Events *sse.Hub

	Streamer    streamer.Service
	Ingest      ingest.Service
	Scoring     scoring.Service
	Subs        subs.Service
	User        user.Service
	Prediction  prediction.Service
	Leaderboard leaderboard.Service
}

// NewApp opens storage, applies migrations and builds every service.
// Call Close when done.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{}

	switch cfg.Storage {
	case config.StorageMemory:
		slog.Warn("Using in-memory storage, data is lost on restart")
		app.Repos = InMemoryRepositories(memory.NewStore())
	default:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = pool
		if err := database.Migrate(ctx, pool); err != nil {
			app.Close()
			return nil, err
		}
		app.Repos = InitializeRepositories(pool)
	}

	locks := concurrency.NewLockManager()
	var leaser concurrency.Leaser = concurrency.NewLocalLeaser(locks)
	if cfg.RedisURL != "" {
		client, err := concurrency.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Redis = client
		leaser = concurrency.NewRedisLeaser(client, redisLeasePrefix)
		slog.Info("Using redis leases for pipeline runs")
	}

	var profiles twitch.ProfileClient
	if cfg.HasTwitchCredentials() {
		helixClient, err := twitch.NewHelixClient(cfg.TwitchClientID, cfg.TwitchClientSecret)
		if err != nil {
			slog.Warn("Twitch profile sync disabled", "error", err)
		} else {
			profiles = helixClient
		}
	}
	app.Streamer = streamer.NewService(app.Repos.Streamer, profiles, streamer.DefaultRoster())

	sc := scraper.New(scraper.Config{
		BaseURL:           cfg.ScraperBaseURL,
		Timeout:           cfg.ScraperTimeout,
		RequestsPerSecond: cfg.ScraperRequestsPerSec,
	})
	app.Events = sse.NewHub()
	app.Events.Start()

	ingestSvc := ingest.NewService(app.Streamer, app.Repos.Snapshot, sc, leaser, ingest.Config{
		Retention: cfg.SnapshotRetention,
	})
	app.Ingest = sse.WrapIngest(ingestSvc, app.Events)

	app.Leaderboard = leaderboard.NewService(app.Repos.Leaderboard, 0)
	notifiers := []scoring.Notifier{
		scoring.NotifierFunc(func(ctx context.Context, day time.Time, summary *domain.ScoringSummary) error {
			app.Leaderboard.Invalidate(ctx)
			return nil
		}),
		sse.NewScoringNotifier(app.Events),
	}
	if cfg.DiscordWebhookURL != "" {
		announcer, err := discord.NewWebhookAnnouncer(cfg.DiscordWebhookURL)
		if err != nil {
			slog.Warn("Discord announcements disabled", "error", err)
		} else {
			notifiers = append(notifiers, announcer)
		}
	}
	app.Scoring = scoring.NewService(
		app.Repos.Streamer,
		app.Repos.Snapshot,
		app.Repos.Prediction,
		leaser,
		locks,
		scoring.MultiNotifier(notifiers...),
		scoring.Config{
			Location:    cfg.Location,
			MaxAttempts: cfg.ScoringMaxAttempts,
			LeaseTTL:    cfg.ScoringLeaseTTL,
		},
	)

	app.Subs = subs.NewService(app.Repos.Streamer, app.Repos.Snapshot, 0)
	app.User = user.NewService(app.Repos.User, app.Repos.Streamer)
	app.Prediction = prediction.NewService(app.Repos.Prediction, app.Repos.User, app.Repos.Streamer, cfg.Location)

	return app, nil
}

// Pinger returns the readiness check, nil on in-memory storage
func (a *App) Pinger() database.Pool {
	if a.DB == nil {
		return nil
	}
	return a.DB
}

// Close stops the event hub and releases the database pool and redis client
func (a *App) Close() {
	if a.Events != nil {
		a.Events.Stop()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			slog.Error(LogMsgRedisCloseFailed, "error", err)
		}
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
