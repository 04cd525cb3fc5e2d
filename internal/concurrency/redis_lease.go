package concurrency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only if it still carries our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLeaser implements Leaser with SET NX PX so overlapping runs on
// different instances exclude each other
type RedisLeaser struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisLeaser creates a RedisLeaser. Keys are namespaced with prefix.
func NewRedisLeaser(client redis.UniversalClient, prefix string) *RedisLeaser {
	return &RedisLeaser{client: client, prefix: prefix}
}

// NewRedisClient parses a redis:// URL and pings the server
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// TryAcquire sets the lease key if absent
func (l *RedisLeaser) TryAcquire(ctx context.Context, key string, ttl time.Duration) (Lease, error) {
	fullKey := l.prefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lease %s: %w", key, err)
	}
	if !ok {
		return nil, ErrLeaseHeld
	}
	return &redisLease{client: l.client, key: key, fullKey: fullKey, token: token}, nil
}

type redisLease struct {
	client  redis.UniversalClient
	key     string
	fullKey string
	token   string
}

func (l *redisLease) Key() string {
	return l.key
}

// Release deletes the key if this lease still owns it. A lease that already
// expired and was taken by someone else is left alone.
func (l *redisLease) Release(ctx context.Context) error {
	err := releaseScript.Run(ctx, l.client, []string{l.fullKey}, l.token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to release lease %s: %w", l.key, err)
	}
	return nil
}
