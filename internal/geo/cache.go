package geo

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
)

// Cache stores geocoding responses; lookups for the same place are
// frequent enough during the booking flow to be worth 30 minutes.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type RedisCache struct {
	client *redis.Client
	log    *logger.Logger
}

func NewRedisCache(client *redis.Client, log *logger.Logger) *RedisCache {
	return &RedisCache{client: client, log: log}
}

// Get is best-effort: a Redis failure reads as a miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("Geo cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return value, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Warn("Geo cache write failed", "key", key, "error", err)
	}
}

// NoopCache disables caching for local development without Redis.
type NoopCache struct{}

func (NoopCache) Get(ctx context.Context, key string) ([]byte, bool)                   { return nil, false }
func (NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {}
