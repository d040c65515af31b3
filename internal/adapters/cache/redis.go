package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/product_catalog/internal/core/domain"
	"github.com/SscSPs/product_catalog/internal/core/ports/external"
	"github.com/go-redis/redis/v8"
)

// RedisCache is a RateCache shared by every instance pointing at the same Redis.
// Tables are stored as JSON arrays so their order survives the round trip.
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
}

// Ensure implementation matches interface
var _ external.RateCache = (*RedisCache)(nil)

// NewRedisCache creates a RedisCache from a redis:// URL.
func NewRedisCache(redisURL, keyPrefix string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	return NewRedisCacheWithClient(redis.NewClient(opts), keyPrefix), nil
}

// NewRedisCacheWithClient wraps an existing client.
func NewRedisCacheWithClient(client *redis.Client, keyPrefix string) *RedisCache {
	return &RedisCache{client: client, keyPrefix: keyPrefix}
}

// Ping checks connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connections.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Get returns the stored table, or false when the key does not exist (Redis expired it).
func (c *RedisCache) Get(ctx context.Context, key string) (domain.ConversionTable, bool, error) {
	val, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}

	var table domain.ConversionTable
	if err := json.Unmarshal(val, &table); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return table, true, nil
}

// Set stores table with a native Redis TTL.
func (c *RedisCache) Set(ctx context.Context, key string, table domain.ConversionTable, ttl time.Duration) error {
	if table == nil {
		table = domain.ConversionTable{}
	}
	val, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.keyPrefix+key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", key, err)
	}
	return nil
}
