package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cataloghub/backend/internal/domain/catalog"
	"github.com/cataloghub/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no catalog snapshot is cached
var ErrCacheMiss = errors.New("catalog snapshot not cached")

const catalogSnapshotKey = "catalog:snapshot"

// RedisCatalogCache caches the full catalog snapshot in Redis. The catalog
// is small and always read whole, so a single JSON value is enough.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCatalogCache connects to Redis and returns a catalog cache
func NewRedisCatalogCache(cfg *config.RedisConfig, ttl time.Duration) (*RedisCatalogCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCatalogCache{client: client, ttl: ttl}, nil
}

// NewRedisCatalogCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisCatalogCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, ttl: ttl}
}

// Get returns the cached catalog snapshot, or ErrCacheMiss when absent
func (c *RedisCatalogCache) Get(ctx context.Context) ([]catalog.CanonicalProduct, error) {
	payload, err := c.client.Get(ctx, catalogSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read catalog snapshot: %w", err)
	}

	var products []catalog.CanonicalProduct
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog snapshot: %w", err)
	}
	return products, nil
}

// Set stores the catalog snapshot with the configured TTL
func (c *RedisCatalogCache) Set(ctx context.Context, products []catalog.CanonicalProduct) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode catalog snapshot: %w", err)
	}

	if err := c.client.Set(ctx, catalogSnapshotKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write catalog snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the cached snapshot. Called after every catalog replace.
func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogSnapshotKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog snapshot: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisCatalogCache) Close() error {
	return c.client.Close()
}
