package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/catalogsync/backend/internal/domain/integration"
)

// catalogListKey is the single cache key for the remote catalog listing.
// The listing takes no arguments, so one key covers every caller.
const catalogListKey = "catalog:items"

// RedisCatalogCache caches the remote catalog listing in Redis
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCatalogCache creates a cache backed by an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisCatalogCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCatalogCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCatalogCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetItems returns the cached catalog listing. The second return value is
// false on a cache miss.
func (c *RedisCatalogCache) GetItems(ctx context.Context) ([]integration.CatalogItem, bool, error) {
	data, err := c.client.Get(ctx, catalogListKey).Bytes()
	if err == redis.Nil {
		c.logger.Debug("Cache miss for catalog listing")
		return nil, false, nil
	}
	if err != nil {
		c.logger.Error("Failed to get catalog listing from cache", zap.Error(err))
		return nil, false, fmt.Errorf("failed to get catalog listing from cache: %w", err)
	}

	var items []integration.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Error("Failed to unmarshal cached catalog listing", zap.Error(err))
		// Delete corrupted cache entry
		_ = c.client.Del(ctx, catalogListKey)
		return nil, false, fmt.Errorf("failed to unmarshal catalog listing: %w", err)
	}

	c.logger.Debug("Cache hit for catalog listing", zap.Int("item_count", len(items)))
	return items, true, nil
}

// SetItems stores the catalog listing in cache with the configured TTL
func (c *RedisCatalogCache) SetItems(ctx context.Context, items []integration.CatalogItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog listing: %w", err)
	}

	if err := c.client.Set(ctx, catalogListKey, data, c.ttl).Err(); err != nil {
		c.logger.Error("Failed to set catalog listing in cache", zap.Error(err))
		return fmt.Errorf("failed to set catalog listing in cache: %w", err)
	}

	c.logger.Debug("Cached catalog listing",
		zap.Int("item_count", len(items)),
		zap.Duration("ttl", c.ttl))
	return nil
}

// Invalidate removes the cached listing
func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogListKey).Err(); err != nil {
		c.logger.Error("Failed to invalidate catalog listing cache", zap.Error(err))
		return fmt.Errorf("failed to invalidate catalog listing cache: %w", err)
	}
	return nil
}
