package label

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/laurel/pkg/models"
	"github.com/Ramsey-B/laurel/pkg/redis"
)

// DefaultCacheTTL bounds how stale a cached label can get. Writes to the
// source records invalidate eagerly, so the TTL is a backstop.
const DefaultCacheTTL = 15 * time.Minute

// CacheStore is the subset of the Redis client the cache needs
type CacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DelPattern(ctx context.Context, pattern string) error
}

// Cache stores assembled labels in Redis keyed by the full assembly input
// identity. A nil Cache is valid and disables caching.
type Cache struct {
	store  CacheStore
	ttl    time.Duration
	logger ectologger.Logger
}

// NewCache creates a label cache. A zero ttl falls back to DefaultCacheTTL.
func NewCache(store CacheStore, ttl time.Duration, logger ectologger.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(tenantID, productID, batchID string, variant models.LabelVariant, targetCountry string) string {
	return fmt.Sprintf("label:%s:%s:%s:%s:%s", tenantID, productID, batchID, variant, targetCountry)
}

// Get returns the cached result for an assembly identity, or nil on miss.
// Redis failures degrade to a miss; the pipeline recomputes.
func (c *Cache) Get(ctx context.Context, tenantID, productID, batchID string, variant models.LabelVariant, targetCountry string) *BuildResult {
	if c == nil || c.store == nil {
		return nil
	}

	raw, err := c.store.Get(ctx, cacheKey(tenantID, productID, batchID, variant, targetCountry))
	if err != nil {
		if !redis.IsNil(err) {
			c.logger.WithContext(ctx).WithError(err).Warn("Label cache read failed")
		}
		return nil
	}

	var result BuildResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		c.logger.WithContext(ctx).WithError(err).Warn("Failed to decode cached label")
		return nil
	}
	return &result
}

// Put stores an assembled result. Failures are logged and ignored.
func (c *Cache) Put(ctx context.Context, tenantID, productID, batchID string, variant models.LabelVariant, targetCountry string, result *BuildResult) {
	if c == nil || c.store == nil || result == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		c.logger.WithContext(ctx).WithError(err).Warn("Failed to encode label for cache")
		return
	}

	key := cacheKey(tenantID, productID, batchID, variant, targetCountry)
	if err := c.store.Set(ctx, key, string(data), c.ttl); err != nil {
		c.logger.WithContext(ctx).WithError(err).Warn("Label cache write failed")
	}
}

// InvalidateProduct drops every cached label for one product, across all
// batches, variants and countries
func (c *Cache) InvalidateProduct(ctx context.Context, tenantID, productID string) {
	if c == nil || c.store == nil {
		return
	}
	pattern := fmt.Sprintf("label:%s:%s:*", tenantID, productID)
	if err := c.store.DelPattern(ctx, pattern); err != nil {
		c.logger.WithContext(ctx).WithError(err).Warn("Label cache invalidation failed")
	}
}

// InvalidateTenant drops every cached label for a tenant. Used when the
// label profile changes, since the profile feeds every label's URL.
func (c *Cache) InvalidateTenant(ctx context.Context, tenantID string) {
	if c == nil || c.store == nil {
		return
	}
	pattern := fmt.Sprintf("label:%s:*", tenantID)
	if err := c.store.DelPattern(ctx, pattern); err != nil {
		c.logger.WithContext(ctx).WithError(err).Warn("Label cache invalidation failed")
	}
}
