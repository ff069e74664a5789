package repositories

import (
	"context"
	"errors"
	"time"

	"rentsight-backend/internal/models"
	"rentsight-backend/pkg/cache"
	"rentsight-backend/pkg/metrics"
)

type searchCache struct {
	ops cache.CacheOperations
}

// NewSearchCache builds a SearchCache over the key-value store.
func NewSearchCache(ops cache.CacheOperations) SearchCache {
	return &searchCache{ops: ops}
}

func (c *searchCache) GetPage(ctx context.Context, key string) (*models.PropertiesPage, error) {
	var page models.PropertiesPage
	if err := c.ops.Get(ctx, key, &page); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			metrics.CacheMissesTotal.Inc()
			return nil, nil
		}
		return nil, err
	}
	metrics.CacheHitsTotal.Inc()
	return &page, nil
}

func (c *searchCache) SetPage(ctx context.Context, key string, page *models.PropertiesPage, expiration time.Duration) error {
	return c.ops.Set(ctx, key, page, expiration)
}
