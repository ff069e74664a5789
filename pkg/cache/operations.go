package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rentsight-backend/pkg/logger"
	"rentsight-backend/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

type redisCache struct {
	client *redis.Client
}

// NewRedisCache wraps a Redis client in the CacheOperations contract.
func NewRedisCache(client *redis.Client) CacheOperations {
	return &redisCache{client: client}
}

// store a value in the cache with the given key and expiration time.
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_marshal").Inc()
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return fmt.Errorf("failed to marshal value: %v", err)
	}
	err = c.client.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return err
	}
	return nil
}

// retrieve a value from the cache and unmarshal it into the provided destination.
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := c.client.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_unmarshal").Inc()
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return fmt.Errorf("failed to unmarshal value: %v", err)
	}
	return nil
}

// remove a key from the cache.
func (c *redisCache) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := c.client.Del(ctx, key).Err()
	metrics.RedisOperationDuration.WithLabelValues("delete").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("delete").Inc()
		logger.GlobalLogger.Errorf("failed to delete key %s: %v", key, err)
		return err
	}
	return nil
}

// check if a key exists in the cache.
func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	start := time.Now()
	count, err := c.client.Exists(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("exists").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("exists").Inc()
		logger.GlobalLogger.Errorf("failed to check existence of key %s: %v", key, err)
		return false, err
	}
	return count > 0, nil
}
