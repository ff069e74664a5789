package cache

import (
	"context"
	"time"
)

// CacheOperations is the key-value store contract consumed by the
// verification and search services. Every operation is individually atomic;
// nothing is promised across operations.
type CacheOperations interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
