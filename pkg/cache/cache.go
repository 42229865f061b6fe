package cache

import (
	"context"
	"time"
)

// Cache is a byte-value cache with TTL. A nil Cache is valid and means
// caching is disabled.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
