package cache

import (
	"context"
	"time"
)

// Cache defines the interface for cache implementations
type Cache interface {
	// Get retrieves a value from the cache
	Get(ctx context.Context, key string) (interface{}, bool)
	// Set stores a value in the cache with an expiration
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration)
	// Delete removes a value from the cache
	Delete(ctx context.Context, key string)
	// Flush removes all values from the cache
	Flush(ctx context.Context)
}
