package cache

import (
	"context"
	"time"
)

// Cache is the key/value store behind the catalog response cache.
// Values are JSON encoded; implementations: Redis in production, in-memory in tests.
type Cache interface {
	// Get decodes the value stored at key into dest.
	// found == false with a nil error is a plain miss and leaves dest untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Ping dùng cho health/readiness checks
	Ping(ctx context.Context) error
}
