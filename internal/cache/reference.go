// Package cache holds the redis-backed payload cache for the two catalog
// actions. The catalogs change only when an external import runs, but the
// client re-downloads both on every connect, so the encoded payloads are
// kept hot for a configurable TTL.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Reference caches encoded catalog payloads under fixed keys. A nil
// *Reference (or one built without a redis client) is valid and always
// misses, so callers never need an availability check.
type Reference struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns a Reference over the given client. client may be nil when
// redis is unavailable; the cache then degrades to a pass-through.
func New(client *redis.Client, ttl time.Duration) *Reference {
	return &Reference{rdb: client, ttl: ttl}
}

// Get returns the cached payload for key and whether it was present.
// Backend errors count as misses.
func (r *Reference) Get(ctx context.Context, key string) (string, bool) {
	if r == nil || r.rdb == nil {
		return "", false
	}
	v, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: get %s failed: %v", key, err)
		}
		return "", false
	}
	return v, true
}

// Set stores the payload under key for the configured TTL. Failures are
// logged and ignored; the caller already has the payload.
func (r *Reference) Set(ctx context.Context, key, payload string) {
	if r == nil || r.rdb == nil {
		return
	}
	if err := r.rdb.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		log.Printf("cache: set %s failed: %v", key, err)
	}
}
