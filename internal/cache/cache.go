package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var (
	ErrCacheMiss       = errors.New("cache: key not found")
	ErrUnknownBackend  = errors.New("cache: unknown backend")
	ErrMissingRedisOpt = errors.New("cache: redis backend requires redis options")
)

// Cache is our generic cache interface.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key, with TTL. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Config selects and tunes a backend.
type Config struct {
	Backend string `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
	Redis   RedisOptions
}

// NewCache builds a cache for cfg.Backend. Redis caches built this way own
// their client; use NewRedisCacheFromClient to share one.
func NewCache[V any](cfg Config) (Cache[V], error) {
	switch cfg.Backend {
	case "", MemoryBackend:
		return NewMemoryCache[V](), nil
	case RedisBackend:
		if cfg.Redis.Addr == "" {
			return nil, ErrMissingRedisOpt
		}
		return NewRedisCache[V](&cfg.Redis), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

type prefixed[V any] struct {
	next   Cache[V]
	prefix string
}

// WithPrefix namespaces every key of c, so several typed caches can share a
// redis database.
func WithPrefix[V any](c Cache[V], prefix string) Cache[V] {
	return &prefixed[V]{next: c, prefix: prefix}
}

func (p *prefixed[V]) Get(ctx context.Context, key string) (V, error) {
	return p.next.Get(ctx, p.prefix+key)
}

func (p *prefixed[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	return p.next.Set(ctx, p.prefix+key, value, ttl)
}

func (p *prefixed[V]) Delete(ctx context.Context, key string) error {
	return p.next.Delete(ctx, p.prefix+key)
}
