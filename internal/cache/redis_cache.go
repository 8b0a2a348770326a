package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions holds both client‐tuning and operation‐level settings.
type RedisOptions struct {
	Addr            string        `env:"REDIS_ADDR"`
	Password        string        `env:"REDIS_PASSWORD"`
	DB              int           `env:"REDIS_DB" env-default:"0"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" env-default:"20"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
	MaxRetries      int           `env:"REDIS_MAX_RETRIES" env-default:"3"`
	MinRetryBackoff time.Duration `env:"REDIS_MIN_RETRY_BACKOFF" env-default:"8ms"`
	MaxRetryBackoff time.Duration `env:"REDIS_MAX_RETRY_BACKOFF" env-default:"512ms"`
	OpTimeout       time.Duration `env:"REDIS_OP_TIMEOUT" env-default:"100ms"`
}

// NewRedisClient builds a client from opts.
func NewRedisClient(opts *RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:            opts.Addr,
		Password:        opts.Password,
		DB:              opts.DB,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		MaxRetries:      opts.MaxRetries,
		MinRetryBackoff: opts.MinRetryBackoff,
		MaxRetryBackoff: opts.MaxRetryBackoff,
	})
}

// RedisCache stores JSON-encoded values.
type RedisCache[V any] struct {
	client    *redis.Client
	opTimeout time.Duration
}

var _ Cache[int] = (*RedisCache[int])(nil)

// NewRedisCache constructs a cache that owns its client.
func NewRedisCache[V any](opts *RedisOptions) *RedisCache[V] {
	return NewRedisCacheFromClient[V](NewRedisClient(opts), opts.OpTimeout)
}

// NewRedisCacheFromClient shares an existing client between typed caches.
func NewRedisCacheFromClient[V any](client *redis.Client, opTimeout time.Duration) *RedisCache[V] {
	if opTimeout <= 0 {
		opTimeout = 50 * time.Millisecond
	}
	return &RedisCache[V]{client: client, opTimeout: opTimeout}
}

// Close cleans up underlying connections.
func (r *RedisCache[V]) Close() error {
	return r.client.Close()
}

func (r *RedisCache[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, ErrCacheMiss
	}
	if err != nil {
		return zero, err
	}

	var val V
	if err := json.Unmarshal(data, &val); err != nil {
		return zero, err
	}
	return val, nil
}

func (r *RedisCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	if ttl < 0 {
		ttl = 0
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *RedisCache[V]) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.client.Del(ctx, key).Err()
}
