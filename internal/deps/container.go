package deps

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/joefazee/prognos/internal/cache"
	"github.com/joefazee/prognos/internal/logger"
	"github.com/joefazee/prognos/internal/sanitizer"
	"github.com/joefazee/prognos/internal/security"
)

// Container holds all shared dependencies
type Container struct {
	DB         *gorm.DB
	TokenMaker security.Maker
	Sanitizer  sanitizer.HTMLStripperer
	Logger     logger.Logger

	// Redis is nil unless the cache backend is redis
	Redis       *redis.Client
	cacheConfig cache.Config

	// Store repositories as interfaces to avoid imports between modules
	repositories map[string]interface{}
	services     map[string]interface{}
}

func NewContainer(db *gorm.DB, tokenMaker security.Maker, stripper sanitizer.HTMLStripperer, log logger.Logger, cacheConfig cache.Config) (*Container, error) {
	c := &Container{
		DB:           db,
		TokenMaker:   tokenMaker,
		Sanitizer:    stripper,
		Logger:       log,
		cacheConfig:  cacheConfig,
		repositories: make(map[string]interface{}),
		services:     make(map[string]interface{}),
	}

	switch cacheConfig.Backend {
	case "", cache.MemoryBackend:
	case cache.RedisBackend:
		if cacheConfig.Redis.Addr == "" {
			return nil, cache.ErrMissingRedisOpt
		}
		c.Redis = cache.NewRedisClient(&cacheConfig.Redis)
	default:
		return nil, fmt.Errorf("%w: %q", cache.ErrUnknownBackend, cacheConfig.Backend)
	}

	return c, nil
}

// NewCache builds a typed cache under prefix. Redis-backed caches share the
// container's client.
func NewCache[V any](c *Container, prefix string) cache.Cache[V] {
	if c.Redis == nil {
		return cache.NewMemoryCache[V]()
	}
	return cache.WithPrefix[V](cache.NewRedisCacheFromClient[V](c.Redis, c.cacheConfig.Redis.OpTimeout), prefix)
}

// Close releases the redis client, if any.
func (c *Container) Close() error {
	if c.Redis == nil {
		return nil
	}
	return c.Redis.Close()
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
