package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheMemory(t *testing.T) {
	c, err := NewCache[string](Config{Backend: MemoryBackend})
	require.NoError(t, err)
	m, ok := c.(*MemoryCache[string])
	require.True(t, ok, "expected *MemoryCache[string]")
	defer m.Stop()

	ctx := context.Background()
	assert.NoError(t, m.Set(ctx, "foo", "bar", 0))
	v, err := m.Get(ctx, "foo")
	assert.NoError(t, err)
	assert.Equal(t, "bar", v)

	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestNewCacheDefaultsToMemory(t *testing.T) {
	c, err := NewCache[int](Config{})
	require.NoError(t, err)
	_, ok := c.(*MemoryCache[int])
	assert.True(t, ok)
}

func TestNewCacheRedis(t *testing.T) {
	s := miniredis.RunT(t)

	c, err := NewCache[string](Config{
		Backend: RedisBackend,
		Redis:   RedisOptions{Addr: s.Addr(), OpTimeout: 100 * time.Millisecond},
	})
	require.NoError(t, err)
	r, ok := c.(*RedisCache[string])
	require.True(t, ok, "expected *RedisCache[string]")
	defer r.Close()

	ctx := context.Background()
	assert.NoError(t, r.Set(ctx, "foo", "baz", 0))
	v, err := r.Get(ctx, "foo")
	assert.NoError(t, err)
	assert.Equal(t, "baz", v)
}

func TestNewCacheErrors(t *testing.T) {
	_, err := NewCache[int](Config{Backend: "something-else"})
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, err = NewCache[int](Config{Backend: RedisBackend})
	assert.ErrorIs(t, err, ErrMissingRedisOpt)
}

func TestWithPrefix(t *testing.T) {
	mc := NewMemoryCacheWithOptions[string](4, 0)
	defer mc.Stop()
	ctx := context.Background()

	drafts := WithPrefix[string](mc, "wizard:draft:")
	odds := WithPrefix[string](mc, "payout:odds:")

	require.NoError(t, drafts.Set(ctx, "1", "draft", 0))
	require.NoError(t, odds.Set(ctx, "1", "odds", 0))

	v, err := drafts.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "draft", v)

	raw, err := mc.Get(ctx, "payout:odds:1")
	require.NoError(t, err)
	assert.Equal(t, "odds", raw)

	require.NoError(t, drafts.Delete(ctx, "1"))
	_, err = drafts.Get(ctx, "1")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = odds.Get(ctx, "1")
	assert.NoError(t, err)
}
