package semantic

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheLocalTier(t *testing.T) {
	t.Parallel()

	cache, err := NewCache(1, nil, nil)
	require.NoError(t, err)

	ctx := context.Background()
	cache.Add(ctx, "m", "  Hello World ", []float32{1, 2})

	v, ok := cache.Get(ctx, "m", "hello world")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2}, v)

	cache.Add(ctx, "m", "other", []float32{3})
	_, ok = cache.Get(ctx, "m", "hello world")
	assert.False(t, ok, "size-one cache should evict the older entry")
	assert.Equal(t, 1, cache.Len())
}

func TestCacheNilIsSafe(t *testing.T) {
	t.Parallel()

	var cache *Cache
	cache.Add(context.Background(), "m", "text", []float32{1})
	_, ok := cache.Get(context.Background(), "m", "text")
	assert.False(t, ok)
	assert.Zero(t, cache.Len())
}

func TestNewCacheDefaultsSize(t *testing.T) {
	t.Parallel()

	cache, err := NewCache(0, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, cache)
}

func TestRedisKey(t *testing.T) {
	t.Parallel()

	key := redisKey("text-embedding-004", "python developer")
	assert.True(t, strings.HasPrefix(key, "ats:emb:"))
	assert.Len(t, key, len("ats:emb:")+12)
	assert.NotEqual(t, key, redisKey("other-model", "python developer"))
	assert.Equal(t, key, redisKey("text-embedding-004", "python developer"))
}

func TestConnectRedisDisabled(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ConnectRedis(context.Background(), "", nil))
	assert.Nil(t, ConnectRedis(context.Background(), "not a url", nil))
}
