package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCache_BasicOperations 测试基本操作
func TestCache_BasicOperations(t *testing.T) {
	cache := New[string, int](Config{
		Name:    "test",
		MaxSize: 100,
		TTL:     time.Minute,
	})

	cache.Set("key1", 100)
	value, found := cache.Get("key1")
	assert.True(t, found)
	assert.Equal(t, 100, value)

	_, found = cache.Get("nonexistent")
	assert.False(t, found)
}

// TestCache_TTLExpiry 测试条目过期
func TestCache_TTLExpiry(t *testing.T) {
	cache := New[string, int](Config{Name: "ttl", TTL: 20 * time.Millisecond})
	cache.Set("k", 1)

	assert.Eventually(t, func() bool {
		_, found := cache.Get("k")
		return !found
	}, time.Second, 10*time.Millisecond)
}

// TestCache_Update 测试更新操作
func TestCache_Update(t *testing.T) {
	cache := New[int64, string](Config{Name: "test", MaxSize: 100})

	cache.Set(1, "first")
	cache.Set(1, "second")

	value, found := cache.Get(1)
	require.True(t, found)
	assert.Equal(t, "second", value)
	assert.Equal(t, 1, cache.Size())
}

// TestCache_LRUEviction 测试超过容量时驱逐最久未使用条目
func TestCache_LRUEviction(t *testing.T) {
	cache := New[string, int](Config{Name: "lru", MaxSize: 2})

	cache.Set("a", 1)
	cache.Set("b", 2)
	_, _ = cache.Get("a") // a 变为最近使用
	cache.Set("c", 3)

	_, found := cache.Get("b")
	assert.False(t, found, "b 应被驱逐")
	_, found = cache.Get("a")
	assert.True(t, found)
	_, found = cache.Get("c")
	assert.True(t, found)
	assert.Equal(t, 2, cache.Size())
}

// TestCache_DefaultMaxSize 测试默认容量
func TestCache_DefaultMaxSize(t *testing.T) {
	cache := New[int, int](Config{})
	for i := 0; i < DefaultMaxSize+10; i++ {
		cache.Set(i, i)
	}
	assert.Equal(t, DefaultMaxSize, cache.Size())
}

// TestCache_GetOrLoad 测试加载与错误不缓存
func TestCache_GetOrLoad(t *testing.T) {
	cache := New[string, int](Config{Name: "load"})
	calls := 0
	load := func() (int, error) { calls++; return 42, nil }

	v, err := cache.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = cache.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)

	_, err = cache.GetOrLoad("bad", func() (int, error) { return 0, errors.New("boom") })
	require.Error(t, err)
	_, found := cache.Get("bad")
	assert.False(t, found)
}

// TestCache_Stats 测试统计与命中率
func TestCache_Stats(t *testing.T) {
	cache := New[string, int](Config{Name: "stats"})
	assert.Equal(t, float64(0), cache.HitRate())

	cache.Set("x", 1)
	_, _ = cache.Get("x")
	_, _ = cache.Get("y")

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
	assert.InDelta(t, 0.5, cache.HitRate(), 1e-9)
	assert.Equal(t, "Cache[stats]: size=1/128, hits=1, misses=1, hit_rate=50.00%", cache.String())
}
