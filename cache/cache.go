// Package cache 提供带命中统计的泛型 LRU 缓存
//
// 底层使用 hashicorp/golang-lru 的 expirable LRU，本包只补充命名、
// 默认容量与 Hits/Misses 统计。
package cache

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMaxSize 未配置容量时的默认条目上限
const DefaultMaxSize = 128

// Config 缓存配置
type Config struct {
	// Name 缓存名称（用于日志和统计）
	Name string

	// MaxSize 最大缓存条目数，<= 0 时使用 DefaultMaxSize
	MaxSize int

	// TTL 条目过期时间，0 表示永不过期
	TTL time.Duration
}

// CacheStats 缓存统计信息
type CacheStats struct {
	Hits   int64 // 缓存命中次数
	Misses int64 // 缓存未命中次数
	Size   int   // 当前条目数
}

// Cache 通用泛型缓存，并发安全
type Cache[K comparable, V any] struct {
	name    string
	maxSize int
	lru     *expirable.LRU[K, V]

	hits   atomic.Int64
	misses atomic.Int64
}

// New 创建新的缓存实例
func New[K comparable, V any](config Config) *Cache[K, V] {
	if config.Name == "" {
		config.Name = "unnamed"
	}
	if config.MaxSize <= 0 {
		config.MaxSize = DefaultMaxSize
	}

	return &Cache[K, V]{
		name:    config.Name,
		maxSize: config.MaxSize,
		lru:     expirable.NewLRU[K, V](config.MaxSize, nil, config.TTL),
	}
}

// Get 获取缓存值，found 表示找到且未过期
func (c *Cache[K, V]) Get(key K) (value V, found bool) {
	value, found = c.lru.Get(key)
	if found {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return value, found
}

// Set 设置缓存值，超过容量时驱逐最久未使用的条目
func (c *Cache[K, V]) Set(key K, value V) {
	c.lru.Add(key, value)
}

// GetOrLoad 未命中时调用 load 并写入缓存，load 返回错误时不缓存
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		var zero V
		return zero, err
	}
	c.Set(key, v)
	return v, nil
}

// Size 获取当前缓存条目数
func (c *Cache[K, V]) Size() int {
	return c.lru.Len()
}

// Stats 获取缓存统计信息（副本）
func (c *Cache[K, V]) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

// HitRate 获取缓存命中率
func (c *Cache[K, V]) HitRate() float64 {
	hits, misses := c.hits.Load(), c.misses.Load()
	if hits+misses == 0 {
		return 0
	}
	return float64(hits) / float64(hits+misses)
}

// String 返回缓存信息的字符串表示
func (c *Cache[K, V]) String() string {
	stats := c.Stats()
	return fmt.Sprintf("Cache[%s]: size=%d/%d, hits=%d, misses=%d, hit_rate=%.2f%%",
		c.name,
		stats.Size,
		c.maxSize,
		stats.Hits,
		stats.Misses,
		c.HitRate()*100,
	)
}
