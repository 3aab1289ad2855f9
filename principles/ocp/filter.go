package ocp

import (
	"context"
	"fmt"
	"strings"

	"gosolid/cache"
	"gosolid/logging"
)

// IFilter 按条件筛选元素，结果保持输入顺序
type IFilter[T any] interface {
	Filter(items []*T, spec ISpecification[T]) []*T
}

// BetterFilter 通用筛选器：新增条件无需修改它
type BetterFilter[T any] struct{}

func (BetterFilter[T]) Filter(items []*T, spec ISpecification[T]) []*T {
	result := make([]*T, 0, len(items))
	for _, item := range items {
		if spec.IsSatisfied(item) {
			result = append(result, item)
		}
	}
	return result
}

// CachedFilter 装饰任意 IFilter，对可标识的条件与可标识的元素缓存结果
//
// 缓存键由条件 Key 与每个元素的指针及其 Key 组成，元素被原地修改后键随之改变，
// 不会命中旧结果。条件或任一元素不可标识时直接透传给 inner。
type CachedFilter[T any] struct {
	inner  IFilter[T]
	cache  *cache.Cache[string, []*T]
	logger logging.Logger
}

// NewCachedFilter 创建带缓存的筛选器
func NewCachedFilter[T any](inner IFilter[T], cfg cache.Config) *CachedFilter[T] {
	if cfg.Name == "" {
		cfg.Name = "ocp.filter"
	}
	return &CachedFilter[T]{
		inner:  inner,
		cache:  cache.New[string, []*T](cfg),
		logger: logging.ComponentLogger("ocp.filter"),
	}
}

func (f *CachedFilter[T]) Filter(items []*T, spec ISpecification[T]) []*T {
	keyed, ok := spec.(IKeyed)
	if !ok || keyed.Key() == "" {
		return f.inner.Filter(items, spec)
	}
	contents, ok := itemsKey(items)
	if !ok {
		return f.inner.Filter(items, spec)
	}

	loaded := false
	result, _ := f.cache.GetOrLoad(keyed.Key()+"|"+contents, func() ([]*T, error) {
		loaded = true
		return f.inner.Filter(items, spec), nil
	})
	if !loaded {
		f.logger.Debug(context.Background(), "filter cache hit", logging.String("spec", keyed.Key()))
	}
	return append([]*T(nil), result...)
}

// String 返回缓存容量与命中率摘要
func (f *CachedFilter[T]) String() string {
	return f.cache.String()
}

func itemsKey[T any](items []*T) (string, bool) {
	var sb strings.Builder
	for _, item := range items {
		k, ok := any(item).(IKeyed)
		if !ok || k.Key() == "" {
			return "", false
		}
		fmt.Fprintf(&sb, "%p=%s;", item, k.Key())
	}
	return sb.String(), true
}

var (
	_ IFilter[Product] = BetterFilter[Product]{}
	_ IFilter[Product] = (*CachedFilter[Product])(nil)
)
