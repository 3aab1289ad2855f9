package ocp

import (
	"strings"
)

// ISpecification 判断单个元素是否满足条件
type ISpecification[T any] interface {
	IsSatisfied(item *T) bool
}

// IKeyed 可选接口：提供稳定的条件标识，CachedFilter 据此缓存结果
type IKeyed interface {
	Key() string
}

// SpecFunc 将普通函数适配为 ISpecification
type SpecFunc[T any] func(item *T) bool

func (f SpecFunc[T]) IsSatisfied(item *T) bool { return f(item) }

// ColorSpecification 按颜色筛选
type ColorSpecification struct {
	Color Color
}

func (s ColorSpecification) IsSatisfied(item *Product) bool { return item.Color == s.Color }
func (s ColorSpecification) Key() string                    { return "color=" + s.Color.String() }

// SizeSpecification 按尺寸筛选
type SizeSpecification struct {
	Size Size
}

func (s SizeSpecification) IsSatisfied(item *Product) bool { return item.Size == s.Size }
func (s SizeSpecification) Key() string                    { return "size=" + s.Size.String() }

// AndSpecification 所有条件同时满足；空条件集恒为真
type AndSpecification[T any] struct {
	Specs []ISpecification[T]
}

// And 组合多个条件
func And[T any](specs ...ISpecification[T]) AndSpecification[T] {
	return AndSpecification[T]{Specs: specs}
}

func (s AndSpecification[T]) IsSatisfied(item *T) bool {
	for _, spec := range s.Specs {
		if !spec.IsSatisfied(item) {
			return false
		}
	}
	return true
}

func (s AndSpecification[T]) Key() string { return joinKeys("and", s.Specs) }

// OrSpecification 任一条件满足；空条件集恒为假
type OrSpecification[T any] struct {
	Specs []ISpecification[T]
}

// Or 组合多个条件
func Or[T any](specs ...ISpecification[T]) OrSpecification[T] {
	return OrSpecification[T]{Specs: specs}
}

func (s OrSpecification[T]) IsSatisfied(item *T) bool {
	for _, spec := range s.Specs {
		if spec.IsSatisfied(item) {
			return true
		}
	}
	return false
}

func (s OrSpecification[T]) Key() string { return joinKeys("or", s.Specs) }

// NotSpecification 条件取反
type NotSpecification[T any] struct {
	Spec ISpecification[T]
}

// Not 取反
func Not[T any](spec ISpecification[T]) NotSpecification[T] {
	return NotSpecification[T]{Spec: spec}
}

func (s NotSpecification[T]) IsSatisfied(item *T) bool { return !s.Spec.IsSatisfied(item) }

func (s NotSpecification[T]) Key() string {
	return joinKeys("not", []ISpecification[T]{s.Spec})
}

// joinKeys 任一子条件不可缓存时返回空串
func joinKeys[T any](op string, specs []ISpecification[T]) string {
	parts := make([]string, 0, len(specs))
	for _, spec := range specs {
		k, ok := spec.(IKeyed)
		if !ok || k.Key() == "" {
			return ""
		}
		parts = append(parts, k.Key())
	}
	return op + "(" + strings.Join(parts, ",") + ")"
}
