// Package di 提供按类型注册与解析的最小依赖注入容器。
//
// 高层模块只声明自己需要的接口类型，由组装代码把具体实现以该接口注册进来：
//
//	c := di.New()
//	_ = c.RegisterAs((*dip.IRelationshipBrowser)(nil), relationships)
//	browser, err := di.ResolveAs[dip.IRelationshipBrowser](c)
package di

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"gosolid/errors"
)

// Container 依赖注入容器
type Container struct {
	services map[reflect.Type]any
	mutex    sync.RWMutex
}

// New 创建容器
func New() *Container {
	return &Container{
		services: make(map[reflect.Type]any),
	}
}

// RegisterAs 以接口类型注册服务，serviceType 形如 (*IFoo)(nil)
func (c *Container) RegisterAs(serviceType any, service any) error {
	if service == nil {
		return errors.NewError(errors.ErrCodeInvalidInput, "service cannot be nil")
	}
	t, err := keyOf(serviceType)
	if err != nil {
		return err
	}
	if t.Kind() == reflect.Interface && !reflect.TypeOf(service).Implements(t) {
		return errors.Newf(errors.ErrCodeInvalidInput, "%T does not implement %v", service, t)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.services[t] = service
	return nil
}

// Resolve 解析服务，serviceType 形如 (*IFoo)(nil) 或 (*Foo)(nil)
func (c *Container) Resolve(serviceType any) (any, error) {
	t, err := keyOf(serviceType)
	if err != nil {
		return nil, err
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	service, exists := c.services[t]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeNotFound, "service not found: %v", t)
	}
	return service, nil
}

// Names 返回已注册类型名（排序后），便于调试输出
func (c *Container) Names() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	names := make([]string, 0, len(c.services))
	for t := range c.services {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}

// ResolveAs 以类型参数解析服务并断言为 T
func ResolveAs[T any](c *Container) (T, error) {
	var zero T
	raw, err := c.Resolve((*T)(nil))
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, errors.Newf(errors.ErrCodeDependency, "registered %T is not %v", raw, reflect.TypeOf((*T)(nil)).Elem())
	}
	return v, nil
}

func keyOf(serviceType any) (reflect.Type, error) {
	if serviceType == nil {
		return nil, errors.NewError(errors.ErrCodeInvalidInput, "service type cannot be nil")
	}
	t := reflect.TypeOf(serviceType)
	if t.Kind() != reflect.Ptr {
		return nil, errors.NewError(errors.ErrCodeInvalidInput, fmt.Sprintf("service type must be a pointer, got %v", t))
	}
	return t.Elem(), nil
}
