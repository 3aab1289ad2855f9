// Package sync 提供一个同步的消息传输实现
package sync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gosolid/messaging"
)

// SyncTransport 是一个同步的内存传输实现
// 它的 Publish 方法会立即在同一个 goroutine 中调用所有匹配的处理器
type SyncTransport struct {
	handlers  map[string][]messaging.IMessageHandler
	mutex     sync.RWMutex
	running   bool
	published int64
}

// NewSyncTransport 创建一个新的同步传输实例
func NewSyncTransport() *SyncTransport {
	return &SyncTransport{
		handlers: make(map[string][]messaging.IMessageHandler),
	}
}

// Publish 立即、同步地发布消息
func (t *SyncTransport) Publish(ctx context.Context, message messaging.IMessage) error {
	if message == nil {
		return fmt.Errorf("message cannot be nil")
	}

	t.mutex.Lock()
	if !t.running {
		t.mutex.Unlock()
		return fmt.Errorf("sync transport is not running")
	}
	t.published++
	exact := t.handlers[message.GetType()]
	wildcard := t.handlers[messaging.WildcardType]
	handlers := make([]messaging.IMessageHandler, 0, len(exact)+len(wildcard))
	handlers = append(handlers, exact...)
	handlers = append(handlers, wildcard...)
	t.mutex.Unlock()

	// 无人监听不是错误
	var errs []error
	for _, handler := range handlers {
		if err := handler.Handle(ctx, message); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("message handling completed with %d errors: %w", len(errs), errors.Join(errs...))
	}
	return nil
}

// Subscribe 订阅消息处理器
func (t *SyncTransport) Subscribe(messageType string, handler messaging.IMessageHandler) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.handlers[messageType] = append(t.handlers[messageType], handler)
	return nil
}

// Start 启动传输层
func (t *SyncTransport) Start(ctx context.Context) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.running {
		return fmt.Errorf("sync transport is already running")
	}
	t.running = true
	return nil
}

// Close 关闭传输层，重复关闭无副作用
func (t *SyncTransport) Close() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.running = false
	return nil
}

// Stats 返回统计信息
func (t *SyncTransport) Stats() messaging.TransportStats {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	handlerCount := 0
	messageTypes := make([]string, 0, len(t.handlers))
	for mt, h := range t.handlers {
		messageTypes = append(messageTypes, mt)
		handlerCount += len(h)
	}
	sort.Strings(messageTypes)

	return messaging.TransportStats{
		Running:      t.running,
		HandlerCount: handlerCount,
		MessageTypes: messageTypes,
		Published:    t.published,
	}
}

var _ messaging.Transport = (*SyncTransport)(nil)
