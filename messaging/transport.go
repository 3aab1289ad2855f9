package messaging

import (
	"context"
)

// IPublisher 只负责发送消息
type IPublisher interface {
	Publish(ctx context.Context, message IMessage) error
	Close() error
}

// ISubscriber 只负责注册处理器
type ISubscriber interface {
	// Subscribe 注册处理器，messageType 为 "*" 时接收所有类型
	Subscribe(messageType string, handler IMessageHandler) error
}

// Transport 完整的进程内传输：发送 + 订阅 + 生命周期
type Transport interface {
	IPublisher
	ISubscriber
	Start(ctx context.Context) error
	Stats() TransportStats
}

// TransportStats 传输层统计信息
type TransportStats struct {
	Running      bool     `json:"running"`
	HandlerCount int      `json:"handler_count"`
	MessageTypes []string `json:"message_types"`
	Published    int64    `json:"published"`
}

// WildcardType 订阅所有消息类型
const WildcardType = "*"
