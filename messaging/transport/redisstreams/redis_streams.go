// Package redisstreams 提供基于 Redis Streams 的只发送传输
//
// 每种消息类型写入独立的 stream（StreamPrefix + type），
// 消费方可自行以 consumer group 读取。
package redisstreams

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "gosolid/errors"
	"gosolid/logging"
	"gosolid/messaging"
)

// client captures the subset of go-redis commands we rely on (for easier testing).
type client interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Close() error
}

// Config describes how the Redis Streams publisher should connect/behave.
type Config struct {
	Client       redis.UniversalClient
	Addr         string
	Username     string
	Password     string
	DB           int
	StreamPrefix string
	// MaxLen 近似裁剪 stream 长度，0 表示不裁剪
	MaxLen int64
	Logger logging.Logger
}

// Publisher is a messaging.IPublisher backed by Redis Streams.
type Publisher struct {
	cfg       Config
	client    client
	ownClient bool
	logger    logging.Logger
}

// NewPublisher constructs a Redis Streams publisher.
func NewPublisher(cfg Config) (*Publisher, error) {
	if cfg.StreamPrefix == "" {
		cfg.StreamPrefix = "gosolid:"
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.ComponentLogger("transport.redisstreams")
	}

	var (
		cl  client
		own bool
	)
	if cfg.Client != nil {
		cl = cfg.Client
	} else {
		if cfg.Addr == "" {
			return nil, apperrors.NewError(apperrors.ErrCodeConfig, "redis address not configured")
		}
		cl = redis.NewClient(&redis.Options{Addr: cfg.Addr, Username: cfg.Username, Password: cfg.Password, DB: cfg.DB})
		own = true
	}

	return newPublisher(cfg, cl, own), nil
}

func newPublisher(cfg Config, cl client, own bool) *Publisher {
	return &Publisher{cfg: cfg, client: cl, ownClient: own, logger: cfg.Logger}
}

// Publish appends the message to its stream.
func (p *Publisher) Publish(ctx context.Context, message messaging.IMessage) error {
	if message == nil {
		return apperrors.NewError(apperrors.ErrCodeInvalidInput, "message cannot be nil")
	}
	values, err := encodeMessage(message)
	if err != nil {
		return apperrors.WrapError(err, apperrors.ErrCodeQueue, "encode message")
	}

	args := &redis.XAddArgs{
		Stream: p.streamName(message.GetType()),
		Values: values,
	}
	if p.cfg.MaxLen > 0 {
		args.MaxLen = p.cfg.MaxLen
		args.Approx = true
	}

	id, err := p.client.XAdd(ctx, args).Result()
	if err != nil {
		return apperrors.WrapError(err, apperrors.ErrCodeQueue, "redis XADD")
	}
	p.logger.Debug(ctx, "message published",
		logging.String("stream", args.Stream),
		logging.String("entry_id", id),
		logging.String("message_id", message.GetID()))
	return nil
}

// Close releases the client if this publisher created it.
func (p *Publisher) Close() error {
	if !p.ownClient {
		return nil
	}
	return p.client.Close()
}

func (p *Publisher) streamName(messageType string) string {
	return p.cfg.StreamPrefix + messageType
}

// encodeMessage payload 与 metadata 以 JSON 字符串存入 stream 字段
func encodeMessage(msg messaging.IMessage) (map[string]any, error) {
	payload, err := json.Marshal(msg.GetPayload())
	if err != nil {
		return nil, err
	}
	metadata, err := json.Marshal(msg.GetMetadata())
	if err != nil {
		return nil, err
	}
	ts := msg.GetTimestamp()
	if ts.IsZero() {
		ts = time.Now()
	}
	return map[string]any{
		"id":        msg.GetID(),
		"type":      msg.GetType(),
		"timestamp": ts.UnixNano(),
		"payload":   string(payload),
		"metadata":  string(metadata),
	}, nil
}

var _ messaging.IPublisher = (*Publisher)(nil)
