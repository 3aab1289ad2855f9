// Package natsjetstream 提供基于 NATS JetStream 的只发送传输
package natsjetstream

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"time"

	"github.com/nats-io/nats.go"

	"gosolid/errors"
	"gosolid/logging"
	"gosolid/messaging"
)

// jetStream is the subset of nats.JetStreamContext the publisher needs.
type jetStream interface {
	Publish(subj string, data []byte, opts ...nats.PubOpt) (*nats.PubAck, error)
}

// Config configures the JetStream publisher.
type Config struct {
	URL           string
	Stream        string
	SubjectPrefix string
	Logger        logging.Logger
	Conn          *nats.Conn
}

// Publisher implements messaging.IPublisher on top of NATS JetStream.
type Publisher struct {
	cfg      Config
	logger   logging.Logger
	conn     *nats.Conn
	js       jetStream
	ownsConn bool
}

// NewPublisher connects (unless cfg.Conn is set) and makes sure the stream exists.
func NewPublisher(cfg Config) (*Publisher, error) {
	cfg = withDefaults(cfg)

	conn := cfg.Conn
	owns := false
	if conn == nil {
		if cfg.URL == "" {
			return nil, errors.NewError(errors.ErrCodeConfig, "nats url not configured")
		}
		c, err := nats.Connect(cfg.URL, nats.Name("gosolid"))
		if err != nil {
			return nil, errors.WrapError(err, errors.ErrCodeQueue, "connect nats")
		}
		conn = c
		owns = true
	}

	js, err := conn.JetStream()
	if err != nil {
		if owns {
			conn.Close()
		}
		return nil, errors.WrapError(err, errors.ErrCodeQueue, "open jetstream context")
	}
	if err := ensureStream(js, cfg); err != nil {
		if owns {
			conn.Close()
		}
		return nil, err
	}

	p := newPublisher(cfg, js)
	p.conn = conn
	p.ownsConn = owns
	return p, nil
}

func withDefaults(cfg Config) Config {
	if cfg.Stream == "" {
		cfg.Stream = "GOSOLID"
	}
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = "gosolid."
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.ComponentLogger("transport.nats")
	}
	return cfg
}

func newPublisher(cfg Config, js jetStream) *Publisher {
	cfg = withDefaults(cfg)
	return &Publisher{cfg: cfg, logger: cfg.Logger, js: js}
}

func ensureStream(js nats.JetStreamContext, cfg Config) error {
	_, err := js.StreamInfo(cfg.Stream)
	if err == nil {
		return nil
	}
	if !stdErrors.Is(err, nats.ErrStreamNotFound) {
		return errors.WrapError(err, errors.ErrCodeQueue, "lookup stream")
	}
	_, err = js.AddStream(&nats.StreamConfig{
		Name:     cfg.Stream,
		Subjects: []string{cfg.SubjectPrefix + ">"},
	})
	return errors.WrapError(err, errors.ErrCodeQueue, "create stream")
}

// Publish sends the message to SubjectPrefix + message type and waits for the ack.
func (p *Publisher) Publish(ctx context.Context, message messaging.IMessage) error {
	if message == nil {
		return errors.NewError(errors.ErrCodeInvalidInput, "message cannot be nil")
	}
	data, err := marshalMessage(message)
	if err != nil {
		return errors.WrapError(err, errors.ErrCodeQueue, "encode message")
	}

	subject := p.subjectName(message.GetType())
	ack, err := p.js.Publish(subject, data, nats.Context(ctx), nats.MsgId(message.GetID()))
	if err != nil {
		return errors.WrapError(err, errors.ErrCodeQueue, "jetstream publish")
	}
	fields := []logging.Field{
		logging.String("subject", subject),
		logging.String("message_id", message.GetID()),
	}
	if ack != nil {
		fields = append(fields, logging.String("stream", ack.Stream), logging.Any("seq", ack.Sequence))
	}
	p.logger.Debug(ctx, "message published", fields...)
	return nil
}

// Close drains the connection if this publisher opened it.
func (p *Publisher) Close() error {
	if !p.ownsConn || p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}

func (p *Publisher) subjectName(messageType string) string {
	return p.cfg.SubjectPrefix + messageType
}

type wireMessage struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
	Metadata  map[string]any  `json:"metadata"`
}

func marshalMessage(msg messaging.IMessage) ([]byte, error) {
	payload, err := json.Marshal(msg.GetPayload())
	if err != nil {
		return nil, err
	}
	metadata := msg.GetMetadata()
	if metadata == nil {
		metadata = make(map[string]any)
	}
	ts := msg.GetTimestamp()
	if ts.IsZero() {
		ts = time.Now()
	}
	return json.Marshal(wireMessage{ID: msg.GetID(), Type: msg.GetType(), Timestamp: ts.UnixNano(), Payload: payload, Metadata: metadata})
}

var _ messaging.IPublisher = (*Publisher)(nil)
