package natsjetstream

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gosolid/errors"
	"gosolid/logging"
	"gosolid/messaging"
)

type published struct {
	subject string
	data    []byte
}

type fakeJetStream struct {
	sent []published
	err  error
}

func (f *fakeJetStream) Publish(subj string, data []byte, opts ...nats.PubOpt) (*nats.PubAck, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, published{subject: subj, data: data})
	return &nats.PubAck{Stream: "GOSOLID", Sequence: uint64(len(f.sent))}, nil
}

func decodeWire(t *testing.T, data []byte) wireMessage {
	t.Helper()
	var wire wireMessage
	require.NoError(t, json.Unmarshal(data, &wire))
	return wire
}

func TestMarshalMessage(t *testing.T) {
	ts := time.Unix(0, 1700000000000000000)
	msg := &messaging.Message{
		ID:        "msg-nats",
		Type:      "fax.document",
		Timestamp: ts,
		Payload:   map[string]any{"pages": 2},
		Metadata:  map[string]any{"device": "fax-01"},
	}
	data, err := marshalMessage(msg)
	require.NoError(t, err)

	wire := decodeWire(t, data)
	assert.Equal(t, "msg-nats", wire.ID)
	assert.Equal(t, "fax.document", wire.Type)
	assert.Equal(t, ts.UnixNano(), wire.Timestamp)
	assert.JSONEq(t, `{"pages":2}`, string(wire.Payload))
	assert.Equal(t, "fax-01", wire.Metadata["device"])

	_, err = marshalMessage(messaging.NewMessage("fax.document", make(chan int)))
	assert.Error(t, err)
}

func TestPublisher_Publish(t *testing.T) {
	js := &fakeJetStream{}
	p := newPublisher(Config{Logger: logging.NewNoopLogger()}, js)

	msg := messaging.NewMessage("fax.document", map[string]any{"title": "Document"})
	require.NoError(t, p.Publish(context.Background(), msg))

	require.Len(t, js.sent, 1)
	assert.Equal(t, "gosolid.fax.document", js.sent[0].subject)

	assert.Equal(t, msg.ID, decodeWire(t, js.sent[0].data).ID)

	// 未持有连接时 Close 为空操作
	assert.NoError(t, p.Close())
}

func TestPublisher_PublishError(t *testing.T) {
	p := newPublisher(Config{SubjectPrefix: "office.", Logger: logging.NewNoopLogger()}, &fakeJetStream{err: errors.New("no responders")})

	err := p.Publish(context.Background(), messaging.NewMessage("fax.document", nil))
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrCodeQueue))

	err = p.Publish(context.Background(), nil)
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrCodeInvalidInput))
}

func TestNewPublisher_RequiresURL(t *testing.T) {
	_, err := NewPublisher(Config{Logger: logging.NewNoopLogger()})
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrCodeConfig))
}
