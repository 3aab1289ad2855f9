package redisstreams

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gosolid/errors"
	"gosolid/logging"
	"gosolid/messaging"
)

type fakeClient struct {
	added  []*redis.XAddArgs
	err    error
	closed bool
}

func (f *fakeClient) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.added = append(f.added, a)
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	return redis.NewStringResult("1-0", nil)
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func TestEncodeMessage(t *testing.T) {
	ts := time.Unix(0, 1700000000000000000)
	msg := &messaging.Message{
		ID:        "msg-1",
		Type:      "fax.document",
		Timestamp: ts,
		Payload:   map[string]any{"title": "Document"},
		Metadata:  map[string]any{"device": "fax-01"},
	}

	values, err := encodeMessage(msg)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"id":        "msg-1",
		"type":      "fax.document",
		"timestamp": ts.UnixNano(),
		"payload":   `{"title":"Document"}`,
		"metadata":  `{"device":"fax-01"}`,
	}, values)

	_, err = encodeMessage(messaging.NewMessage("fax.document", make(chan int)))
	assert.Error(t, err)
}

func TestPublisher_Publish(t *testing.T) {
	fc := &fakeClient{}
	p := newPublisher(Config{StreamPrefix: "office:", MaxLen: 100, Logger: logging.NewNoopLogger()}, fc, true)

	msg := messaging.NewMessage("fax.document", map[string]any{"title": "Document"})
	require.NoError(t, p.Publish(context.Background(), msg))

	require.Len(t, fc.added, 1)
	assert.Equal(t, "office:fax.document", fc.added[0].Stream)
	assert.Equal(t, int64(100), fc.added[0].MaxLen)
	assert.True(t, fc.added[0].Approx)
	assert.Equal(t, msg.ID, fc.added[0].Values.(map[string]any)["id"])

	require.NoError(t, p.Close())
	assert.True(t, fc.closed)
}

func TestPublisher_PublishError(t *testing.T) {
	fc := &fakeClient{err: errors.New("connection refused")}
	p := newPublisher(Config{Logger: logging.NewNoopLogger()}, fc, false)

	err := p.Publish(context.Background(), messaging.NewMessage("fax.document", nil))
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrCodeQueue))

	// 非自建客户端不关闭
	require.NoError(t, p.Close())
	assert.False(t, fc.closed)

	assert.Error(t, p.Publish(context.Background(), nil))
}

func TestNewPublisher_RequiresAddr(t *testing.T) {
	_, err := NewPublisher(Config{})
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrCodeConfig))
}
