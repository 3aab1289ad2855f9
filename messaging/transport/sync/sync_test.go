package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	msg "gosolid/messaging"
)

type incHandler struct{ n *int }

func (h incHandler) Handle(ctx context.Context, m msg.IMessage) error { *h.n++; return nil }
func (h incHandler) Type() string                                     { return "inc" }

func TestSyncTransport_PublishFlow(t *testing.T) {
	tpt := NewSyncTransport()
	require.NoError(t, tpt.Start(context.Background()))
	defer tpt.Close()

	var exact, all int
	require.NoError(t, tpt.Subscribe("T", incHandler{n: &exact}))
	require.NoError(t, tpt.Subscribe(msg.WildcardType, incHandler{n: &all}))

	require.NoError(t, tpt.Publish(context.Background(), &msg.Message{ID: "1", Type: "T"}))
	require.NoError(t, tpt.Publish(context.Background(), &msg.Message{ID: "2", Type: "other"}))

	assert.Equal(t, 1, exact)
	assert.Equal(t, 2, all)

	stats := tpt.Stats()
	assert.True(t, stats.Running)
	assert.Equal(t, 2, stats.HandlerCount)
	assert.Equal(t, []string{"*", "T"}, stats.MessageTypes)
	assert.Equal(t, int64(2), stats.Published)
}

func TestSyncTransport_NotRunning(t *testing.T) {
	tpt := NewSyncTransport()
	err := tpt.Publish(context.Background(), &msg.Message{ID: "x", Type: "T"})
	assert.Error(t, err)

	require.NoError(t, tpt.Start(context.Background()))
	assert.Error(t, tpt.Start(context.Background()), "重复启动应报错")
	require.NoError(t, tpt.Close())
	require.NoError(t, tpt.Close())
	assert.Error(t, tpt.Publish(context.Background(), &msg.Message{ID: "y", Type: "T"}))
}

func TestSyncTransport_HandlerErrorsJoined(t *testing.T) {
	tpt := NewSyncTransport()
	require.NoError(t, tpt.Start(context.Background()))

	boom := errors.New("boom")
	require.NoError(t, tpt.Subscribe("T", msg.HandlerFunc(func(ctx context.Context, m msg.IMessage) error { return boom })))

	err := tpt.Publish(context.Background(), &msg.Message{ID: "1", Type: "T"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestSyncTransport_NilArguments(t *testing.T) {
	tpt := NewSyncTransport()
	require.NoError(t, tpt.Start(context.Background()))

	assert.Error(t, tpt.Subscribe("T", nil))
	assert.Error(t, tpt.Publish(context.Background(), nil))
}
