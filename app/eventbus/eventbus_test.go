package eventbus

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRoundTrip(t *testing.T) {
	bus := NewInMemory(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := bus.Subscribe(ctx, "notification.created.v1.7")
	require.NoError(t, err)

	msg := message.NewMessage("", []byte(`{"id":1}`))
	require.NoError(t, bus.Publish("notification.created.v1.7", msg))
	assert.NotEmpty(t, msg.UUID, "publish assigns a message id")

	select {
	case got := <-messages:
		assert.Equal(t, msg.UUID, got.UUID)
		assert.JSONEq(t, `{"id":1}`, string(got.Payload))
		got.Ack()
	case <-time.After(time.Second):
		t.Fatal("message was not delivered")
	}
}
