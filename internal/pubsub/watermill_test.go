package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeting struct {
	Text string `json:"text"`
}

var testGreeting = NewEvent[greeting]("test.greeting", "A greeting used by tests")

func TestWatermillBridge_RoundTrip(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	err := bridge.Publish(ctx, Message{
		Topic:    "test.topic",
		Payload:  []byte(`{"hello":"world"}`),
		Metadata: map[string]string{"request_id": "req-123"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.JSONEq(t, `{"hello":"world"}`, string(msg.Payload))
		assert.Equal(t, "req-123", msg.Metadata["request_id"])
		assert.NotContains(t, msg.Metadata, metaKeyTopic)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestTypedEvent(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan greeting, 1)
	require.NoError(t, Subscribe(ctx, bridge, testGreeting, func(ctx context.Context, g greeting) error {
		got <- g
		return nil
	}))
	require.NoError(t, Publish(ctx, bridge, testGreeting, greeting{Text: "hola"}))

	select {
	case g := <-got:
		assert.Equal(t, "hola", g.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("typed event was not delivered")
	}

	assert.Equal(t, "A greeting used by tests", Catalogue()["test.greeting"])
	assert.Panics(t, func() { NewEvent[greeting]("test.greeting", "again") })
}
