package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Event[T] binds a topic name to its payload type so publishers and
// subscribers agree on the wire format at compile time.
type Event[T any] struct {
	name        string
	description string
}

var (
	eventsMu sync.RWMutex
	events   = map[string]string{}
)

// NewEvent defines a typed event and records it in the event catalogue.
// Defining the same topic twice panics, since it is a programming error.
func NewEvent[T any](name, description string) Event[T] {
	eventsMu.Lock()
	defer eventsMu.Unlock()
	if _, exists := events[name]; exists {
		panic(fmt.Sprintf("pubsub: event %q defined twice", name))
	}
	events[name] = description
	return Event[T]{name: name, description: description}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.name
}

// Description returns the human readable description of the event.
func (e Event[T]) Description() string {
	return e.description
}

// Catalogue returns a copy of every defined topic and its description.
func Catalogue() map[string]string {
	eventsMu.RLock()
	defer eventsMu.RUnlock()
	out := make(map[string]string, len(events))
	for k, v := range events {
		out[k] = v
	}
	return out
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", event.Name(), err)
	}

	return p.Publish(ctx, Message{
		Topic:   event.Name(),
		Payload: data,
	})
}

// Subscribe registers a handler that receives decoded payloads of event.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], handler func(ctx context.Context, payload T) error) error {
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", event.Name(), err)
		}
		return handler(ctx, payload)
	})
}
