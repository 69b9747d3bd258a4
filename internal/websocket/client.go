package websocket

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/impacto/site/internal/carousel"
)

const (
	writeTimeout = 10 * time.Second
	readLimit    = 4096
)

// Client is one browser connection driving its own carousel sequencer.
// Only the latest rendered state is kept for delivery; a slow client skips
// intermediate slides instead of queueing them.
type Client struct {
	ID     string
	Widget string

	conn      *websocket.Conn
	seq       *carousel.Sequencer
	whitelist *typeWhitelist
	logger    *slog.Logger

	mu      sync.Mutex
	pending *ServerMessage
	wake    chan struct{}

	done      chan struct{}
	closeOnce sync.Once
}

func newClient(id, widget string, conn *websocket.Conn, wl *typeWhitelist, logger *slog.Logger) *Client {
	return &Client{
		ID:        id,
		Widget:    widget,
		conn:      conn,
		whitelist: wl,
		logger:    logger.With("client_id", id, "widget", widget),
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
}

// deliver replaces the pending message and wakes the writer. It never blocks,
// so it is safe to call from the sequencer's change callback.
func (c *Client) deliver(msg ServerMessage) {
	c.mu.Lock()
	c.pending = &msg
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

func (c *Client) take() *ServerMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg := c.pending
	c.pending = nil
	return msg
}

// Close stops the sequencer and the writer. The connection itself is closed
// by whoever owns the read loop.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		if c.seq != nil {
			c.seq.Close()
		}
		close(c.done)
	})
}

// Disconnect closes the underlying connection with the given status, which
// unblocks the read loop.
func (c *Client) Disconnect(code websocket.StatusCode, reason string) {
	if err := c.conn.Close(code, reason); err != nil {
		c.logger.Debug("Closing websocket", "error", err)
	}
}

// readPump feeds client messages into the sequencer until the connection
// fails or ctx ends.
func (c *Client) readPump(ctx context.Context) error {
	for {
		typ, data, err := c.conn.Read(ctx)
		if err != nil {
			return err
		}
		if typ != websocket.MessageText {
			continue
		}

		msg, err := ParseClientMessage(data)
		if err != nil {
			c.logger.Debug("Ignoring malformed message", "error", err)
			continue
		}
		if !c.whitelist.IsAllowed(msg.Type) {
			c.logger.Debug("Ignoring message type", "type", msg.Type)
			continue
		}
		in, err := msg.Input()
		if err != nil {
			c.logger.Debug("Ignoring message", "type", msg.Type, "error", err)
			continue
		}
		c.seq.Dispatch(in)
	}
}

// writePump sends the latest rendered state whenever the sequencer reports a
// change.
func (c *Client) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case <-c.wake:
			msg := c.take()
			if msg == nil {
				continue
			}
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, c.conn, msg)
			cancel()
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					c.logger.Warn("Failed to write to websocket", "error", err)
				}
				return
			}
		}
	}
}
