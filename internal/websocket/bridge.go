// Package websocket drives live carousels over a websocket. Each connection
// owns a server-side carousel.Sequencer; the browser forwards its input
// events and receives the re-rendered widget whenever the active slide
// changes, including auto-advances.
package websocket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/impacto/site/internal/carousel"
)

// Path is the route the live carousel script connects to.
const Path = "/carousel/ws"

// Renderer renders the widget with the slide at index active.
type Renderer func(index int) (string, error)

// Widget is a carousel that can be driven live.
type Widget struct {
	Variant carousel.Variant
	// Open captures the current slides and returns their count with a
	// renderer bound to that same set, so a content reload does not change
	// the slides under an open connection.
	Open func() (int, Renderer)
}

// Bridge accepts carousel connections and manages their sequencers.
type Bridge struct {
	widgets        map[string]Widget
	manager        *ClientManager
	logger         *slog.Logger
	originPatterns []string
	clock          carousel.Clock
	baseCtx        context.Context
	cancel         context.CancelFunc
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the bridge logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) { b.logger = l }
}

// WithOriginPatterns allows cross-origin connections from the given host
// patterns. Without it only same-origin connections are accepted.
func WithOriginPatterns(patterns ...string) Option {
	return func(b *Bridge) { b.originPatterns = patterns }
}

// WithClock replaces the clock handed to every sequencer.
func WithClock(c carousel.Clock) Option {
	return func(b *Bridge) { b.clock = c }
}

// NewBridge creates a bridge serving the named widgets.
func NewBridge(widgets map[string]Widget, opts ...Option) *Bridge {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Bridge{
		widgets: widgets,
		manager: NewClientManager(),
		baseCtx: ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	b.logger = b.logger.With("component", "carousel_bridge")
	return b
}

// Manager exposes the connected clients.
func (b *Bridge) Manager() *ClientManager {
	return b.manager
}

// Handler upgrades GET /carousel/ws?widget=<name> and runs the session until
// the browser goes away or the bridge shuts down.
func (b *Bridge) Handler(c echo.Context) error {
	name := c.QueryParam("widget")
	w, ok := b.widgets[name]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown carousel widget")
	}
	count, render := w.Open()
	if count == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "carousel has no slides")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: b.originPatterns,
	})
	if err != nil {
		// Accept has already written the HTTP error.
		b.logger.Warn("Failed to accept websocket", "error", err)
		return nil
	}
	conn.SetReadLimit(readLimit)

	client := newClient(uuid.NewString(), name, conn, WhitelistFor(w.Variant), b.logger)

	opts := []carousel.Option{
		carousel.WithLogger(client.logger),
		carousel.WithOnChange(func(ch carousel.Change) {
			html, err := render(ch.To)
			if err != nil {
				client.logger.Error("Failed to render carousel", "index", ch.To, "error", err)
				return
			}
			client.deliver(ServerMessage{Type: TypeRender, Widget: name, Index: ch.To, Cause: ch.Cause, HTML: html})
		}),
	}
	if b.clock != nil {
		opts = append(opts, carousel.WithClock(b.clock))
	}
	seq, err := carousel.New(count, w.Variant, opts...)
	if err != nil {
		conn.Close(websocket.StatusInternalError, "carousel unavailable")
		return nil
	}
	client.seq = seq

	ctx, cancel := context.WithCancel(b.baseCtx)
	defer cancel()
	stop := context.AfterFunc(c.Request().Context(), cancel)
	defer stop()

	b.manager.Add(client)
	defer b.manager.Remove(client.ID)
	client.logger.Debug("Carousel client connected", "slides", count)

	go client.writePump(ctx)
	seq.Start()

	err = client.readPump(ctx)
	switch {
	case websocket.CloseStatus(err) == websocket.StatusNormalClosure,
		websocket.CloseStatus(err) == websocket.StatusGoingAway,
		errors.Is(err, context.Canceled):
		client.logger.Debug("Carousel client disconnected")
	default:
		client.logger.Debug("Carousel client read failed", "error", err)
	}
	conn.CloseNow()
	return nil
}

// Shutdown disconnects every client and stops their sequencers.
func (b *Bridge) Shutdown() {
	b.manager.CloseAll("server shutting down")
	b.cancel()
}
