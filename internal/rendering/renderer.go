// Package rendering adapts component trees to Echo's renderer interface.
package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// Renderer implements echo.Renderer for gomponents nodes and templ
// components passed as the data argument of c.Render.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render implements echo.Renderer. The template name is ignored.
func (r *Renderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	return Write(c.Request().Context(), w, data)
}

// Write renders a component to w.
func Write(ctx context.Context, w io.Writer, component any) error {
	switch comp := component.(type) {
	case templ.Component:
		return comp.Render(ctx, w)
	case g.Node:
		return comp.Render(w)
	default:
		return fmt.Errorf("unsupported component type %T", component)
	}
}

// String renders a component to a string, for websocket pushes and tests.
func String(ctx context.Context, component any) (string, error) {
	var buf bytes.Buffer
	if err := Write(ctx, &buf, component); err != nil {
		return "", fmt.Errorf("render component: %w", err)
	}
	return buf.String(), nil
}

// IsHTMX reports whether the request was issued by htmx, in which case
// handlers answer with a fragment instead of a full page.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
