// Package livecarousel mounts the live carousel websocket. Every connection
// drives its own sequencer over the slides current at connect time.
package livecarousel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/impacto/site/internal/carousel"
	"github.com/impacto/site/internal/config"
	"github.com/impacto/site/internal/content"
	"github.com/impacto/site/internal/module"
	"github.com/impacto/site/internal/rendering"
	"github.com/impacto/site/internal/websocket"
	"github.com/impacto/site/web/src/templates/components"
)

// Widget names accepted by the websocket route.
const (
	WidgetHero         = "hero"
	WidgetTestimonials = "testimonials"
)

// Dependencies holds the services required by the carousel module.
type Dependencies struct {
	Config  config.Provider
	Content *content.Store
}

// Module serves the live carousel transport.
type Module struct {
	module.BaseModule
	deps Dependencies
}

// New creates a new carousel module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "carousel"
}

// Register provides the websocket bridge. The injector shuts it down,
// disconnecting every client.
func (m *Module) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*websocket.Bridge, error) {
		return websocket.NewBridge(Widgets(m.deps.Content, m.deps.Config), websocket.WithLogger(slog.Default())), nil
	})
	return nil
}

// Boot mounts the websocket route.
func (m *Module) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	bridge, err := do.Invoke[*websocket.Bridge](i)
	if err != nil {
		return fmt.Errorf("failed to resolve carousel bridge: %w", err)
	}
	g.GET(websocket.Path, bridge.Handler)
	return nil
}

// Widgets binds the hero and testimonial carousels to the content store.
func Widgets(store *content.Store, cfg config.Provider) map[string]websocket.Widget {
	return map[string]websocket.Widget{
		WidgetHero: {
			Variant: carousel.HeroVariant(cfg.GetHeroInterval()),
			Open: func() (int, websocket.Renderer) {
				slides := store.Site().Hero
				return len(slides), func(index int) (string, error) {
					return rendering.String(context.Background(), components.HeroCarousel(slides, index))
				}
			},
		},
		WidgetTestimonials: {
			Variant: carousel.TestimonialVariant(cfg.GetTestimonialInterval()),
			Open: func() (int, websocket.Renderer) {
				items := store.Site().Testimonials
				return len(items), func(index int) (string, error) {
					return rendering.String(context.Background(), components.TestimonialCarousel(items, index))
				}
			},
		},
	}
}
