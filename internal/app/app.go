// Package app assembles the core services and the enabled modules.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/impacto/site/internal/config"
	"github.com/impacto/site/internal/content"
	"github.com/impacto/site/internal/module"
	"github.com/impacto/site/internal/pubsub"
)

// App is the wired application: the dependency container, the core
// services and the modules to register and boot.
type App struct {
	Injector *do.RootScope
	Deps     Dependencies
	Modules  []module.Module

	bus *pubsub.WatermillBridge
}

// Option customises New.
type Option func(*options)

type options struct {
	content *content.Store
}

// WithContent uses store instead of loading CONTENT_DIR or the embedded
// defaults.
func WithContent(store *content.Store) Option {
	return func(o *options) { o.content = store }
}

// New loads the content collections, creates the pub/sub bus and provides
// both to the container together with the configuration.
func New(cfg config.Provider, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	store := o.content
	if store == nil {
		store = content.NewStore(content.OpenFS(cfg.GetContentDir()), slog.Default())
		if err := store.Load(); err != nil {
			return nil, fmt.Errorf("failed to load content: %w", err)
		}
	}

	bus := pubsub.NewWatermillBridge()

	i := do.New()
	do.ProvideValue[config.Provider](i, cfg)
	do.ProvideValue(i, store)
	do.ProvideValue[pubsub.Publisher](i, bus)
	do.ProvideValue[pubsub.Subscriber](i, bus)

	deps := Dependencies{
		Config:     cfg,
		Content:    store,
		Publisher:  bus,
		Subscriber: bus,
	}
	return &App{Injector: i, Deps: deps, Modules: NewModules(deps), bus: bus}, nil
}

// Close shuts down the container services and the pub/sub bus.
func (a *App) Close(ctx context.Context) error {
	report := a.Injector.ShutdownWithContext(ctx)
	if err := a.bus.Close(); err != nil {
		return fmt.Errorf("failed to close pub/sub bus: %w", err)
	}
	if report != nil && !report.Succeed {
		return report
	}
	return nil
}
