// Package contact mounts the contact page and submits the lead form to the
// lead backend on behalf of each visitor.
package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/impacto/site/internal/config"
	"github.com/impacto/site/internal/content"
	"github.com/impacto/site/internal/handlers"
	"github.com/impacto/site/internal/leads"
	"github.com/impacto/site/internal/middleware"
	"github.com/impacto/site/internal/module"
)

const (
	formTTL      = 30 * time.Minute
	janitorEvery   = 5 * time.Minute
)

// Dependencies holds the services required by the leads module.
type Dependencies struct {
	Config  config.Provider
	Content *content.Store
}

// Module owns the lead client and the per-visitor form registry.
type Module struct {
	module.BaseModule
	deps   Dependencies
	cancel context.CancelFunc
}

// New creates a new leads module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "leads"
}

// Register provides the lead client and the form registry.
func (m *Module) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*leads.Client, error) {
		return leads.NewClient(m.deps.Config.GetAPIBaseURL(), leads.WithTimeout(m.deps.Config.GetLeadTimeout())), nil
	})
	do.Provide(i, func(i do.Injector) (*leads.Forms, error) {
		client, err := do.Invoke[*leads.Client](i)
		if err != nil {
			return nil, err
		}
		return leads.NewForms(client, formTTL), nil
	})
	return nil
}

// Boot mounts the contact routes and starts pruning idle forms.
func (m *Module) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	forms, err := do.Invoke[*leads.Forms](i)
	if err != nil {
		return err
	}

	jctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	go forms.Janitor(jctx, janitorEvery)

	h := handlers.NewContactHandler(m.deps.Content, forms, m.deps.Config.GetLeadTimeout())
	g.GET(handlers.ContactPath, h.ContactGet)
	g.POST(handlers.ContactPath, h.ContactPost, middleware.RateLimiter(middleware.DefaultSubmissionsPerMinute))

	slog.Info("Lead form mounted", "backend", m.deps.Config.GetAPIBaseURL())
	return nil
}

// Shutdown stops the form janitor.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
