package leadapi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"
	"github.com/surrealdb/surrealdb.go"

	"github.com/impacto/site/internal/config"
	"github.com/impacto/site/internal/database"
	"github.com/impacto/site/internal/domain"
	"github.com/impacto/site/internal/module"
	"github.com/impacto/site/internal/pubsub"
)

// Dependencies contains all the dependencies for the lead backend module.
type Dependencies struct {
	Config    config.Provider
	Publisher pubsub.Publisher
}

// Module serves the lead API consumed by the contact form.
type Module struct {
	module.BaseModule
	deps Dependencies
	db   *surrealdb.DB
}

// New creates a new instance of the lead backend module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "leadapi"
}

// Register provides the lead repository selected by LEADS_STORE.
func (m *Module) Register(i do.Injector) error {
	switch m.deps.Config.GetLeadsStore() {
	case "surreal":
		do.Provide(i, func(i do.Injector) (domain.LeadRepository, error) {
			db, err := database.NewDB(context.Background(), m.deps.Config)
			if err != nil {
				return nil, err
			}
			m.db = db
			return database.NewSurrealLeadStore(db), nil
		})
	case "memory", "":
		do.ProvideValue[domain.LeadRepository](i, NewMemoryStore())
	default:
		return fmt.Errorf("unknown LEADS_STORE %q", m.deps.Config.GetLeadsStore())
	}
	return nil
}

// Boot mounts the lead routes.
func (m *Module) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	repo, err := do.Invoke[domain.LeadRepository](i)
	if err != nil {
		return fmt.Errorf("failed to resolve lead repository: %w", err)
	}

	h := NewHandler(repo, m.deps.Publisher)
	api := g.Group("/api/v1", echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
	}))
	api.POST("/leads", h.Create)
	api.GET("/leads", h.List)
	g.GET("/health", h.Health)

	slog.Info("Lead API mounted", "store", m.deps.Config.GetLeadsStore())
	return nil
}

// Shutdown closes the database connection, if one was opened.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.db != nil {
		return m.db.Close(ctx)
	}
	return nil
}
