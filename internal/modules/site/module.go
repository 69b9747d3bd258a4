// Package site mounts the content pages: landing, blog, about and the
// sitemap.
package site

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/impacto/site/internal/config"
	"github.com/impacto/site/internal/content"
	"github.com/impacto/site/internal/handlers"
	"github.com/impacto/site/internal/leads"
	"github.com/impacto/site/internal/module"
)

// Dependencies holds the services required by the site module.
type Dependencies struct {
	Config  config.Provider
	Content *content.Store
}

// Module serves the read-only pages.
type Module struct {
	module.BaseModule
	deps Dependencies
}

// New creates a new site module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "site"
}

// Boot mounts the page routes. The lead form registry is optional; without
// it the home page always shows an idle form.
func (m *Module) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	if m.deps.Content == nil {
		return fmt.Errorf("site module requires a content store")
	}
	forms, err := do.Invoke[*leads.Forms](i)
	if err != nil {
		slog.Warn("Lead forms unavailable, home page form is static", "error", err)
		forms = nil
	}

	pages := handlers.NewSiteHandler(m.deps.Content, forms)
	sitemap := handlers.NewSitemapHandler(m.deps.Content, m.deps.Config.GetSiteURL())

	g.GET("/", pages.HomeGet)
	g.GET("/about", pages.AboutGet)
	g.GET("/blog", pages.BlogGet)
	g.GET("/blog/:slug", pages.PostGet)
	g.GET("/sitemap.xml", sitemap.SitemapGet)
	g.GET("/robots.txt", sitemap.RobotsGet)
	return nil
}
