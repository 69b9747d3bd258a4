package scaffold

const moduleTemplate = `// Package {{.Name}} serves the /{{.Name}} page.
package {{.Name}}

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"{{.ModulePath}}/internal/config"
	"{{.ModulePath}}/internal/module"
)

// Dependencies holds the services required by the {{.Name}} module.
type Dependencies struct {
	Config config.Provider
}

// Module is the {{.Name}} feature.
type Module struct {
	module.BaseModule
	deps Dependencies
}

// New creates a new {{.Name}} module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "{{.Name}}"
}

// Boot mounts the module routes.
func (m *Module) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	slog.Info("Booting {{.PascalName}} module")
	h := NewHandler()
	g.GET("/{{.Name}}", h.Get)
	return nil
}
`

const handlerTemplate = `package {{.Name}}

import (
	"net/http"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"{{.ModulePath}}/internal/view"
	"{{.ModulePath}}/web/src/templates/layouts"
)

// Handler renders the {{.Name}} page.
type Handler struct{}

// NewHandler creates a new Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Get renders the page inside the base layout.
func (hd *Handler) Get(c echo.Context) error {
	page := layouts.Page{Title: "{{.PascalName}}", Path: c.Request().URL.Path}
	body := h.Section(
		h.Class("max-w-4xl mx-auto px-6 py-20"),
		h.H1(h.Class("text-3xl font-bold"), g.Text("{{.PascalName}}")),
	)
	return c.Render(http.StatusOK, "", layouts.Base(page, view.GetFlashData(c).Messages, body))
}
`
