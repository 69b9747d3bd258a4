package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/impacto/site/internal/view"
	"github.com/impacto/site/web/src/templates/layouts"
	"github.com/impacto/site/web/src/templates/pages"
)

// renderPage wraps content in the base layout together with any pending
// flash messages.
func renderPage(c echo.Context, status int, page layouts.Page, content g.Node) error {
	if page.Path == "" {
		page.Path = c.Request().URL.Path
	}
	flash := view.GetFlashData(c)
	return c.Render(status, "", layouts.Base(page, flash.Messages, content))
}

// NotFound renders the not found page with a 404 status.
func NotFound(c echo.Context) error {
	return renderPage(c, http.StatusNotFound, layouts.Page{Title: "Página no encontrada"}, pages.NotFound())
}
