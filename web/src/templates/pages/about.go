package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/impacto/site/internal/content"
	"github.com/impacto/site/web/src/templates/components"
)

// About is the company page.
func About(site *content.Site) g.Node {
	return h.Div(
		h.Class("max-w-6xl mx-auto px-6 py-16 space-y-12"),
		components.Hero(site.About),
		components.Section("", "Qué hacemos", components.Features(site.Features)),
	)
}
