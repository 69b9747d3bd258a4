package layouts

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/impacto/site/web/src/templates/components"
)

// Page carries the per-page head data.
type Page struct {
	Title       string
	Description string
	// Path is the request path, used to mark the active nav link.
	Path string
}

var navLinks = []struct{ Href, Label string }{
	{"/", "Inicio"},
	{"/blog", "Blog"},
	{"/about", "Nosotros"},
	{"/contacto", "Contacto"},
}

// Base is the document shell shared by every page.
func Base(page Page, flashes components.FlashMessages, content ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("es"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(page.Title))),
				g.If(page.Description != "", h.Meta(h.Name("description"), h.Content(page.Description))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(h.Src("/static/js/tailwind.config.js")),
				h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4"), h.Defer()),
				h.Script(h.Src("/static/js/carousel.js"), h.Defer()),
			),
			h.Body(
				h.Class("min-h-screen flex flex-col bg-gray-50 text-gray-900"),
				h.Header(
					h.Class("bg-white shadow-sm"),
					h.Nav(
						h.Class("max-w-6xl mx-auto flex items-center justify-between px-6 py-4"),
						h.A(h.Href("/"), h.Class("font-extrabold text-xl text-brand"), g.Text(SiteName)),
						h.Ul(
							h.Class("flex gap-6 text-sm font-medium"),
							g.Map(navLinks, func(l struct{ Href, Label string }) g.Node {
								return h.Li(h.A(
									h.Href(l.Href),
									g.If(l.Href == page.Path, h.Aria("current", "page")),
									g.Text(l.Label),
								))
							}),
						),
					),
				),
				components.Flash(flashes),
				h.Main(h.Class("flex-1"), g.Group(content)),
				h.Footer(
					h.Class("border-t bg-white py-6 text-center text-sm text-gray-500"),
					g.Textf("© %s", SiteName),
				),
			),
		),
	)
}
