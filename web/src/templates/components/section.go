package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/impacto/site/internal/content"
)

// Section is a titled content block. id may be empty.
func Section(id, title string, children ...g.Node) g.Node {
	return h.Section(
		g.If(id != "", h.ID(id)),
		h.Class("py-10 px-6"),
		h.H2(h.Class("text-2xl font-bold mb-4"), g.Text(title)),
		h.Div(children...),
	)
}

// Features renders the feature blocks as a grid.
func Features(features []content.Feature) g.Node {
	if len(features) == 0 {
		return g.Group(nil)
	}
	return h.Div(
		h.Class("grid gap-6 md:grid-cols-3"),
		g.Map(features, func(f content.Feature) g.Node {
			return h.Div(
				h.Class("p-6 rounded-xl bg-white shadow"),
				g.If(f.Icon != "", h.Data("icon", f.Icon)),
				h.H3(h.Class("font-semibold text-lg mb-2"), g.Text(f.Title)),
				h.P(h.Class("text-gray-600"), g.Text(f.Body)),
			)
		}),
	)
}
