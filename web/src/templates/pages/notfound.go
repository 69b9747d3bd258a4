package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFound is rendered for unknown routes.
func NotFound() g.Node {
	return h.Div(
		h.Class("max-w-3xl mx-auto px-6 py-24 text-center"),
		h.P(h.Class("text-7xl font-extrabold text-brand"), g.Text("404")),
		h.H1(h.Class("text-2xl font-bold mt-4"), g.Text("Página no encontrada")),
		h.P(h.Class("text-gray-600 mt-2"), g.Text("La página que buscas no existe o fue movida.")),
		h.A(h.Href("/"), h.Class("inline-block mt-8 px-6 py-3 rounded-full bg-brand text-white font-semibold"), g.Text("Volver al inicio")),
	)
}
