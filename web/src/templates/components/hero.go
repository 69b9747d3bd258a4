package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/impacto/site/internal/content"
)

// Hero is the text hero block with optional calls to action.
func Hero(in content.Intro) g.Node {
	alignment := "text-left items-start"
	if in.Align == "center" {
		alignment = "text-center items-center mx-auto"
	}
	primaryHref := in.PrimaryCTAHref
	if primaryHref == "" {
		primaryHref = "/contacto"
	}

	return h.Div(
		h.Class("flex flex-col max-w-3xl "+alignment),
		g.If(in.Kicker != "",
			h.P(h.Class("text-xs font-semibold tracking-wider uppercase text-brand-dark mb-3"), g.Text(in.Kicker)),
		),
		h.H1(
			h.Class("text-4xl md:text-5xl font-extrabold leading-tight mb-5 bg-clip-text text-transparent bg-gradient-to-r from-brand-dark via-brand to-cyan-400"),
			g.Text(in.Headline),
		),
		g.If(in.Sub != "",
			h.P(h.Class("text-lg md:text-xl text-gray-600 mb-8 leading-relaxed"), g.Text(in.Sub)),
		),
		g.If(in.PrimaryCTAText != "" || in.SecondaryCTAText != "",
			h.Div(
				h.Class("flex flex-wrap gap-4"),
				g.If(in.PrimaryCTAText != "",
					h.A(h.Href(primaryHref), h.Class("px-7 py-3 rounded-full bg-brand text-white font-semibold shadow-lg hover:bg-brand-dark transition"), g.Text(in.PrimaryCTAText)),
				),
				g.If(in.SecondaryCTAText != "",
					h.A(h.Href(in.SecondaryCTAHref), h.Class("px-7 py-3 rounded-full bg-white text-brand font-semibold shadow border border-brand/20 transition"), g.Text(in.SecondaryCTAText)),
				),
			),
		),
	)
}
