package pages

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/impacto/site/internal/content"
	"github.com/impacto/site/internal/view"
)

// Post renders a single blog post. The body is the HTML produced by the
// content loader's Markdown renderer.
func Post(p *content.Post) g.Node {
	return h.Article(
		h.Class("max-w-3xl mx-auto px-6 py-12"),
		g.If(p.HeroImage != "",
			h.Img(h.Src(p.HeroImage), h.Alt(p.Title), h.Class("w-full rounded-xl mb-8 object-cover")),
		),
		h.H1(h.Class("text-4xl font-extrabold mb-3"), g.Text(p.Title)),
		h.P(h.Class("text-sm text-gray-500 mb-8"), publishedTime(p), updatedNote(p)),
		h.Div(
			h.Class("prose max-w-none"),
			view.AdaptTemplToGomponent(templ.Raw(p.HTML)),
		),
		tagList(p.Tags),
		h.P(h.Class("mt-12"), h.A(h.Href("/blog"), h.Class("text-brand hover:underline"), g.Text("← Volver al blog"))),
	)
}

func updatedNote(p *content.Post) g.Node {
	if p.UpdatedAt == nil {
		return g.Group(nil)
	}
	return g.Textf(" · actualizado %s", p.UpdatedAt.Format(dateLayout))
}
