package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/impacto/site/internal/content"
)

// dateLayout renders dates the way Spanish readers expect them.
const dateLayout = "02/01/2006"

// Blog lists the published posts.
func Blog(posts []*content.Post) g.Node {
	return h.Div(
		h.Class("max-w-4xl mx-auto px-6 py-12"),
		h.H1(h.Class("text-4xl font-extrabold mb-8"), g.Text("Blog")),
		g.If(len(posts) == 0, h.P(h.Class("text-gray-500"), g.Text("Todavía no hay publicaciones."))),
		PostList(posts),
	)
}

// PostList renders post summaries linking to each post.
func PostList(posts []*content.Post) g.Node {
	if len(posts) == 0 {
		return g.Group(nil)
	}
	return h.Ul(
		h.Class("space-y-8"),
		g.Map(posts, func(p *content.Post) g.Node {
			return h.Li(
				h.Article(
					h.H2(h.Class("text-2xl font-bold"), h.A(h.Href("/blog/"+p.Slug), h.Class("hover:text-brand"), g.Text(p.Title))),
					h.P(h.Class("text-sm text-gray-500"), publishedTime(p)),
					h.P(h.Class("text-gray-700 mt-2"), g.Text(p.Description)),
					tagList(p.Tags),
				),
			)
		}),
	)
}

func publishedTime(p *content.Post) g.Node {
	return h.Time(
		g.Attr("datetime", p.PublishedAt.Format("2006-01-02")),
		g.Text(p.PublishedAt.Format(dateLayout)),
	)
}

func tagList(tags []string) g.Node {
	if len(tags) == 0 {
		return g.Group(nil)
	}
	return h.Ul(
		h.Class("flex gap-2 mt-3"),
		g.Map(tags, func(t string) g.Node {
			return h.Li(h.Class("text-xs rounded-full bg-brand/10 text-brand-dark px-3 py-1"), g.Text(t))
		}),
	)
}
