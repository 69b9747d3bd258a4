package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/impacto/site/internal/content"
	"github.com/impacto/site/web/src/templates/components"
)

// HomeData is what the landing page renders.
type HomeData struct {
	Site     *content.Site
	Latest   []*content.Post
	LeadForm components.LeadFormState
}

// Home is the landing page: hero carousel, features, testimonials, latest
// posts and the contact form.
func Home(d HomeData) g.Node {
	return g.Group{
		components.LiveCarousel("hero", len(d.Site.Hero), components.HeroCarousel(d.Site.Hero, 0)),
		h.Div(
			h.Class("max-w-6xl mx-auto"),
			g.If(len(d.Site.Features) > 0,
				components.Section("servicios", "Qué hacemos", components.Features(d.Site.Features)),
			),
		),
		g.If(len(d.Site.Testimonials) > 0,
			h.Div(
				h.Class("bg-gradient-to-br from-brand-dark to-gray-900 py-20 pb-28"),
				components.LiveCarousel("testimonials", len(d.Site.Testimonials), components.TestimonialCarousel(d.Site.Testimonials, 0)),
			),
		),
		h.Div(
			h.Class("max-w-6xl mx-auto"),
			g.If(len(d.Latest) > 0,
				components.Section("blog", "Últimas publicaciones", PostList(d.Latest)),
			),
			components.Section("contacto", "Hablemos", components.LeadForm(d.LeadForm)),
		),
	}
}
