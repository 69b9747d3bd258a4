package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/impacto/site/internal/carousel"
)

const defaultTagline = "Innovación • Rendimiento • Escalabilidad"

const (
	chevronLeft  = `<svg width="22" height="22" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" viewBox="0 0 24 24" aria-hidden="true"><path d="m15 18-6-6 6-6"/></svg>`
	chevronRight = `<svg width="22" height="22" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" viewBox="0 0 24 24" aria-hidden="true"><path d="m9 6 6 6-6 6"/></svg>`
)

// clampIndex keeps a rendered index inside [0, count).
func clampIndex(index, count int) int {
	if index < 0 || index >= count {
		return 0
	}
	return index
}

// LiveCarousel wraps a carousel of count slides so carousel.js can attach a
// live session. The server replaces the wrapper's content on every index
// change. With fewer than two slides there is nothing to sequence and body is
// returned as is.
func LiveCarousel(widget string, count int, body g.Node) g.Node {
	if count < 2 {
		return body
	}
	return h.Div(
		h.Class("carousel-live"),
		h.Data("carousel", widget),
		h.Data("carousel-ws", "/carousel/ws?widget="+widget),
		body,
	)
}

// HeroCarousel renders the full width image slider showing slide index.
// No slides renders nothing; a single slide renders without controls.
func HeroCarousel(slides []carousel.HeroSlide, index int) g.Node {
	count := len(slides)
	if count == 0 {
		return g.Group(nil)
	}
	index = clampIndex(index, count)
	active := slides[index]

	tagline := active.Tagline
	if tagline == "" {
		tagline = defaultTagline
	}
	ctaHref := active.CTAHref
	if ctaHref == "" {
		ctaHref = "#contacto"
	}

	return h.Section(
		h.Class("carousel-hero relative w-full h-[60vh] md:h-[70vh] overflow-hidden bg-black"),
		h.Aria("roledescription", "carousel"),
		h.Aria("label", "Hero destacadas"),
		h.TabIndex("0"),
		h.Data("index", fmt.Sprint(index)),
		h.Data("count", fmt.Sprint(count)),
		h.Div(
			h.Class("absolute inset-0 flex transition-transform duration-[900ms] ease-out"),
			h.Style(fmt.Sprintf("transform: translateX(-%d%%)", index*100)),
			g.Map(indexed(slides), func(s slideAt[carousel.HeroSlide]) g.Node {
				loading := "lazy"
				if s.i == 0 {
					loading = "eager"
				}
				return h.Div(
					h.Class("relative shrink-0 w-full h-full"),
					g.If(s.i != index, h.Aria("hidden", "true")),
					h.Img(
						h.Src(s.v.Image),
						h.Alt(s.v.AltText()),
						h.Class("w-full h-full object-cover object-center select-none pointer-events-none"),
						g.Attr("draggable", "false"),
						g.Attr("loading", loading),
					),
					h.Div(h.Class("absolute inset-0 bg-gradient-to-t from-black/70 via-black/40 to-black/10")),
				)
			}),
		),
		h.Div(
			h.Class("absolute inset-0 flex items-center justify-center px-6"),
			h.Div(
				h.Class("max-w-4xl mx-auto text-center text-white space-y-6 animate-fade-in"),
				h.Aria("live", "polite"),
				h.P(h.Class("text-xs tracking-wider uppercase font-semibold text-white/80"), g.Text(tagline)),
				h.H1(h.Class("text-3xl md:text-5xl font-bold leading-tight"), g.Text(active.Phrase)),
				g.If(active.Sub != "",
					h.P(h.Class("text-base md:text-lg text-white/80 max-w-2xl mx-auto leading-relaxed"), g.Text(active.Sub)),
				),
				h.Div(
					h.Class("flex items-center justify-center gap-4"),
					g.If(active.CTAText != "",
						h.A(
							h.Href(ctaHref),
							h.Class("px-7 py-3 rounded-full bg-brand hover:bg-brand-dark transition font-semibold shadow-lg"),
							g.Text(active.CTAText),
						),
					),
				),
			),
		),
		g.If(count > 1, g.Group{
			arrow("prev", "Anterior", chevronLeft, "absolute left-4 top-1/2 -translate-y-1/2 p-2 rounded-full bg-black/40 hover:bg-black/60 text-white"),
			arrow("next", "Siguiente", chevronRight, "absolute right-4 top-1/2 -translate-y-1/2 p-2 rounded-full bg-black/40 hover:bg-black/60 text-white"),
			dots(count, index, "Ir a slide %d", "absolute bottom-5 left-1/2 -translate-x-1/2 flex gap-2", "bg-white", "bg-white/40 hover:bg-white/60"),
		}),
	)
}

// TestimonialCarousel renders the quote slider showing item index.
// No items renders nothing; a single item renders without controls.
func TestimonialCarousel(items []carousel.Testimonial, index int) g.Node {
	count := len(items)
	if count == 0 {
		return g.Group(nil)
	}
	index = clampIndex(index, count)

	return h.Div(
		h.Class("carousel-testimonials relative"),
		h.Aria("roledescription", "carousel"),
		h.Aria("label", "Testimonios"),
		h.TabIndex("0"),
		h.Data("index", fmt.Sprint(index)),
		h.Data("count", fmt.Sprint(count)),
		h.Div(
			h.Class("relative overflow-hidden min-h-[340px] md:min-h-[300px] flex items-center"),
			g.Map(indexed(items), func(t slideAt[carousel.Testimonial]) g.Node {
				return testimonialFigure(t.v, t.i, t.i == index)
			}),
		),
		g.If(count > 1, g.Group{
			arrow("prev", "Anterior", chevronLeft, "absolute left-4 md:left-8 top-1/2 -translate-y-1/2 p-3 rounded-full bg-white/15 hover:bg-white/25 text-white"),
			arrow("next", "Siguiente", chevronRight, "absolute right-4 md:right-8 top-1/2 -translate-y-1/2 p-3 rounded-full bg-white/15 hover:bg-white/25 text-white"),
			dots(count, index, "Ir a testimonio %d", "absolute -bottom-12 left-1/2 -translate-x-1/2 flex gap-2", "bg-white ring-2 ring-white/30", "bg-white/40 hover:bg-white/70 ring-2 ring-white/30"),
		}),
	)
}

func testimonialFigure(t carousel.Testimonial, i int, active bool) g.Node {
	state := "opacity-0 pointer-events-none absolute inset-0"
	if active {
		state = "opacity-100 relative"
	}
	loading := "lazy"
	if i == 0 {
		loading = "eager"
	}
	return h.Figure(
		h.Class("max-w-4xl mx-auto w-full text-center transition-opacity duration-500 ease-out px-4 "+state),
		g.If(!active, h.Aria("hidden", "true")),
		h.Div(
			h.Class("relative mx-auto max-w-3xl"),
			h.BlockQuote(
				h.Class("relative bg-white/5 border border-white/10 rounded-2xl px-6 md:px-14 py-14 text-left shadow-lg"),
				h.Span(h.Aria("hidden", "true"), h.Class("select-none absolute top-2 left-5 text-6xl font-serif text-white/15"), g.Text("“")),
				h.Span(h.Aria("hidden", "true"), h.Class("select-none absolute -bottom-8 right-6 text-6xl font-serif text-white/15"), g.Text("”")),
				h.P(h.Class("relative z-10 text-base md:text-xl leading-relaxed text-white font-medium"), g.Text(t.Quote)),
			),
		),
		h.FigCaption(
			h.Class("mt-10 flex flex-col items-center gap-4"),
			g.If(t.Avatar != "",
				h.Img(h.Src(t.Avatar), h.Alt(t.Author), h.Class("w-16 h-16 rounded-full object-cover"), g.Attr("loading", loading)),
			),
			h.Div(
				h.Class("text-center"),
				h.P(h.Class("font-semibold text-white text-sm md:text-base"), g.Text(t.Author)),
				g.If(t.Role != "", h.P(h.Class("text-xs md:text-sm text-white/60 mt-0.5"), g.Text(t.Role))),
			),
		),
	)
}

func arrow(action, label, icon, class string) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class(class),
		h.Aria("label", label),
		h.Data("action", action),
		h.Span(h.Class("sr-only"), g.Text(label)),
		g.Raw(icon),
	)
}

func dots(count, index int, labelFormat, wrapClass, activeClass, idleClass string) g.Node {
	buttons := make([]g.Node, 0, count)
	for i := 0; i < count; i++ {
		class := idleClass
		if i == index {
			class = activeClass
		}
		buttons = append(buttons, h.Button(
			h.Type("button"),
			h.Class("h-2.5 w-2.5 rounded-full transition "+class),
			h.Aria("label", fmt.Sprintf(labelFormat, i+1)),
			g.If(i == index, h.Aria("current", "true")),
			h.Data("action", "dot"),
			h.Data("index", fmt.Sprint(i)),
		))
	}
	return h.Div(h.Class(wrapClass), g.Group(buttons))
}

type slideAt[T any] struct {
	i int
	v T
}

func indexed[T any](items []T) []slideAt[T] {
	out := make([]slideAt[T], len(items))
	for i, v := range items {
		out[i] = slideAt[T]{i: i, v: v}
	}
	return out
}
