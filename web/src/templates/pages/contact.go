package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/impacto/site/internal/content"
	"github.com/impacto/site/web/src/templates/components"
)

// Contact is the contact page with the lead form.
func Contact(intro content.Intro, form components.LeadFormState) g.Node {
	return h.Div(
		h.Class("max-w-4xl mx-auto px-6 py-16 flex flex-col items-center gap-10"),
		components.Hero(intro),
		components.LeadForm(form),
	)
}
