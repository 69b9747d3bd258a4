package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/impacto/site/internal/leads"
)

// LeadFormState is what the lead form needs to render.
type LeadFormState struct {
	Status leads.Status
	Nombre string
	Email  string
	// Action is the URL the form posts to.
	Action string
}

// LeadForm renders the lead capture form. The submit button is disabled
// only while a submission is in flight.
func LeadForm(st LeadFormState) g.Node {
	action := st.Action
	if action == "" {
		action = "/contacto"
	}
	loading := st.Status == leads.StatusLoading

	label := "Enviar"
	if loading {
		label = "Enviando..."
	}

	return h.Form(
		h.ID("lead-form"),
		h.Class("space-y-4 max-w-md"),
		h.Action(action),
		h.Method("post"),
		hx.Post(action),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		g.Attr("hx-disabled-elt", "find button"),
		h.Data("status", string(st.Status)),
		h.Input(
			h.Type("text"),
			h.Name("nombre"),
			h.Placeholder("Nombre"),
			h.Class("w-full border rounded px-3 py-2"),
			h.Value(st.Nombre),
			h.Required(),
			g.Attr("maxlength", "200"),
		),
		h.Input(
			h.Type("email"),
			h.Name("email"),
			h.Placeholder("Correo"),
			h.Class("w-full border rounded px-3 py-2"),
			h.Value(st.Email),
			h.Required(),
		),
		h.Button(
			h.Type("submit"),
			h.Class("bg-brand text-white px-5 py-2 rounded font-semibold hover:bg-brand-dark disabled:opacity-60"),
			g.If(loading, h.Disabled()),
			g.Text(label),
		),
		g.If(st.Status == leads.StatusSuccess,
			h.P(h.Class("text-green-600 text-sm"), h.Role("status"), g.Text("¡Gracias! Te contactaremos.")),
		),
		g.If(st.Status == leads.StatusError,
			h.P(h.Class("text-red-600 text-sm"), h.Role("alert"), g.Text("Error. Intenta de nuevo.")),
		),
	)
}
