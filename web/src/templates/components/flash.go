package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FlashMessages are one-shot notices carried across a redirect.
type FlashMessages struct {
	Success []string
	Error   []string
}

// Flash renders the pending flash messages, if any.
func Flash(m FlashMessages) g.Node {
	if len(m.Success) == 0 && len(m.Error) == 0 {
		return g.Group(nil)
	}
	return h.Div(
		h.ID("flash"),
		h.Class("max-w-5xl mx-auto px-6 pt-4 space-y-2"),
		g.Map(m.Success, func(msg string) g.Node {
			return h.Div(h.Class("rounded bg-green-50 border border-green-200 text-green-800 px-4 py-2"), h.Role("status"), g.Text(msg))
		}),
		g.Map(m.Error, func(msg string) g.Node {
			return h.Div(h.Class("rounded bg-red-50 border border-red-200 text-red-800 px-4 py-2"), h.Role("alert"), g.Text(msg))
		}),
	)
}
