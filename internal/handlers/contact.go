package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/impacto/site/internal/content"
	"github.com/impacto/site/internal/leads"
	"github.com/impacto/site/internal/middleware"
	"github.com/impacto/site/internal/rendering"
	"github.com/impacto/site/internal/view"
	"github.com/impacto/site/web/src/templates/components"
	"github.com/impacto/site/web/src/templates/layouts"
	"github.com/impacto/site/web/src/templates/pages"
)

// ContactPath is where the lead form posts to.
const ContactPath = "/contacto"

const (
	msgLeadSuccess = "¡Gracias! Te contactaremos."
	msgLeadError   = "Error. Intenta de nuevo."
)

// ContactHandler serves the contact page and submits leads on behalf of
// the visitor.
type ContactHandler struct {
	content *content.Store
	forms   *leads.Forms
	timeout time.Duration
}

// NewContactHandler creates a new ContactHandler. Each submission is bounded
// by timeout.
func NewContactHandler(store *content.Store, forms *leads.Forms, timeout time.Duration) *ContactHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ContactHandler{content: store, forms: forms, timeout: timeout}
}

// ContactGet renders the contact page.
func (h *ContactHandler) ContactGet(c echo.Context) error {
	intro := h.content.Site().Contact
	return renderPage(c, http.StatusOK, layouts.Page{Title: "Contacto", Description: intro.Sub},
		pages.Contact(intro, formState(c, h.forms)))
}

// ContactPost submits the lead once. htmx requests get the re-rendered form
// back; plain form posts are redirected to the contact page with a flash
// message.
func (h *ContactHandler) ContactPost(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	var req leads.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	req = req.Normalize()
	state := components.LeadFormState{Nombre: req.Nombre, Email: req.Email, Action: ContactPath}

	if err := c.Validate(&req); err != nil {
		state.Status = leads.StatusError
		return h.respond(c, state)
	}

	form := h.forms.For(VisitorID(c))
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	status, err := form.Submit(ctx, req)
	state.Status = status
	switch {
	case errors.Is(err, leads.ErrSubmissionInFlight):
		logger.Info("Lead submission already in flight")
	case err != nil:
		logger.Warn("Lead submission failed", "error", err)
	default:
		logger.Info("Lead submitted", "lead_id", form.Lead().ID)
		state.Nombre, state.Email = "", ""
	}
	return h.respond(c, state)
}

func (h *ContactHandler) respond(c echo.Context, state components.LeadFormState) error {
	if rendering.IsHTMX(c) {
		return c.Render(http.StatusOK, "", components.LeadForm(state))
	}
	switch state.Status {
	case leads.StatusSuccess:
		view.SetFlashSuccess(c, msgLeadSuccess)
	case leads.StatusError:
		view.SetFlashError(c, msgLeadError)
	}
	return c.Redirect(http.StatusSeeOther, ContactPath)
}
