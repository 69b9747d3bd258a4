package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/impacto/site/internal/domain"
	"github.com/impacto/site/internal/modules/leadapi"
)

// Notifier turns lead events into emails.
type Notifier struct {
	Sender domain.EmailSender
	To     string
	Logger *slog.Logger
}

// HandleLeadCreated sends the notification for one lead. Delivery failures
// are logged and swallowed so the event is not redelivered forever.
func (n *Notifier) HandleLeadCreated(ctx context.Context, ev leadapi.LeadCreatedEvent) error {
	body, err := renderBody(ev)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Nuevo contacto: %s", ev.Nombre)
	if err := n.Sender.Send(n.To, subject, body); err != nil {
		n.Logger.Error("Failed to send lead notification", "lead_id", ev.ID, "error", err)
		return nil
	}
	n.Logger.Info("Lead notification sent", "lead_id", ev.ID)
	return nil
}

func renderBody(ev leadapi.LeadCreatedEvent) (string, error) {
	created := ev.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	var b strings.Builder
	err := h.Div(
		h.H2(g.Text("Nuevo contacto desde el sitio")),
		h.Ul(
			h.Li(h.Strong(g.Text("Nombre: ")), g.Text(ev.Nombre)),
			h.Li(h.Strong(g.Text("Correo: ")), h.A(h.Href("mailto:"+ev.Email), g.Text(ev.Email))),
			h.Li(h.Strong(g.Text("Recibido: ")), g.Text(created.Format("02/01/2006 15:04"))),
		),
	).Render(&b)
	if err != nil {
		return "", fmt.Errorf("render notification: %w", err)
	}
	return b.String(), nil
}
