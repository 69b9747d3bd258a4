package leadapi

import (
	"time"

	"github.com/impacto/site/internal/pubsub"
)

// LeadCreatedEvent is published once for every stored lead.
type LeadCreatedEvent struct {
	ID        int       `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadCreated is the typed topic for newly captured leads.
var LeadCreated = pubsub.NewEvent[LeadCreatedEvent]("leads.created", "A lead was captured through the contact form")
