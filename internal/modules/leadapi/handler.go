package leadapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/impacto/site/internal/domain"
	"github.com/impacto/site/internal/middleware"
	"github.com/impacto/site/internal/pubsub"
)

// leadIn is the request body of POST /api/v1/leads.
type leadIn struct {
	Nombre string `json:"nombre" validate:"required,max=200"`
	Email  string `json:"email" validate:"required,email"`
}

// leadOut is the response shape for a stored lead.
type leadOut struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// ErrorResponse is the JSON body of a rejected request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Handler serves the lead endpoints.
type Handler struct {
	repo      domain.LeadRepository
	publisher pubsub.Publisher
}

// NewHandler creates a lead handler. publisher may be nil.
func NewHandler(repo domain.LeadRepository, publisher pubsub.Publisher) *Handler {
	return &Handler{repo: repo, publisher: publisher}
}

// Create handles POST /api/v1/leads.
func (h *Handler) Create(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	var in leadIn
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body"})
	}
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Email = strings.TrimSpace(in.Email)
	if err := c.Validate(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	lead, err := h.repo.Create(c.Request().Context(), &domain.Lead{Nombre: in.Nombre, Email: in.Email})
	if errors.Is(err, domain.ErrInvalidLead) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}
	if err != nil {
		return err
	}
	logger.Info("lead created", "lead_id", lead.ID)

	if h.publisher != nil {
		event := LeadCreatedEvent{ID: lead.ID, Nombre: lead.Nombre, Email: lead.Email, CreatedAt: lead.CreatedAt}
		if err := pubsub.Publish(c.Request().Context(), h.publisher, LeadCreated, event); err != nil {
			logger.Error("failed to publish lead event", slog.Any("error", err), "lead_id", lead.ID)
		}
	}

	return c.JSON(http.StatusCreated, leadOut{ID: lead.ID, Nombre: lead.Nombre, Email: lead.Email})
}

// List handles GET /api/v1/leads.
func (h *Handler) List(c echo.Context) error {
	all, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]leadOut, 0, len(all))
	for _, l := range all {
		out = append(out, leadOut{ID: l.ID, Nombre: l.Nombre, Email: l.Email})
	}
	return c.JSON(http.StatusOK, out)
}

// Health handles GET /health.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
