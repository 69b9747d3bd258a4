// Package leads is the client side of lead capture: the HTTP client for the
// lead creation endpoint and the submission state machine behind the form.
package leads

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors.
var (
	// ErrLeadRejected is wrapped by HTTPStatusError when the backend answers with
	// a non-2xx status.
	ErrLeadRejected = errors.New("lead rejected by backend")
	// ErrSubmissionInFlight is returned when a form is submitted while a
	// previous submission is still loading.
	ErrSubmissionInFlight = errors.New("lead submission already in flight")
)

var validate = validator.New()

// CreateLeadRequest is the body of a lead creation request.
type CreateLeadRequest struct {
	Nombre string `json:"nombre" form:"nombre" validate:"required,max=200"`
	Email  string `json:"email" form:"email" validate:"required,email"`
}

// Normalize trims surrounding whitespace from all fields.
func (r CreateLeadRequest) Normalize() CreateLeadRequest {
	return CreateLeadRequest{
		Nombre: strings.TrimSpace(r.Nombre),
		Email:  strings.TrimSpace(r.Email),
	}
}

// Validate checks the request against its struct tags.
func (r CreateLeadRequest) Validate() error {
	return validate.Struct(r)
}

// Lead is a lead as stored by the backend.
type Lead struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}
