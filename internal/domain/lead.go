package domain

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

// Lead is a captured contact as stored by the lead backend.
type Lead struct {
	ID        int       `json:"id"`
	Nombre    string    `json:"nombre" validate:"required,max=200"`
	Email     string    `json:"email" validate:"required,email"`
	CreatedAt time.Time `json:"-"`
}

// Validate runs validation checks on the Lead struct using the defined tags.
func (l *Lead) Validate() error {
	return validatorInstance.Struct(l)
}

// LeadRepository stores leads. Implementations assign sequential ids
// starting at 1.
type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) (*Lead, error)
	List(ctx context.Context) ([]Lead, error)
}
