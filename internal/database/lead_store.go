package database

import (
	"context"
	"fmt"

	"github.com/surrealdb/surrealdb.go"

	"github.com/impacto/site/internal/domain"
)

const (
	leadTable = "lead"

	// nextSeqQuery bumps the lead counter and returns its new value.
	nextSeqQuery = "UPSERT counter:lead SET value += 1 RETURN value"
	createQuery  = "CREATE type::table($table) CONTENT $data RETURN seq, nombre, email"
	listQuery    = "SELECT seq, nombre, email FROM type::table($table) ORDER BY seq ASC"
)

var _ domain.LeadRepository = (*SurrealLeadStore)(nil)

// leadRecord is the stored shape of a lead. SurrealDB record ids are not
// integers, so the public id lives in seq.
type leadRecord struct {
	Seq    int    `json:"seq"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

type counterRecord struct {
	Value int `json:"value"`
}

// SurrealLeadStore implements domain.LeadRepository on SurrealDB.
type SurrealLeadStore struct {
	db *surrealdb.DB
}

// NewSurrealLeadStore creates a lead store on an open connection.
func NewSurrealLeadStore(db *surrealdb.DB) *SurrealLeadStore {
	return &SurrealLeadStore{db: db}
}

// Create assigns the next sequential id and stores the lead.
func (s *SurrealLeadStore) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	if err := lead.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidLead, err)
	}

	counters, err := surrealdb.Query[[]counterRecord](ctx, s.db, nextSeqQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate lead id: %w", err)
	}
	if len(*counters) == 0 || len((*counters)[0].Result) == 0 {
		return nil, fmt.Errorf("failed to allocate lead id: empty result")
	}
	seq := (*counters)[0].Result[0].Value

	results, err := surrealdb.Query[[]leadRecord](ctx, s.db, createQuery, map[string]any{
		"table": leadTable,
		"data": map[string]any{
			"seq":    seq,
			"nombre": lead.Nombre,
			"email":  lead.Email,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	if len(*results) == 0 || len((*results)[0].Result) == 0 {
		return nil, fmt.Errorf("failed to create lead: empty result")
	}

	rec := (*results)[0].Result[0]
	return &domain.Lead{ID: rec.Seq, Nombre: rec.Nombre, Email: rec.Email, CreatedAt: lead.CreatedAt}, nil
}

// List returns every stored lead in id order.
func (s *SurrealLeadStore) List(ctx context.Context) ([]domain.Lead, error) {
	results, err := surrealdb.Query[[]leadRecord](ctx, s.db, listQuery, map[string]any{"table": leadTable})
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	leads := []domain.Lead{}
	if len(*results) == 0 {
		return leads, nil
	}
	for _, rec := range (*results)[0].Result {
		leads = append(leads, domain.Lead{ID: rec.Seq, Nombre: rec.Nombre, Email: rec.Email})
	}
	return leads, nil
}
