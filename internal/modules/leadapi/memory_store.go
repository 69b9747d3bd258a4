package leadapi

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/impacto/site/internal/domain"
)

var _ domain.LeadRepository = (*MemoryStore)(nil)

// MemoryStore keeps leads in process memory. Ids are sequential from 1.
type MemoryStore struct {
	mu     sync.RWMutex
	leads  []domain.Lead
	nextID int
	now    func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, now: time.Now}
}

func (s *MemoryStore) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	if err := lead.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidLead, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := domain.Lead{
		ID:        s.nextID,
		Nombre:    lead.Nombre,
		Email:     lead.Email,
		CreatedAt: s.now().UTC(),
	}
	s.leads = append(s.leads, stored)
	s.nextID++
	return &stored, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]domain.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Lead, len(s.leads))
	copy(out, s.leads)
	return out, nil
}
