package repo

import (
	"context"
	"sync"

	"agri-connect/internal/equipment/domain"
	"agri-connect/internal/shared/apperrors"
)

// MemoryRepo is an in-memory equipment store keeping insertion order.
type MemoryRepo struct {
	mu        sync.RWMutex
	equipment []domain.Equipment
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Insert(ctx context.Context, e domain.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.equipment = append(r.equipment, e)
	return nil
}

func (r *MemoryRepo) FindByID(ctx context.Context, id string) (*domain.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.equipment {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *MemoryRepo) FindAll(ctx context.Context) ([]domain.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Equipment, len(r.equipment))
	copy(out, r.equipment)
	return out, nil
}
