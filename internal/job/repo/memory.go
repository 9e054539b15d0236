package repo

import (
	"context"
	"sync"

	"agri-connect/internal/job/domain"
	"agri-connect/internal/shared/apperrors"
)

// MemoryRepo is an in-memory job store keeping insertion order.
type MemoryRepo struct {
	mu   sync.RWMutex
	jobs []domain.Job
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Insert(ctx context.Context, j domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, j)
	return nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs[i].Status = status
			j := r.jobs[i]
			return &j, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *MemoryRepo) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, j := range r.jobs {
		if j.ID == id {
			j := j
			return &j, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *MemoryRepo) FindByFarmer(ctx context.Context, farmerID string) ([]domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Job, 0)
	for _, j := range r.jobs {
		if j.FarmerID == farmerID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *MemoryRepo) FindByStatus(ctx context.Context, status string) ([]domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Job, 0)
	for _, j := range r.jobs {
		if j.Status == status {
			out = append(out, j)
		}
	}
	return out, nil
}
