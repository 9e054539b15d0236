package repo

import (
	"context"
	"sync"

	"agri-connect/internal/shared/apperrors"
	"agri-connect/internal/user/domain"
)

// MemoryRepo is an in-memory user store. A slice keeps insertion
// order so repeated queries over an unchanged set stay deterministic.
type MemoryRepo struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Insert(ctx context.Context, u domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, u)
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, id string, upd domain.Update) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		if upd.Name != nil {
			r.users[i].Name = *upd.Name
		}
		if upd.Location != nil {
			r.users[i].Location = *upd.Location
		}
		if upd.Lat != nil {
			r.users[i].Lat = *upd.Lat
		}
		if upd.Lng != nil {
			r.users[i].Lng = *upd.Lng
		}
		if upd.Available != nil {
			r.users[i].Available = *upd.Available
		}
		u := r.users[i]
		return &u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *MemoryRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *MemoryRepo) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Phone == phone {
			u := u
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *MemoryRepo) FindByRole(ctx context.Context, role string) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, 0)
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}
