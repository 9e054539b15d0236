package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agri-connect/internal/shared/apperrors"
	"agri-connect/internal/user/domain"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, name, phone, role, location, lat, lng, available, rating`

func (r *UserRepo) Insert(ctx context.Context, u domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, phone, role, location, lat, lng, available, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, u.ID, u.Name, u.Phone, u.Role, u.Location, u.Lat, u.Lng, u.Available, u.Rating, time.Now())
	if err != nil {
		return fmt.Errorf("insert user failed: %w", err)
	}
	return nil
}

// Update merges non-nil fields into the stored row. COALESCE against
// NULL parameters keeps the merge by key presence: an explicit false
// or empty string still overwrites.
func (r *UserRepo) Update(ctx context.Context, id string, upd domain.Update) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET name      = COALESCE($2, name),
		    location  = COALESCE($3, location),
		    lat       = COALESCE($4, lat),
		    lng       = COALESCE($5, lng),
		    available = COALESCE($6, available),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns+`
	`, id, upd.Name, upd.Location, upd.Lat, upd.Lng, upd.Available)

	return scanUser(row)
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepo) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE phone = $1`, phone)
	return scanUser(row)
}

func (r *UserRepo) FindByRole(ctx context.Context, role string) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at
	`, role)
	if err != nil {
		return nil, fmt.Errorf("query users by role failed: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Phone, &u.Role, &u.Location,
			&u.Lat, &u.Lng, &u.Available, &u.Rating); err != nil {
			return nil, fmt.Errorf("scan user failed: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Phone, &u.Role, &u.Location,
		&u.Lat, &u.Lng, &u.Available, &u.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan user failed: %w", err)
	}
	return &u, nil
}
