package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agri-connect/internal/equipment/domain"
	"agri-connect/internal/shared/apperrors"
)

type EquipmentRepo struct {
	db *pgxpool.Pool
}

func NewEquipmentRepo(db *pgxpool.Pool) *EquipmentRepo {
	return &EquipmentRepo{db: db}
}

const equipmentColumns = `id, provider_id, type, name, manufacturer, model, year, rent_per_day, image, available, location, lat, lng, rating`

func (r *EquipmentRepo) Insert(ctx context.Context, e domain.Equipment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO equipment (id, provider_id, type, name, manufacturer, model, year, rent_per_day, image, available, location, lat, lng, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, e.ID, e.ProviderID, e.Type, e.Name, e.Manufacturer, e.Model, e.Year,
		e.RentPerDay, e.Image, e.Available, e.Location, e.Lat, e.Lng, e.Rating, time.Now())
	if err != nil {
		return fmt.Errorf("insert equipment failed: %w", err)
	}
	return nil
}

func (r *EquipmentRepo) FindByID(ctx context.Context, id string) (*domain.Equipment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id)

	var e domain.Equipment
	err := row.Scan(&e.ID, &e.ProviderID, &e.Type, &e.Name, &e.Manufacturer, &e.Model,
		&e.Year, &e.RentPerDay, &e.Image, &e.Available, &e.Location, &e.Lat, &e.Lng, &e.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan equipment failed: %w", err)
	}
	return &e, nil
}

func (r *EquipmentRepo) FindAll(ctx context.Context) ([]domain.Equipment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+equipmentColumns+` FROM equipment ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query equipment failed: %w", err)
	}
	defer rows.Close()

	var equipment []domain.Equipment
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(&e.ID, &e.ProviderID, &e.Type, &e.Name, &e.Manufacturer, &e.Model,
			&e.Year, &e.RentPerDay, &e.Image, &e.Available, &e.Location, &e.Lat, &e.Lng, &e.Rating); err != nil {
			return nil, fmt.Errorf("scan equipment failed: %w", err)
		}
		equipment = append(equipment, e)
	}
	return equipment, rows.Err()
}
