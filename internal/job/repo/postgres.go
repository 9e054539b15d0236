package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agri-connect/internal/job/domain"
	"agri-connect/internal/shared/apperrors"
)

type JobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

const jobColumns = `id, farmer_id, farmer_name, work_type, wage, description, date, location, lat, lng, status, rating`

func (r *JobRepo) Insert(ctx context.Context, j domain.Job) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO jobs (id, farmer_id, farmer_name, work_type, wage, description, date, location, lat, lng, status, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, j.ID, j.FarmerID, j.FarmerName, j.WorkType, j.Wage, j.Description, j.Date,
		j.Location, j.Lat, j.Lng, j.Status, j.Rating, time.Now())
	if err != nil {
		return fmt.Errorf("insert job failed: %w", err)
	}
	return nil
}

func (r *JobRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Job, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE jobs
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+jobColumns+`
	`, id, status)
	return scanJob(row)
}

func (r *JobRepo) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *JobRepo) FindByFarmer(ctx context.Context, farmerID string) ([]domain.Job, error) {
	return r.findAll(ctx, `SELECT `+jobColumns+` FROM jobs WHERE farmer_id = $1 ORDER BY created_at`, farmerID)
}

func (r *JobRepo) FindByStatus(ctx context.Context, status string) ([]domain.Job, error) {
	return r.findAll(ctx, `SELECT `+jobColumns+` FROM jobs WHERE status = $1 ORDER BY created_at`, status)
}

func (r *JobRepo) findAll(ctx context.Context, query string, arg interface{}) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query jobs failed: %w", err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.FarmerID, &j.FarmerName, &j.WorkType, &j.Wage,
			&j.Description, &j.Date, &j.Location, &j.Lat, &j.Lng, &j.Status, &j.Rating); err != nil {
			return nil, fmt.Errorf("scan job failed: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(&j.ID, &j.FarmerID, &j.FarmerName, &j.WorkType, &j.Wage,
		&j.Description, &j.Date, &j.Location, &j.Lat, &j.Lng, &j.Status, &j.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan job failed: %w", err)
	}
	return &j, nil
}
