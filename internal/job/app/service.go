package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agri-connect/internal/job/domain"
	"agri-connect/internal/shared/ai"
	"agri-connect/internal/shared/apperrors"
	"agri-connect/internal/shared/geo"
	"agri-connect/internal/shared/util"
	"agri-connect/internal/shared/validation"
)

// Fanout receives the new-job trigger, fired exactly once per posting.
type Fanout interface {
	JobPosted(ctx context.Context, j domain.Job)
}

type JobService struct {
	repo      domain.Repository
	fanout    Fanout
	generator ai.Generator
	logger    *util.Logger
}

func NewJobService(repo domain.Repository, fanout Fanout, generator ai.Generator, logger *util.Logger) *JobService {
	return &JobService{repo: repo, fanout: fanout, generator: generator, logger: logger}
}

// Post creates a job for a farmer. Status is forced to OPEN regardless
// of caller input, and nearby workers are notified.
func (s *JobService) Post(ctx context.Context, req domain.PostRequest) (*domain.Job, error) {
	instance := "JobService.Post"
	start := time.Now()

	if err := validation.ValidateStringNotEmpty(req.FarmerID, "farmerId"); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := validation.ValidateStringNotEmpty(req.WorkType, "workType"); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := validation.ValidatePositiveInt(req.Wage, "wage"); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := validation.ValidateCoordinates(req.Lat, req.Lng); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	id, err := util.GenerateUUID()
	if err != nil {
		return nil, fmt.Errorf("generate job id: %w", err)
	}

	job := domain.Job{
		ID:          id,
		FarmerID:    req.FarmerID,
		FarmerName:  req.FarmerName,
		WorkType:    req.WorkType,
		Wage:        req.Wage,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Status:      domain.StatusOpen,
		Rating:      0,
	}
	if job.Date == "" {
		job.Date = time.Now().Format("2006-01-02")
	}
	if job.Description == "" && s.generator != nil {
		job.Description = s.generator.JobDescription(ctx, job.WorkType, job.Location)
	}

	if err := s.repo.Insert(ctx, job); err != nil {
		s.logger.Error(instance, fmt.Errorf("insert job failed: %w", err))
		return nil, err
	}

	if s.fanout != nil {
		s.fanout.JobPosted(ctx, job)
	}

	s.logger.OK(instance, fmt.Sprintf("job posted [job_id=%s, work_type=%s, wage=%d, duration_ms=%d]",
		job.ID, job.WorkType, job.Wage, time.Since(start).Milliseconds()))

	return &job, nil
}

// UpdateStatus sets a job's status to any known value; no transition
// table is enforced. Only the owning farmer may change it, and no
// notification is emitted.
func (s *JobService) UpdateStatus(ctx context.Context, jobID, farmerID, status string) (*domain.Job, error) {
	instance := "JobService.UpdateStatus"

	if err := validation.ValidateJobStatus(status); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error(instance, fmt.Errorf("find job %s failed: %w", jobID, err))
		}
		return nil, err
	}

	if farmerID != "" && job.FarmerID != farmerID {
		s.logger.Warn(instance, fmt.Sprintf("user %s tried to update job %s owned by %s", farmerID, jobID, job.FarmerID))
		return nil, fmt.Errorf("%w: only the posting farmer can update this job", apperrors.ErrForbidden)
	}

	updated, err := s.repo.UpdateStatus(ctx, jobID, status)
	if err != nil {
		s.logger.Error(instance, fmt.Errorf("update job %s status failed: %w", jobID, err))
		return nil, err
	}

	s.logger.Info(instance, fmt.Sprintf("job status updated [job_id=%s, status=%s]", jobID, status))
	return updated, nil
}

// ListByFarmer returns all of a farmer's jobs regardless of status or
// distance, in insertion order.
func (s *JobService) ListByFarmer(ctx context.Context, farmerID string) ([]domain.Job, error) {
	if err := validation.ValidateStringNotEmpty(farmerID, "farmerId"); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return s.repo.FindByFarmer(ctx, farmerID)
}

// ListNearbyOpen returns open jobs within radiusKm of the origin,
// distance-annotated and sorted.
func (s *JobService) ListNearbyOpen(ctx context.Context, origin geo.Coordinate, radiusKm float64, key geo.SortKey) ([]domain.JobView, error) {
	if !origin.Valid() {
		return nil, fmt.Errorf("%w: invalid origin coordinates", apperrors.ErrValidation)
	}

	open, err := s.repo.FindByStatus(ctx, domain.StatusOpen)
	if err != nil {
		return nil, fmt.Errorf("list open jobs: %w", err)
	}

	matches := geo.Nearby(open, origin, radiusKm, key)
	views := make([]domain.JobView, 0, len(matches))
	for _, m := range matches {
		views = append(views, domain.JobView{Job: m.Item, Distance: m.DistanceKm})
	}
	return views, nil
}
