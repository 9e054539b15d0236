package app

import (
	"context"
	"fmt"
	"time"

	"agri-connect/internal/notify/domain"
	"agri-connect/internal/shared/geo"
	"agri-connect/internal/shared/util"

	jobdomain "agri-connect/internal/job/domain"
	userdomain "agri-connect/internal/user/domain"
)

// FanoutRadiusKm is the fixed policy radius for proximity-triggered
// notifications. It is independent of any caller-supplied discovery
// radius.
const FanoutRadiusKm = 20

// CounterpartyFinder looks up the users a trigger fans out to.
type CounterpartyFinder interface {
	FindByRole(ctx context.Context, role string) ([]userdomain.User, error)
}

// EventPublisher pushes a created notification to the realtime
// channel. Publishing is best-effort; polling remains the baseline.
type EventPublisher interface {
	NotificationCreated(ctx context.Context, n domain.Notification) error
}

// Engine creates one notification per qualifying recipient in response
// to a single triggering event. Triggers fire exactly once, at entity
// creation; fan-out is not deduplicated against prior notifications
// and has no recipient cap.
type Engine struct {
	users  CounterpartyFinder
	repo   domain.Repository
	events EventPublisher
	logger *util.Logger
}

func NewEngine(users CounterpartyFinder, repo domain.Repository, events EventPublisher, logger *util.Logger) *Engine {
	return &Engine{users: users, repo: repo, events: events, logger: logger}
}

// WorkerJoined notifies every farmer within the fan-out radius of a
// newly registered worker.
func (e *Engine) WorkerJoined(ctx context.Context, w userdomain.User) {
	instance := "FanoutEngine.WorkerJoined"

	farmers, err := e.users.FindByRole(ctx, userdomain.RoleFarmer)
	if err != nil {
		e.logger.Error(instance, fmt.Errorf("find farmers failed: %w", err))
		return
	}

	message := fmt.Sprintf("New worker %s joined near %s", w.Name, w.Location)
	sent := 0
	for _, farmer := range farmers {
		if geo.DistanceKm(w.Coord(), farmer.Coord()) > FanoutRadiusKm {
			continue
		}
		if e.deliver(ctx, farmer.ID, message, domain.TypeWorker) {
			sent++
		}
	}

	e.logger.Info(instance, fmt.Sprintf("worker %s triggered %d notification(s)", w.ID, sent))
}

// JobPosted notifies every worker within the fan-out radius of a newly
// posted job.
func (e *Engine) JobPosted(ctx context.Context, j jobdomain.Job) {
	instance := "FanoutEngine.JobPosted"

	workers, err := e.users.FindByRole(ctx, userdomain.RoleWorker)
	if err != nil {
		e.logger.Error(instance, fmt.Errorf("find workers failed: %w", err))
		return
	}

	message := fmt.Sprintf("New Job: %s at %s", j.WorkType, j.FarmerName)
	sent := 0
	for _, worker := range workers {
		if geo.DistanceKm(j.Coord(), worker.Coord()) > FanoutRadiusKm {
			continue
		}
		if e.deliver(ctx, worker.ID, message, domain.TypeJob) {
			sent++
		}
	}

	e.logger.Info(instance, fmt.Sprintf("job %s triggered %d notification(s)", j.ID, sent))
}

// deliver stores one notification and forwards it to the realtime
// channel. A delivery failure is logged, never propagated: fan-out
// must not fail the mutation that triggered it.
func (e *Engine) deliver(ctx context.Context, userID, message, category string) bool {
	instance := "FanoutEngine.deliver"

	id, err := util.GenerateUUID()
	if err != nil {
		e.logger.Error(instance, fmt.Errorf("generate notification id: %w", err))
		return false
	}

	n := domain.Notification{
		ID:        id,
		UserID:    userID,
		Message:   message,
		Type:      category,
		Read:      false,
		Timestamp: time.Now().UnixMilli(),
	}

	if err := e.repo.Insert(ctx, n); err != nil {
		e.logger.Error(instance, fmt.Errorf("insert notification for %s failed: %w", userID, err))
		return false
	}

	if e.events != nil {
		if err := e.events.NotificationCreated(ctx, n); err != nil {
			e.logger.Warn(instance, fmt.Sprintf("realtime push for %s failed: %v", userID, err))
		}
	}

	return true
}
