package app

import (
	"context"
	"fmt"

	"agri-connect/internal/notify/domain"
	"agri-connect/internal/shared/apperrors"
	"agri-connect/internal/shared/util"
	"agri-connect/internal/shared/validation"
)

type NotificationService struct {
	repo   domain.Repository
	logger *util.Logger
}

func NewNotificationService(repo domain.Repository, logger *util.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	if err := validation.ValidateStringNotEmpty(userID, "userId"); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return s.repo.ListByUser(ctx, userID)
}
