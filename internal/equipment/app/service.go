package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agri-connect/internal/equipment/domain"
	"agri-connect/internal/shared/ai"
	"agri-connect/internal/shared/apperrors"
	"agri-connect/internal/shared/geo"
	"agri-connect/internal/shared/util"
	"agri-connect/internal/shared/validation"
)

type EquipmentService struct {
	repo      domain.Repository
	generator ai.Generator
	logger    *util.Logger
}

func NewEquipmentService(repo domain.Repository, generator ai.Generator, logger *util.Logger) *EquipmentService {
	return &EquipmentService{repo: repo, generator: generator, logger: logger}
}

// Add lists a piece of equipment for a provider. No notification
// fan-out exists for new equipment.
func (s *EquipmentService) Add(ctx context.Context, req domain.AddRequest) (*domain.Equipment, error) {
	instance := "EquipmentService.Add"
	start := time.Now()

	if err := validation.ValidateStringNotEmpty(req.ProviderID, "providerId"); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := validation.ValidateStringNotEmpty(req.Name, "name"); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := validation.ValidateEquipmentType(strings.ToUpper(req.Type)); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := validation.ValidateNonNegativeFloat(req.RentPerDay, "rentPerDay"); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := validation.ValidateCoordinates(req.Lat, req.Lng); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	id, err := util.GenerateUUID()
	if err != nil {
		return nil, fmt.Errorf("generate equipment id: %w", err)
	}

	equipment := domain.Equipment{
		ID:           id,
		ProviderID:   req.ProviderID,
		Type:         strings.ToUpper(req.Type),
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		Year:         req.Year,
		RentPerDay:   req.RentPerDay,
		Image:        req.Image,
		Available:    true,
		Location:     req.Location,
		Lat:          req.Lat,
		Lng:          req.Lng,
		Rating:       0,
	}
	if equipment.Image == "" && s.generator != nil {
		equipment.Image = s.generator.EquipmentImage(ctx, equipment.Type, equipment.Name)
	}

	if err := s.repo.Insert(ctx, equipment); err != nil {
		s.logger.Error(instance, fmt.Errorf("insert equipment failed: %w", err))
		return nil, err
	}

	s.logger.OK(instance, fmt.Sprintf("equipment listed [equipment_id=%s, type=%s, duration_ms=%d]",
		equipment.ID, equipment.Type, time.Since(start).Milliseconds()))

	return &equipment, nil
}

// ListNearby returns all equipment within radiusKm, distance-annotated
// and sorted. Availability does not filter results; it is displayed
// as-is.
func (s *EquipmentService) ListNearby(ctx context.Context, origin geo.Coordinate, radiusKm float64, key geo.SortKey) ([]domain.EquipmentView, error) {
	if !origin.Valid() {
		return nil, fmt.Errorf("%w: invalid origin coordinates", apperrors.ErrValidation)
	}

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}

	matches := geo.Nearby(all, origin, radiusKm, key)
	views := make([]domain.EquipmentView, 0, len(matches))
	for _, m := range matches {
		views = append(views, domain.EquipmentView{Equipment: m.Item, Distance: m.DistanceKm})
	}
	return views, nil
}

// MaintenanceTips returns best-effort maintenance tips for a piece of
// equipment. Generation failures fall back to a static message.
func (s *EquipmentService) MaintenanceTips(ctx context.Context, id string) (string, error) {
	equipment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("EquipmentService.MaintenanceTips", fmt.Errorf("find equipment %s failed: %w", id, err))
		}
		return "", err
	}

	if s.generator == nil {
		return ai.FallbackTips, nil
	}
	return s.generator.MaintenanceTips(ctx, equipment.Name), nil
}
