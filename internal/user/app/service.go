package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agri-connect/internal/shared/apperrors"
	"agri-connect/internal/shared/geo"
	"agri-connect/internal/shared/util"
	"agri-connect/internal/shared/validation"
	"agri-connect/internal/user/domain"
)

// Fanout receives the new-worker trigger. Fired exactly once, at
// first creation of a worker; returning logins never re-trigger it.
type Fanout interface {
	WorkerJoined(ctx context.Context, u domain.User)
}

// Geocoder resolves place labels best-effort. May be nil.
type Geocoder interface {
	ReverseLabel(ctx context.Context, coord geo.Coordinate) string
	Forward(ctx context.Context, place string) (geo.Coordinate, bool)
}

type UserService struct {
	repo     domain.Repository
	fanout   Fanout
	geocoder Geocoder
	logger   *util.Logger
}

func NewUserService(repo domain.Repository, fanout Fanout, geocoder Geocoder, logger *util.Logger) *UserService {
	return &UserService{repo: repo, fanout: fanout, geocoder: geocoder, logger: logger}
}

// Upsert implements login/signup keyed on phone number. A returning
// phone merges the supplied fields into the existing record, keeping
// its id and availability unless explicitly overridden. A fresh phone
// creates the user and, for workers, triggers notification fan-out.
// The created flag reports which path was taken.
func (s *UserService) Upsert(ctx context.Context, req domain.UpsertRequest) (*domain.User, bool, error) {
	instance := "UserService.Upsert"
	start := time.Now()

	if err := validation.ValidateStringNotEmpty(req.Phone, "phone"); err != nil {
		return nil, false, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := validation.ValidateRole(req.Role); err != nil {
		return nil, false, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if req.Lat != nil || req.Lng != nil {
		if req.Lat == nil || req.Lng == nil {
			return nil, false, fmt.Errorf("%w: lat and lng must be supplied together", apperrors.ErrValidation)
		}
		if err := validation.ValidateCoordinates(*req.Lat, *req.Lng); err != nil {
			return nil, false, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	existing, err := s.repo.FindByPhone(ctx, req.Phone)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Error(instance, fmt.Errorf("lookup by phone failed: %w", err))
		return nil, false, err
	}

	if existing != nil {
		updated, err := s.repo.Update(ctx, existing.ID, domain.Update{
			Name:      req.Name,
			Location:  req.Location,
			Lat:       req.Lat,
			Lng:       req.Lng,
			Available: req.Available,
		})
		if err != nil {
			s.logger.Error(instance, fmt.Errorf("merge update failed: %w", err))
			return nil, false, err
		}
		s.logger.OK(instance, fmt.Sprintf("returning user logged in [user_id=%s, phone=%s]", updated.ID, updated.Phone))
		return updated, false, nil
	}

	id, err := util.GenerateUUID()
	if err != nil {
		return nil, false, fmt.Errorf("generate user id: %w", err)
	}

	user := domain.User{
		ID:        id,
		Name:      "Unknown",
		Phone:     req.Phone,
		Role:      req.Role,
		Available: true,
	}
	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Location != nil {
		user.Location = *req.Location
	}

	coord := s.resolveCoordinate(ctx, req)
	user.Lat = coord.Lat
	user.Lng = coord.Lng

	if user.Location == "" && s.geocoder != nil {
		user.Location = s.geocoder.ReverseLabel(ctx, coord)
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		s.logger.Error(instance, fmt.Errorf("insert user failed: %w", err))
		return nil, false, err
	}

	if user.Role == domain.RoleWorker && s.fanout != nil {
		s.fanout.WorkerJoined(ctx, user)
	}

	s.logger.OK(instance, fmt.Sprintf("new user registered [user_id=%s, role=%s, duration_ms=%d]",
		user.ID, user.Role, time.Since(start).Milliseconds()))

	return &user, true, nil
}

// resolveCoordinate picks the signup coordinate: supplied values win,
// then a forward geocode of the location label, then the documented
// default. (0,0) sent explicitly is kept as-is.
func (s *UserService) resolveCoordinate(ctx context.Context, req domain.UpsertRequest) geo.Coordinate {
	if req.Lat != nil && req.Lng != nil {
		return geo.Coordinate{Lat: *req.Lat, Lng: *req.Lng}
	}
	if req.Location != nil && *req.Location != "" && s.geocoder != nil {
		if coord, ok := s.geocoder.Forward(ctx, *req.Location); ok {
			return coord
		}
	}
	return geo.DefaultCoordinate
}

// UpdateUser applies a partial merge-update by id. No notification is
// emitted for profile changes.
func (s *UserService) UpdateUser(ctx context.Context, id string, upd domain.Update) (*domain.User, error) {
	instance := "UserService.UpdateUser"

	if upd.Lat != nil || upd.Lng != nil {
		if upd.Lat == nil || upd.Lng == nil {
			return nil, fmt.Errorf("%w: lat and lng must be updated together", apperrors.ErrValidation)
		}
		if err := validation.ValidateCoordinates(*upd.Lat, *upd.Lng); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	user, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error(instance, fmt.Errorf("update user %s failed: %w", id, err))
		}
		return nil, err
	}

	s.logger.Info(instance, fmt.Sprintf("user updated [user_id=%s]", id))
	return user, nil
}

// LookupByPhone returns the user registered with the phone number.
func (s *UserService) LookupByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if err := validation.ValidateStringNotEmpty(phone, "phone"); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return s.repo.FindByPhone(ctx, phone)
}

// ListWorkers returns distance-annotated workers within radiusKm of
// the origin, sorted by the given key.
func (s *UserService) ListWorkers(ctx context.Context, origin geo.Coordinate, radiusKm float64, key geo.SortKey) ([]domain.WorkerView, error) {
	if !origin.Valid() {
		return nil, fmt.Errorf("%w: invalid origin coordinates", apperrors.ErrValidation)
	}

	workers, err := s.repo.FindByRole(ctx, domain.RoleWorker)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}

	matches := geo.Nearby(workers, origin, radiusKm, key)
	views := make([]domain.WorkerView, 0, len(matches))
	for _, m := range matches {
		views = append(views, domain.WorkerView{User: m.Item, Distance: m.DistanceKm})
	}
	return views, nil
}
