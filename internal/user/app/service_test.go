package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri-connect/internal/shared/apperrors"
	"agri-connect/internal/shared/geo"
	"agri-connect/internal/shared/util"
	"agri-connect/internal/user/domain"
	"agri-connect/internal/user/repo"
)

type fanoutRecorder struct {
	joined []domain.User
}

func (f *fanoutRecorder) WorkerJoined(ctx context.Context, u domain.User) {
	f.joined = append(f.joined, u)
}

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }
func boolPtr(b bool) *bool      { return &b }

func newTestService() (*UserService, *fanoutRecorder) {
	fanout := &fanoutRecorder{}
	return NewUserService(repo.NewMemoryRepo(), fanout, nil, util.New()), fanout
}

func TestUpsertCreatesThenMerges(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	first, created, err := service.Upsert(ctx, domain.UpsertRequest{
		Name:  strPtr("Ramesh"),
		Phone: "9876500001",
		Role:  domain.RoleWorker,
		Lat:   f64Ptr(12.97),
		Lng:   f64Ptr(77.59),
	})
	require.NoError(t, err)
	require.True(t, created)
	require.NotEmpty(t, first.ID)
	assert.True(t, first.Available)

	second, created, err := service.Upsert(ctx, domain.UpsertRequest{
		Name:  strPtr("Ramesh Kumar"),
		Phone: "9876500001",
		Role:  domain.RoleWorker,
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ramesh Kumar", second.Name)
	assert.Equal(t, first.Lat, second.Lat)
	assert.True(t, second.Available)
}

func TestUpsertExplicitAvailabilityOverride(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, _, err := service.Upsert(ctx, domain.UpsertRequest{
		Phone: "9876500002",
		Role:  domain.RoleWorker,
		Lat:   f64Ptr(12.97),
		Lng:   f64Ptr(77.59),
	})
	require.NoError(t, err)

	user, created, err := service.Upsert(ctx, domain.UpsertRequest{
		Phone:     "9876500002",
		Role:      domain.RoleWorker,
		Available: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.False(t, user.Available)
}

func TestUpsertFanoutFiresOnlyOnFirstCreation(t *testing.T) {
	service, fanout := newTestService()
	ctx := context.Background()

	_, _, err := service.Upsert(ctx, domain.UpsertRequest{
		Name:  strPtr("Sita"),
		Phone: "9876500003",
		Role:  domain.RoleWorker,
		Lat:   f64Ptr(12.97),
		Lng:   f64Ptr(77.59),
	})
	require.NoError(t, err)
	require.Len(t, fanout.joined, 1)
	assert.Equal(t, "Sita", fanout.joined[0].Name)

	_, _, err = service.Upsert(ctx, domain.UpsertRequest{
		Phone: "9876500003",
		Role:  domain.RoleWorker,
	})
	require.NoError(t, err)
	assert.Len(t, fanout.joined, 1)

	_, _, err = service.Upsert(ctx, domain.UpsertRequest{
		Phone: "9876500004",
		Role:  domain.RoleFarmer,
		Lat:   f64Ptr(12.97),
		Lng:   f64Ptr(77.59),
	})
	require.NoError(t, err)
	assert.Len(t, fanout.joined, 1, "farmer signup must not trigger worker fan-out")
}

func TestUpsertDefaultsNameAndCoordinate(t *testing.T) {
	service, _ := newTestService()

	user, created, err := service.Upsert(context.Background(), domain.UpsertRequest{
		Phone: "9876500005",
		Role:  domain.RoleFarmer,
	})
	require.NoError(t, err)
	require.True(t, created)
	assert.Equal(t, "Unknown", user.Name)
	assert.Equal(t, geo.DefaultCoordinate.Lat, user.Lat)
	assert.Equal(t, geo.DefaultCoordinate.Lng, user.Lng)
}

func TestUpsertValidation(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, _, err := service.Upsert(ctx, domain.UpsertRequest{Role: domain.RoleWorker})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, _, err = service.Upsert(ctx, domain.UpsertRequest{Phone: "9876500006", Role: "MANAGER"})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, _, err = service.Upsert(ctx, domain.UpsertRequest{
		Phone: "9876500007",
		Role:  domain.RoleWorker,
		Lat:   f64Ptr(123.0),
		Lng:   f64Ptr(77.59),
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestUpsertRejectsLoneCoordinate(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, _, err := service.Upsert(ctx, domain.UpsertRequest{
		Phone: "9876500020",
		Role:  domain.RoleWorker,
		Lng:   f64Ptr(77.59),
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	created, _, err := service.Upsert(ctx, domain.UpsertRequest{
		Phone: "9876500021",
		Role:  domain.RoleWorker,
		Lat:   f64Ptr(12.97),
		Lng:   f64Ptr(77.59),
	})
	require.NoError(t, err)

	// A returning login must not shift one axis of the stored location.
	_, _, err = service.Upsert(ctx, domain.UpsertRequest{
		Phone: "9876500021",
		Role:  domain.RoleWorker,
		Lat:   f64Ptr(13.50),
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	stored, err := service.LookupByPhone(ctx, "9876500021")
	require.NoError(t, err)
	assert.Equal(t, created.Lat, stored.Lat)
	assert.Equal(t, created.Lng, stored.Lng)
}

func TestUpdateUserRequiresBothCoordinates(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	user, _, err := service.Upsert(ctx, domain.UpsertRequest{
		Phone: "9876500008",
		Role:  domain.RoleWorker,
		Lat:   f64Ptr(12.97),
		Lng:   f64Ptr(77.59),
	})
	require.NoError(t, err)

	_, err = service.UpdateUser(ctx, user.ID, domain.Update{Lat: f64Ptr(13.0)})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	updated, err := service.UpdateUser(ctx, user.ID, domain.Update{Lat: f64Ptr(13.0), Lng: f64Ptr(77.6)})
	require.NoError(t, err)
	assert.Equal(t, 13.0, updated.Lat)
}

func TestListWorkersFiltersByRadius(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, _, err := service.Upsert(ctx, domain.UpsertRequest{
		Name: strPtr("Near"), Phone: "9876500010", Role: domain.RoleWorker,
		Lat: f64Ptr(12.99), Lng: f64Ptr(77.60),
	})
	require.NoError(t, err)
	_, _, err = service.Upsert(ctx, domain.UpsertRequest{
		Name: strPtr("Far"), Phone: "9876500011", Role: domain.RoleWorker,
		Lat: f64Ptr(13.50), Lng: f64Ptr(77.59),
	})
	require.NoError(t, err)
	_, _, err = service.Upsert(ctx, domain.UpsertRequest{
		Name: strPtr("Boss"), Phone: "9876500012", Role: domain.RoleFarmer,
		Lat: f64Ptr(12.97), Lng: f64Ptr(77.59),
	})
	require.NoError(t, err)

	views, err := service.ListWorkers(ctx, geo.Coordinate{Lat: 12.97, Lng: 77.59}, 10, geo.SortNearest)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Near", views[0].Name)
	assert.InDelta(t, 2.5, views[0].Distance, 0.5)

	_, err = service.ListWorkers(ctx, geo.Coordinate{Lat: 200, Lng: 77.59}, 10, geo.SortNearest)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}
