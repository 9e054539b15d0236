package domain

import (
	"context"

	"agri-connect/internal/shared/geo"
)

const (
	RoleFarmer   = "FARMER"
	RoleWorker   = "WORKER"
	RoleProvider = "PROVIDER"
)

// User is a marketplace participant. Phone is the natural dedup key
// for upsert; ID is assigned once at creation and never reused. Role
// is immutable after creation. Available is meaningful for workers
// only and defaults to true.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Role      string  `json:"role"`
	Location  string  `json:"location"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Available bool    `json:"available"`
	Rating    float64 `json:"rating"`
}

func (u User) Coord() geo.Coordinate { return geo.Coordinate{Lat: u.Lat, Lng: u.Lng} }
func (u User) Score() float64        { return u.Rating }

// Update is a merge-update payload. Nil fields are left untouched;
// non-nil fields overwrite, including explicit zero values such as
// available=false. Merging is by key presence, never by truthiness.
type Update struct {
	Name      *string  `json:"name"`
	Location  *string  `json:"location"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Available *bool    `json:"available"`
}

// UpsertRequest is the login/signup payload. Phone and Role are
// required; everything else is optional and merged by presence on a
// returning user.
type UpsertRequest struct {
	Name      *string  `json:"name"`
	Phone     string   `json:"phone"`
	Role      string   `json:"role"`
	Location  *string  `json:"location"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Available *bool    `json:"available"`
}

// WorkerView is a distance-annotated worker in a discovery result.
type WorkerView struct {
	User
	Distance float64 `json:"distance"`
}

type Repository interface {
	Insert(ctx context.Context, u User) error
	Update(ctx context.Context, id string, upd Update) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByRole(ctx context.Context, role string) ([]User, error)
}
