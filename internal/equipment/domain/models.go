package domain

import (
	"context"

	"agri-connect/internal/shared/geo"
)

// Equipment is a rentable machine owned by a provider. Availability
// is a display attribute in discovery results, never a filter, and is
// true at creation. Rating starts at zero.
type Equipment struct {
	ID           string  `json:"id"`
	ProviderID   string  `json:"providerId"`
	Type         string  `json:"type"`
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	Model        string  `json:"model,omitempty"`
	Year         string  `json:"year,omitempty"`
	RentPerDay   float64 `json:"rentPerDay"`
	Image        string  `json:"image"`
	Available    bool    `json:"available"`
	Location     string  `json:"location"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Rating       float64 `json:"rating"`
}

func (e Equipment) Coord() geo.Coordinate { return geo.Coordinate{Lat: e.Lat, Lng: e.Lng} }
func (e Equipment) Score() float64        { return e.Rating }

// AddRequest carries the fields a provider supplies when listing
// equipment.
type AddRequest struct {
	ProviderID   string  `json:"providerId"`
	Type         string  `json:"type"`
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer"`
	Model        string  `json:"model"`
	Year         string  `json:"year"`
	RentPerDay   float64 `json:"rentPerDay"`
	Image        string  `json:"image"`
	Location     string  `json:"location"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

// EquipmentView is a distance-annotated equipment entry in a
// discovery result.
type EquipmentView struct {
	Equipment
	Distance float64 `json:"distance"`
}

type Repository interface {
	Insert(ctx context.Context, e Equipment) error
	FindByID(ctx context.Context, id string) (*Equipment, error)
	FindAll(ctx context.Context) ([]Equipment, error)
}
