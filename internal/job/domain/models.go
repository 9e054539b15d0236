package domain

import (
	"context"

	"agri-connect/internal/shared/geo"
)

const (
	StatusOpen      = "OPEN"
	StatusFilled    = "FILLED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// Job is a work posting owned by the farmer who created it. The
// farmer name is a denormalized copy taken at posting time; it is not
// re-synced if the farmer later renames. Rating starts at zero and no
// mutation in the current flows populates it.
type Job struct {
	ID          string  `json:"id"`
	FarmerID    string  `json:"farmerId"`
	FarmerName  string  `json:"farmerName"`
	WorkType    string  `json:"workType"`
	Wage        int     `json:"wage"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Status      string  `json:"status"`
	Rating      float64 `json:"rating"`
}

func (j Job) Coord() geo.Coordinate { return geo.Coordinate{Lat: j.Lat, Lng: j.Lng} }
func (j Job) Score() float64        { return j.Rating }

// PostRequest carries the fields a farmer supplies when posting a job.
// Status is not accepted from the caller; every job starts OPEN.
type PostRequest struct {
	FarmerID    string  `json:"farmerId"`
	FarmerName  string  `json:"farmerName"`
	WorkType    string  `json:"workType"`
	Wage        int     `json:"wage"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// JobView is a distance-annotated job in a discovery result.
type JobView struct {
	Job
	Distance float64 `json:"distance"`
}

type Repository interface {
	Insert(ctx context.Context, j Job) error
	UpdateStatus(ctx context.Context, id, status string) (*Job, error)
	FindByID(ctx context.Context, id string) (*Job, error)
	FindByFarmer(ctx context.Context, farmerID string) ([]Job, error)
	FindByStatus(ctx context.Context, status string) ([]Job, error)
}
