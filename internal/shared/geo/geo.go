package geo

import (
	"fmt"
	"math"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// DefaultCoordinate is the documented fallback location (geographic
// center of India) used when signup or geocoding produces no usable
// coordinates. (0,0) is a valid coordinate and is never special-cased.
var DefaultCoordinate = Coordinate{Lat: 20.5937, Lng: 78.9629}

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// IsZero reports whether the coordinate is the unset (0,0) value.
// Callers deciding on fallbacks use this; distance math never does.
func (c Coordinate) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lng)
}

func toRadians(degree float64) float64 {
	return degree * math.Pi / 180
}

// DistanceKm computes the great-circle distance between two coordinates
// using the haversine formula.
func DistanceKm(a, b Coordinate) float64 {
	phi1 := toRadians(a.Lat)
	phi2 := toRadians(b.Lat)
	deltaPhi := toRadians(b.Lat - a.Lat)
	deltaLambda := toRadians(b.Lng - a.Lng)

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Round1 rounds a distance to one decimal place for display stability.
func Round1(km float64) float64 {
	return math.Round(km*10) / 10
}
