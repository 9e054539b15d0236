package util

import (
	"errors"
	"net/http"
	"strconv"

	"agri-connect/internal/shared/geo"
)

// DefaultRadiusKm is the discovery radius used when a caller omits one.
const DefaultRadiusKm = 10

// ParseGeoQuery reads lat, lng and radius query parameters. Origin
// coordinates are required and must be valid; the radius defaults to
// DefaultRadiusKm and is passed through as-is otherwise (a negative
// radius yields an empty result set downstream).
func ParseGeoQuery(r *http.Request) (geo.Coordinate, float64, error) {
	q := r.URL.Query()

	latStr := q.Get("lat")
	lngStr := q.Get("lng")
	if latStr == "" || lngStr == "" {
		return geo.Coordinate{}, 0, errors.New("lat and lng are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return geo.Coordinate{}, 0, errors.New("invalid lat")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return geo.Coordinate{}, 0, errors.New("invalid lng")
	}

	origin := geo.Coordinate{Lat: lat, Lng: lng}
	if !origin.Valid() {
		return geo.Coordinate{}, 0, errors.New("coordinates out of range")
	}

	radius := float64(DefaultRadiusKm)
	if radiusStr := q.Get("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return geo.Coordinate{}, 0, errors.New("invalid radius")
		}
	}

	return origin, radius, nil
}

// ParseSortKey reads the optional sort query parameter.
func ParseSortKey(r *http.Request) geo.SortKey {
	if r.URL.Query().Get("sort") == "rating" {
		return geo.SortByRating
	}
	return geo.SortNearest
}
