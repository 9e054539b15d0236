package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPoint struct {
	id     string
	coord  Coordinate
	rating float64
}

func (p testPoint) Coord() Coordinate { return p.coord }
func (p testPoint) Score() float64    { return p.rating }

func TestNearbyRadiusBoundaryInclusive(t *testing.T) {
	origin := Coordinate{Lat: 12.97, Lng: 77.59}
	point := testPoint{id: "a", coord: Coordinate{Lat: 12.99, Lng: 77.60}}

	// The boundary applies to the rounded distance the caller sees.
	d := Round1(DistanceKm(origin, point.coord))

	included := Nearby([]testPoint{point}, origin, d, SortNearest)
	require.Len(t, included, 1)
	assert.Equal(t, d, included[0].DistanceKm)

	excluded := Nearby([]testPoint{point}, origin, d-0.1, SortNearest)
	assert.Empty(t, excluded)
}

func TestNearbySortStability(t *testing.T) {
	origin := Coordinate{Lat: 12.97, Lng: 77.59}
	// b and c sit at the same coordinate, so the same distance.
	points := []testPoint{
		{id: "a", coord: Coordinate{Lat: 12.99, Lng: 77.60}},
		{id: "b", coord: Coordinate{Lat: 12.975, Lng: 77.592}},
		{id: "c", coord: Coordinate{Lat: 12.975, Lng: 77.592}},
	}

	first := Nearby(points, origin, 10, SortNearest)
	second := Nearby(points, origin, 10, SortNearest)

	require.Len(t, first, 3)
	for i := range first {
		assert.Equal(t, first[i].Item.id, second[i].Item.id)
	}
	// Ties keep input order.
	assert.Equal(t, "b", first[0].Item.id)
	assert.Equal(t, "c", first[1].Item.id)
}

func TestNearbySortNearest(t *testing.T) {
	origin := Coordinate{Lat: 12.97, Lng: 77.59}
	points := []testPoint{
		{id: "far", coord: Coordinate{Lat: 13.05, Lng: 77.65}},
		{id: "near", coord: Coordinate{Lat: 12.975, Lng: 77.592}},
	}

	matches := Nearby(points, origin, 50, SortNearest)
	require.Len(t, matches, 2)
	assert.Equal(t, "near", matches[0].Item.id)
	assert.Equal(t, "far", matches[1].Item.id)
}

func TestNearbySortByRating(t *testing.T) {
	origin := Coordinate{Lat: 12.97, Lng: 77.59}
	points := []testPoint{
		{id: "low", coord: Coordinate{Lat: 12.975, Lng: 77.592}, rating: 2.0},
		{id: "high", coord: Coordinate{Lat: 13.00, Lng: 77.61}, rating: 4.5},
	}

	matches := Nearby(points, origin, 50, SortByRating)
	require.Len(t, matches, 2)
	assert.Equal(t, "high", matches[0].Item.id)
}

func TestNearbyNegativeRadius(t *testing.T) {
	origin := Coordinate{Lat: 12.97, Lng: 77.59}
	points := []testPoint{{id: "a", coord: origin}}

	assert.Empty(t, Nearby(points, origin, -1, SortNearest))
}
