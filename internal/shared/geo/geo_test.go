package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmSymmetry(t *testing.T) {
	pairs := [][2]Coordinate{
		{{Lat: 28.6139, Lng: 77.2090}, {Lat: 19.0760, Lng: 72.8777}},
		{{Lat: 12.97, Lng: 77.59}, {Lat: 12.99, Lng: 77.60}},
		{{Lat: -33.8688, Lng: 151.2093}, {Lat: 51.5074, Lng: -0.1278}},
		{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 180}},
	}

	for _, p := range pairs {
		assert.Equal(t, DistanceKm(p[0], p[1]), DistanceKm(p[1], p[0]))
	}
}

func TestDistanceKmZeroIdentity(t *testing.T) {
	coords := []Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 28.6139, Lng: 77.2090},
		{Lat: -90, Lng: 180},
	}

	for _, c := range coords {
		assert.Equal(t, 0.0, DistanceKm(c, c))
	}
}

func TestDistanceKmDelhiMumbai(t *testing.T) {
	delhi := Coordinate{Lat: 28.6139, Lng: 77.2090}
	mumbai := Coordinate{Lat: 19.0760, Lng: 72.8777}

	d := DistanceKm(delhi, mumbai)
	assert.GreaterOrEqual(t, d, 1153.0)
	assert.LessOrEqual(t, d, 1163.0)
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, Coordinate{Lat: 20.5937, Lng: 78.9629}.Valid())
	assert.True(t, Coordinate{Lat: -90, Lng: 180}.Valid())
	assert.False(t, Coordinate{Lat: 91, Lng: 0}.Valid())
	assert.False(t, Coordinate{Lat: 0, Lng: -181}.Valid())
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 2.5, Round1(2.47))
	assert.Equal(t, 2.4, Round1(2.44))
	assert.Equal(t, 0.0, Round1(0.04))
}
