package utils

import (
	"testing"

	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDistanceKm(t *testing.T) {
	// Manila city hall to Quezon City memorial circle, roughly 10 km
	a := models.Coordinates{Latitude: 14.5896, Longitude: 120.9814}
	b := models.Coordinates{Latitude: 14.6515, Longitude: 121.0493}

	distance := CalculateDistanceKm(a, b)
	assert.InDelta(t, 10.1, distance, 1.0)
}

func TestCalculateDistanceKm_SamePoint(t *testing.T) {
	p := models.Coordinates{Latitude: 14.5995, Longitude: 120.9842}
	assert.Equal(t, 0.0, CalculateDistanceKm(p, p))
}

func TestEncodeCoordinates_RoundTrip(t *testing.T) {
	p := models.Coordinates{Latitude: 14.5995, Longitude: 120.9842}

	hash := EncodeCoordinates(p, RouteGeohashPrecision)
	assert.Len(t, hash, RouteGeohashPrecision)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, p.Latitude, lat, 0.01)
	assert.InDelta(t, p.Longitude, lng, 0.01)
}
