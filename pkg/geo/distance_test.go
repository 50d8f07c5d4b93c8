package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// Bangalore city center to Whitefield, roughly 15-17 km
	d := HaversineKm(12.9716, 77.5946, 12.9698, 77.7500)
	assert.InDelta(t, 16.8, d, 1.5)

	// identical points
	assert.InDelta(t, 0, HaversineKm(12.9716, 77.5946, 12.9716, 77.5946), 1e-9)
}

func TestPlanarDistanceM(t *testing.T) {
	// one thousandth of a degree of latitude is ~111m
	d := PlanarDistanceM(0.001, 0, 12.97)
	assert.InDelta(t, 111.3, d, 0.5)

	// longitude span shrinks with cos(lat)
	dEquator := PlanarDistanceM(0, 0.001, 0)
	dNorth := PlanarDistanceM(0, 0.001, 60)
	assert.Greater(t, dEquator, dNorth)

	assert.Equal(t, 0.0, PlanarDistanceM(0, 0, 45))
}
