package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

const (
	EarthRadiusKm   = 6371.0
	metersPerDegLat = 111320.0
)

// HaversineKm returns the great-circle distance between two points in km.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// PlanarDistanceM is a cheap flat-earth approximation in meters, good enough
// for the sub-kilometer displacements seen in a sensor window.
func PlanarDistanceM(latSpan, lngSpan, avgLat float64) float64 {
	dLat := latSpan * metersPerDegLat
	dLng := lngSpan * metersPerDegLat * math.Cos(avgLat*math.Pi/180)
	return math.Sqrt(dLat*dLat + dLng*dLng)
}
