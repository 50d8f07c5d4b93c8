package detect

import (
	"math"
	"time"

	"emergo.xyz/dispatch-service/pkg/geo"
	"emergo.xyz/dispatch-service/pkg/models"
)

// StillnessRadiusM is the location-change bound below which the phone is
// considered stationary.
const StillnessRadiusM = 50.0

// Features is the fixed 8-dimensional vector extracted from a sensor window.
type Features struct {
	SpeedDrop       float64
	SpeedDropRate   float64
	AccelSpike      float64
	GyroSpike       float64
	SecondsStopped  float64
	LocationChangeM float64
	MaxSpeed        float64
	MinSpeed        float64
}

// Vector returns the features in their canonical order.
func (f *Features) Vector() []float64 {
	return []float64{
		f.SpeedDrop, f.SpeedDropRate, f.AccelSpike, f.GyroSpike,
		f.SecondsStopped, f.LocationChangeM, f.MaxSpeed, f.MinSpeed,
	}
}

func magnitude(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// Extract computes the feature vector over an oldest-first window of
// readings. Returns nil for an empty window.
func Extract(readings []models.SensorReading) *Features {
	if len(readings) == 0 {
		return nil
	}

	var speeds []float64
	for _, r := range readings {
		if r.SpeedKmh != nil {
			speeds = append(speeds, *r.SpeedKmh)
		}
	}

	var maxSpeed, minSpeed float64
	if len(speeds) > 0 {
		maxSpeed, minSpeed = speeds[0], speeds[0]
		for _, s := range speeds[1:] {
			maxSpeed = max(maxSpeed, s)
			minSpeed = min(minSpeed, s)
		}
	}
	speedDrop := maxSpeed - minSpeed

	// drop rate over the last up-to-3 speed samples, assuming the nominal
	// 2s sampling interval; floor the divisor to avoid division by zero
	var speedDropRate float64
	lastSpeeds := speeds
	if len(speeds) > 3 {
		lastSpeeds = speeds[len(speeds)-3:]
	}
	if len(lastSpeeds) >= 2 {
		elapsed := float64(len(lastSpeeds)-1) * 2
		speedDropRate = (lastSpeeds[0] - lastSpeeds[len(lastSpeeds)-1]) / max(0.1, elapsed)
	}

	var accelSpike, gyroSpike float64
	for _, r := range readings {
		accelSpike = max(accelSpike, magnitude(r.AccelX, r.AccelY, r.AccelZ))
		gyroSpike = max(gyroSpike, magnitude(r.GyroX, r.GyroY, r.GyroZ))
	}

	windowSpan := span(readings)
	locationChangeM := locationChange(readings)

	// seconds_stopped looks at the most recent half of the window: if the
	// phone barely moved in that half, use its time span. Fall back to the
	// full span when the whole window is a long standstill.
	var secondsStopped float64
	if len(readings) >= 2 {
		half := max(len(readings)/2, 1)
		recent := readings[half:]
		if len(recent) >= 2 && locationChange(recent) < StillnessRadiusM {
			secondsStopped = span(recent)
		} else if locationChangeM < StillnessRadiusM && windowSpan >= 10 {
			secondsStopped = windowSpan
		}
	}

	return &Features{
		SpeedDrop:       speedDrop,
		SpeedDropRate:   speedDropRate,
		AccelSpike:      accelSpike,
		GyroSpike:       gyroSpike,
		SecondsStopped:  secondsStopped,
		LocationChangeM: locationChangeM,
		MaxSpeed:        maxSpeed,
		MinSpeed:        minSpeed,
	}
}

// span returns the elapsed seconds between the earliest and latest timestamps.
func span(readings []models.SensorReading) float64 {
	if len(readings) < 2 {
		return 0
	}
	earliest, latest := readings[0].Timestamp, readings[0].Timestamp
	for _, r := range readings[1:] {
		if r.Timestamp.Before(earliest) {
			earliest = r.Timestamp
		}
		if r.Timestamp.After(latest) {
			latest = r.Timestamp
		}
	}
	return latest.Sub(earliest).Seconds()
}

// locationChange returns the planar distance in meters between the extreme
// lat/lng pairs seen in the window.
func locationChange(readings []models.SensorReading) float64 {
	if len(readings) == 0 {
		return 0
	}
	minLat, maxLat := readings[0].Lat, readings[0].Lat
	minLng, maxLng := readings[0].Lng, readings[0].Lng
	var latSum float64
	for _, r := range readings {
		minLat = min(minLat, r.Lat)
		maxLat = max(maxLat, r.Lat)
		minLng = min(minLng, r.Lng)
		maxLng = max(maxLng, r.Lng)
		latSum += r.Lat
	}
	avgLat := latSum / float64(len(readings))
	return geo.PlanarDistanceM(maxLat-minLat, maxLng-minLng, avgLat)
}

// WindowMaxAge bounds how far back a detection window reaches.
const WindowMaxAge = 120 * time.Second

// WindowMaxSamples bounds how many readings a detection window holds.
const WindowMaxSamples = 100
