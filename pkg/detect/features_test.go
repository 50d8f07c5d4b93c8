package detect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emergo.xyz/dispatch-service/pkg/models"
)

func fptr(v float64) *float64 { return &v }

// reading builds a SensorReading at base+offset seconds.
func reading(base time.Time, offsetSec float64, lat, lng float64, speed *float64, accel, gyro float64) models.SensorReading {
	return models.SensorReading{
		Lat:       lat,
		Lng:       lng,
		SpeedKmh:  speed,
		AccelX:    accel,
		GyroX:     gyro,
		Timestamp: base.Add(time.Duration(offsetSec * float64(time.Second))),
	}
}

func TestExtractEmptyWindow(t *testing.T) {
	assert.Nil(t, Extract(nil))
	assert.Nil(t, Extract([]models.SensorReading{}))
}

func TestExtractSpeedFeatures(t *testing.T) {
	base := time.Now()
	window := []models.SensorReading{
		reading(base, 0, 12.97, 77.59, fptr(40), 1, 0),
		reading(base, 2, 12.97, 77.59, fptr(38), 1, 0),
		reading(base, 4, 12.97, 77.59, fptr(10), 1, 0),
	}

	f := Extract(window)
	require.NotNil(t, f)

	assert.Equal(t, 40.0, f.MaxSpeed)
	assert.Equal(t, 10.0, f.MinSpeed)
	assert.Equal(t, 30.0, f.SpeedDrop)
	// last 3 speeds over (3-1)*2 = 4 elapsed seconds
	assert.InDelta(t, (40.0-10.0)/4.0, f.SpeedDropRate, 1e-9)
}

func TestExtractSpikes(t *testing.T) {
	base := time.Now()
	window := []models.SensorReading{
		{Lat: 12.97, Lng: 77.59, AccelX: 3, AccelY: 4, Timestamp: base},
		{Lat: 12.97, Lng: 77.59, GyroY: 5, GyroZ: 12, Timestamp: base.Add(2 * time.Second)},
	}

	f := Extract(window)
	require.NotNil(t, f)
	assert.InDelta(t, 5.0, f.AccelSpike, 1e-9)  // sqrt(3^2+4^2)
	assert.InDelta(t, 13.0, f.GyroSpike, 1e-9)  // sqrt(5^2+12^2)
}

func TestExtractSecondsStoppedRecentHalf(t *testing.T) {
	base := time.Now()
	// moving at first, then parked at one spot for the final 10s
	window := []models.SensorReading{
		reading(base, 0, 12.9700, 77.5900, fptr(40), 1, 0),
		reading(base, 2, 12.9710, 77.5910, fptr(38), 1, 0),
		reading(base, 4, 12.9720, 77.5920, fptr(2), 1, 0),
		reading(base, 9, 12.9720, 77.5920, fptr(1), 1, 0),
		reading(base, 14, 12.9720, 77.5920, fptr(0), 1, 0),
	}

	f := Extract(window)
	require.NotNil(t, f)
	assert.InDelta(t, 10.0, f.SecondsStopped, 1e-6)
	assert.Greater(t, f.LocationChangeM, StillnessRadiusM) // whole window moved
}

func TestExtractSecondsStoppedFullWindowFallback(t *testing.T) {
	base := time.Now()
	// a long standstill: same location for 12s, sampled unevenly so the
	// recent half alone has a single reading
	window := []models.SensorReading{
		reading(base, 0, 12.9720, 77.5920, fptr(0), 1, 0),
		reading(base, 12, 12.9720, 77.5920, fptr(0), 1, 0),
	}

	f := Extract(window)
	require.NotNil(t, f)
	assert.InDelta(t, 12.0, f.SecondsStopped, 1e-6)
	assert.Less(t, f.LocationChangeM, 1.0)
}

func TestExtractMovingWindowNotStopped(t *testing.T) {
	base := time.Now()
	window := []models.SensorReading{
		reading(base, 0, 12.9700, 77.5900, fptr(30), 1, 0),
		reading(base, 4, 12.9750, 77.5950, fptr(32), 1, 0),
		reading(base, 8, 12.9800, 77.6000, fptr(31), 1, 0),
		reading(base, 12, 12.9850, 77.6050, fptr(33), 1, 0),
	}

	f := Extract(window)
	require.NotNil(t, f)
	assert.Equal(t, 0.0, f.SecondsStopped)
}

func TestVectorOrder(t *testing.T) {
	f := &Features{
		SpeedDrop: 1, SpeedDropRate: 2, AccelSpike: 3, GyroSpike: 4,
		SecondsStopped: 5, LocationChangeM: 6, MaxSpeed: 7, MinSpeed: 8,
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, f.Vector())
}
