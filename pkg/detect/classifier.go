package detect

import (
	"emergo.xyz/dispatch-service/pkg/models"
)

// Verdict is the classification result for a sensor window.
type Verdict struct {
	Accident   bool
	Confidence float64
}

// Model scores a feature vector and returns the accident-class probability.
// A trained model is strictly an accelerant: when absent or unsure, the rule
// cascade below is the system of record.
type Model interface {
	ProbAccident(vector []float64) (float64, error)
}

// MinModelSamples is the minimum window size before a trained model is
// consulted; tiny windows produce too many false positives.
const MinModelSamples = 3

// Classifier evaluates sensor windows. Model is optional and injected once
// at startup.
type Classifier struct {
	Model Model
}

func NewClassifier(model Model) *Classifier {
	return &Classifier{Model: model}
}

// Predict classifies a window. shakeStop is the client-asserted shake+stop
// flag and short-circuits everything else.
func (c *Classifier) Predict(readings []models.SensorReading, shakeStop bool) Verdict {
	if shakeStop {
		return Verdict{Accident: true, Confidence: 0.95}
	}

	if c.Model != nil && len(readings) >= MinModelSamples {
		if feat := Extract(readings); feat != nil {
			if p, err := c.Model.ProbAccident(feat.Vector()); err == nil && p >= 0.5 {
				return Verdict{Accident: true, Confidence: p}
			}
		}
	}

	return RulePredict(Extract(readings), shakeStop)
}

// RulePredict is the deterministic rule cascade; rules are evaluated in
// priority order and the first hit wins.
func RulePredict(f *Features, shakeStop bool) Verdict {
	if shakeStop {
		return Verdict{Accident: true, Confidence: 0.95}
	}
	if f == nil {
		return Verdict{}
	}

	still := f.LocationChangeM < StillnessRadiusM

	// shake then stop: impact-level accel followed by a sustained standstill
	if f.AccelSpike >= 9.5 && f.SecondsStopped >= 8 && still {
		return Verdict{Accident: true, Confidence: 0.9}
	}

	// rollover signature: extreme rotation plus a hard linear spike
	if f.GyroSpike >= 50 && f.AccelSpike >= 10 {
		return Verdict{Accident: true, Confidence: 0.9}
	}

	// full signature: the vehicle was moving, lost speed, took both spikes,
	// and has been stopped for 10s
	if f.MaxSpeed >= 1 && f.SpeedDrop >= 1 && f.AccelSpike >= 5 &&
		f.GyroSpike >= 15 && f.SecondsStopped >= 10 {
		return Verdict{Accident: true, Confidence: 0.9}
	}

	// relaxed combined signature, lower confidence
	if f.GyroSpike >= 10 && f.AccelSpike >= 5 && f.SecondsStopped >= 8 && still {
		return Verdict{Accident: true, Confidence: 0.75}
	}

	// vehicle collision: large absolute speed lost fast with a hard impact,
	// stillness not required (the vehicle may still be rolling)
	if f.MaxSpeed >= 25 && f.SpeedDrop >= 20 && f.AccelSpike >= 10 {
		return Verdict{Accident: true, Confidence: 0.85}
	}

	return Verdict{}
}

// TriggerReasons derives the ordered tag list persisted on an alert.
func TriggerReasons(f *Features, shakeStop bool) []string {
	var reasons []string
	if f != nil {
		if f.AccelSpike >= 11 && f.SecondsStopped >= 10 {
			reasons = append(reasons, "shake_and_stop")
		}
		if f.GyroSpike >= 50 && f.AccelSpike >= 10 {
			reasons = append(reasons, "high_impact")
		}
		if f.MaxSpeed >= 1 && f.SpeedDrop >= 1 {
			reasons = append(reasons, "speed_drop")
		}
		if f.AccelSpike >= 5 {
			reasons = append(reasons, "accel_spike")
		}
		if f.GyroSpike >= 15 {
			reasons = append(reasons, "gyro_spike")
		}
		if f.SecondsStopped >= 10 {
			reasons = append(reasons, "stopped_10s")
		}
	}
	if shakeStop {
		reasons = append(reasons, "shake_stop_detected_by_client")
	}
	return reasons
}
