package detect

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// LogisticModel is a trained binary classifier over the 8-dim feature
// vector, exported from the offline training job as a JSON weights file.
type LogisticModel struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
	Means   []float64 `json:"means"`
	Scales  []float64 `json:"scales"`
}

// LoadModel reads a weights file. A missing file is not an error condition
// for the caller to handle specially: the classifier simply runs without a
// model, so callers should log and pass nil.
func LoadModel(path string) (*LogisticModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m LogisticModel
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse model file %s: %w", path, err)
	}
	if len(m.Weights) == 0 {
		return nil, fmt.Errorf("model file %s has no weights", path)
	}
	return &m, nil
}

func (m *LogisticModel) ProbAccident(vector []float64) (float64, error) {
	if len(vector) != len(m.Weights) {
		return 0, fmt.Errorf("feature vector has %d dims, model expects %d", len(vector), len(m.Weights))
	}
	z := m.Bias
	for i, x := range vector {
		if len(m.Means) == len(m.Weights) && len(m.Scales) == len(m.Weights) && m.Scales[i] != 0 {
			x = (x - m.Means[i]) / m.Scales[i]
		}
		z += m.Weights[i] * x
	}
	return 1.0 / (1.0 + math.Exp(-z)), nil
}
