package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadModelMissingFile(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadModelAndScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	err := os.WriteFile(path, []byte(`{"weights":[1,0,0,0,0,0,0,0],"bias":-2}`), 0o644)
	require.NoError(t, err)

	m, err := LoadModel(path)
	require.NoError(t, err)

	// z = -2 + 1*4 = 2 -> sigmoid(2) ~ 0.88
	p, err := m.ProbAccident([]float64{4, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.8808, p, 0.001)

	_, err = m.ProbAccident([]float64{1, 2})
	assert.Error(t, err)
}

func TestLoadModelEmptyWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"weights":[],"bias":0}`), 0o644))

	_, err := LoadModel(path)
	assert.Error(t, err)
}
