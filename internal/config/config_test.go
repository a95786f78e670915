package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbstools/hbstools/internal/config"
)

const sample = `
binning: 0.1
skip: 10
energy_lims: [20, 300]
algorithm_params:
  threshold_std: 4.5
  mu_min: 1.1
  alpha: 0.005
  beta: 0.1
  m: 40
  sleep: 120
`

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_ParsesRecognizedKeys(t *testing.T) {
	path := writeTemp(t, sample)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.1, cfg.Binning)
	assert.Equal(t, 10, cfg.Skip)
	assert.Equal(t, 20.0, cfg.EnergyLow)
	assert.Equal(t, 300.0, cfg.EnergyHigh)
	assert.Equal(t, 4.5, cfg.AlgorithmParams.ThresholdStd)
	require.NotNil(t, cfg.AlgorithmParams.Beta)
	assert.Equal(t, 0.1, *cfg.AlgorithmParams.Beta)
	assert.Nil(t, cfg.AlgorithmParams.Majority)
}

func TestLoad_RejectsMajorityWithoutAlpha(t *testing.T) {
	path := writeTemp(t, `
binning: 0.1
skip: 1
energy_lims: [0, 1]
algorithm_params:
  threshold_std: 1
  mu_min: 1
  alpha: 0
  m: 1
  sleep: 0
  majority: 3
`)
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
