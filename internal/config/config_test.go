// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.InDelta(t, 30.0, cfg.Reach.OverallThreshold, 1e-9)
	assert.InDelta(t, 10.0, cfg.Reach.WalkThreshold, 1e-9)
	assert.Equal(t, "time_cost", cfg.Reach.Weight)
	assert.Equal(t, "segment_type", cfg.Reach.SegmentAttr)
	assert.Equal(t, "street", cfg.Reach.StreetTag)
	assert.Equal(t, 4, cfg.Reach.Workers)
	assert.Equal(t, "reach", cfg.Reach.Column)
	assert.Equal(t, "population", cfg.Justice.PopulationColumn)
	assert.Equal(t, "vul_prop", cfg.Justice.VulnerabilityColumn)
	assert.Equal(t, "id", cfg.Input.UnitKey)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
reach:
  overall_threshold: 45
  weight: length
  workers: 2
justice:
  indicators: [income_norm, edu_norm]
  rename:
    income: income_norm
input:
  edges: edges.csv
  directed: true
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.InDelta(t, 45.0, cfg.Reach.OverallThreshold, 1e-9)
	assert.Equal(t, "length", cfg.Reach.Weight)
	assert.Equal(t, 2, cfg.Reach.Workers)
	assert.Equal(t, []string{"income_norm", "edu_norm"}, cfg.Justice.Indicators)
	assert.Equal(t, "income_norm", cfg.Justice.Rename["income"])
	assert.Equal(t, "edges.csv", cfg.Input.Edges)
	assert.True(t, cfg.Input.Directed)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Defaults still apply for unset values
	assert.InDelta(t, 10.0, cfg.Reach.WalkThreshold, 1e-9)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
reach:
  weight: length
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("SPATIALJUSTICE_REACH_WEIGHT", "time_cost")
	t.Setenv("SPATIALJUSTICE_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "time_cost", cfg.Reach.Weight)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadInvalidFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("reach: [unclosed"), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	chdirTemp(t)
	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.Validate("reach")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input.edges is required")
	assert.Contains(t, err.Error(), "input.targets is required")

	cfg.Input.Edges = "edges.csv"
	cfg.Input.Targets = "targets.csv"
	cfg.Input.Groups = "groups.csv"
	assert.NoError(t, cfg.Validate("reach"))

	cfg.Reach.WalkThreshold = -1
	cfg.Reach.Workers = 0
	err = cfg.Validate("reach")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reach.walk_threshold")
	assert.Contains(t, err.Error(), "reach.workers")

	err = cfg.Validate("distribute")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input.units is required")
	cfg.Input.Units = "units.csv"
	assert.NoError(t, cfg.Validate("distribute"))
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
