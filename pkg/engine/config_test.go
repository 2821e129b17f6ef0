package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/richard-senior/xgsim/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEngineConfig(t *testing.T) {
	cfg := engine.DefaultEngineConfig()
	require.NoError(t, engine.ValidateConfig(cfg))

	assert.Equal(t, 2.2, cfg.MaxXG)
	assert.Equal(t, 0.15, cfg.MinXG)
	assert.Equal(t, 50.0, cfg.XGMidpoint)
	assert.Equal(t, 0.06, cfg.XGSteepness)
	assert.InDelta(t, 0.7, cfg.StatsWeight, 1e-9, "StatsWeight should derive from FormWeight")
}

func TestSetFormWeight(t *testing.T) {
	defer engine.UpdateConfig(engine.DefaultEngineConfig())

	engine.SetFormWeight(0.4)
	assert.InDelta(t, 0.4, engine.GetFormWeight(), 1e-9)
	assert.InDelta(t, 0.6, engine.GetStatsWeight(), 1e-9)
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*engine.EngineConfig)
	}{
		{"form weight above 1", func(c *engine.EngineConfig) { c.FormWeight = 1.5 }},
		{"negative form weight", func(c *engine.EngineConfig) { c.FormWeight = -0.1 }},
		{"too few simulations", func(c *engine.EngineConfig) { c.Simulations = 10 }},
		{"goal range too small", func(c *engine.EngineConfig) { c.GoalRange = 2 }},
		{"positive rho", func(c *engine.EngineConfig) { c.DixonColesRho = 0.1 }},
		{"rho too negative", func(c *engine.EngineConfig) { c.DixonColesRho = -0.5 }},
		{"ceiling below floor", func(c *engine.EngineConfig) { c.MaxXG = 0.1 }},
		{"zero floor", func(c *engine.EngineConfig) { c.MinXG = 0 }},
		{"negative steepness", func(c *engine.EngineConfig) { c.XGSteepness = -0.06 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := engine.DefaultEngineConfig()
			tc.mutate(cfg)
			assert.Error(t, engine.ValidateConfig(cfg))
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XGSIM_CONFIG", "")

	cfg, err := engine.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultEngineConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xgsim.yaml")
	yaml := "max_xg: 2.5\nsimulations: 5000\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	t.Setenv("XGSIM_CONFIG", path)

	cfg, err := engine.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.MaxXG)
	assert.Equal(t, 5000, cfg.Simulations)
	// Untouched values keep their defaults
	assert.Equal(t, 0.15, cfg.MinXG)
	assert.Equal(t, 9, cfg.GoalRange)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("XGSIM_CONFIG", "")
	t.Setenv("XGSIM_FORM_WEIGHT", "0.5")

	cfg, err := engine.LoadConfig()
	require.NoError(t, err)

	assert.InDelta(t, 0.5, cfg.FormWeight, 1e-9)
	assert.InDelta(t, 0.5, cfg.StatsWeight, 1e-9)
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xgsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("form_weight: 2.0\n"), 0644))

	t.Setenv("XGSIM_CONFIG", path)

	_, err := engine.LoadConfig()
	assert.Error(t, err)
}
