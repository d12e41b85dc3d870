package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1e15, cfg.Safety.MaxCalculationRange)
	assert.Equal(t, 100.0, cfg.Safety.MaxExponent)
	assert.Equal(t, 10, cfg.Safety.ModeKeyDigits)
	assert.Equal(t, 1e-7, cfg.Solver.IRRTolerance)
	assert.Equal(t, 1000, cfg.Solver.IRRMaxIterations)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1e15, cfg.Safety.MaxCalculationRange)
	assert.Equal(t, 100.0, cfg.Safety.MaxExponent)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FINCALC_SAFETY_MAX_EXPONENT", "50")
	t.Setenv("FINCALC_LOGGING_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 50.0, cfg.Safety.MaxExponent)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched values keep their defaults
	assert.Equal(t, 1e15, cfg.Safety.MaxCalculationRange)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fincalc.yaml")

	content := []byte(`safety:
  max_calculation_range: 1e12
  max_exponent: 80
solver:
  irr_max_iterations: 500
`)
	require.NoError(t, os.WriteFile(configPath, content, 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 1e12, cfg.Safety.MaxCalculationRange)
	assert.Equal(t, 80.0, cfg.Safety.MaxExponent)
	assert.Equal(t, 500, cfg.Solver.IRRMaxIterations)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 1e15, cfg.Safety.MaxCalculationRange)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "negative calculation range",
			mutate:  func(c *Config) { c.Safety.MaxCalculationRange = -1 },
			wantErr: "max_calculation_range",
		},
		{
			name:    "zero exponent bound",
			mutate:  func(c *Config) { c.Safety.MaxExponent = 0 },
			wantErr: "max_exponent",
		},
		{
			name:    "mode key digits too large",
			mutate:  func(c *Config) { c.Safety.ModeKeyDigits = 20 },
			wantErr: "mode_key_digits",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: "logging.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
