package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/polyroot"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"POLYROOT_ITERATIONS", "POLYROOT_EVAL_PRECISION", "POLYROOT_DISPLAY_PRECISION",
		"POLYROOT_STRICT", "POLYROOT_LOG_LEVEL", "POLYROOT_PORT", "POLYROOT_MAX_DEGREE",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1000, cfg.Solver.Iterations)
	assert.Equal(t, 10, cfg.Solver.EvalPrecision)
	assert.Equal(t, 3, cfg.Solver.DisplayPrecision)
	assert.False(t, cfg.Solver.Strict)
	assert.Equal(t, 64, cfg.Solver.MaxDegree)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "polyroots.yaml")

	cfg := DefaultConfig()
	cfg.Solver.Iterations = 250
	cfg.Solver.Strict = true
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "polyroots.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver:\n  display_precision: 5\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Solver.DisplayPrecision)
	assert.Equal(t, 1000, cfg.Solver.Iterations)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "polyroots.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "polyroots.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver:\n  iterations: 0\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "solver.iterations")
}

func TestConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("POLYROOT_ITERATIONS", "42")
	t.Setenv("POLYROOT_DISPLAY_PRECISION", "6")
	t.Setenv("POLYROOT_STRICT", "true")
	t.Setenv("POLYROOT_LOG_LEVEL", "WARN")
	t.Setenv("POLYROOT_PORT", "9090")
	t.Setenv("POLYROOT_MAX_DEGREE", "12")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Solver.Iterations)
	assert.Equal(t, 6, cfg.Solver.DisplayPrecision)
	assert.True(t, cfg.Solver.Strict)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 12, cfg.Solver.MaxDegree)
	assert.Equal(t, 12, cfg.SolverOptions().MaxDegree)
}

func TestConfig_EnvOverridesIgnoreGarbage(t *testing.T) {
	clearEnv(t)
	t.Setenv("POLYROOT_ITERATIONS", "lots")
	t.Setenv("POLYROOT_STRICT", "maybe")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Solver.Iterations)
	assert.False(t, cfg.Solver.Strict)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"eval precision":    func(c *Config) { c.Solver.EvalPrecision = 0 },
		"display precision": func(c *Config) { c.Solver.DisplayPrecision = 16 },
		"max degree low":    func(c *Config) { c.Solver.MaxDegree = 2 },
		"max degree high":   func(c *Config) { c.Solver.MaxDegree = polyroot.MaxExponent + 1 },
		"log level":         func(c *Config) { c.Logging.Level = "loud" },
		"port":              func(c *Config) { c.Server.Port = 70000 },
		"timeout":           func(c *Config) { c.Server.ReadTimeout = "soon" },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

func TestSolverOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Solver.Strict = true
	want := polyroot.DefaultOptions()
	want.Strict = true
	assert.Equal(t, want, cfg.SolverOptions())
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, Duration("5s", time.Minute))
	assert.Equal(t, time.Minute, Duration("bogus", time.Minute))
}
