package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/njchilds90/polyroot"
)

// Config holds all polyroots configuration.
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Batch   BatchConfig   `yaml:"batch"`
}

// SolverConfig carries the finder knobs.
type SolverConfig struct {
	Iterations       int  `yaml:"iterations"`
	EvalPrecision    int  `yaml:"eval_precision"`    // fractional digits for zero tests
	DisplayPrecision int  `yaml:"display_precision"` // fractional digits in emitted roots
	Strict           bool `yaml:"strict"`            // fail on NaN root candidates
	MaxDegree        int  `yaml:"max_degree"`        // highest degree accepted
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// ServerConfig configures the HTTP tool server.
type ServerConfig struct {
	Port              int    `yaml:"port"`
	MaxBodyBytes      int64  `yaml:"max_body_bytes"`
	ReadHeaderTimeout string `yaml:"read_header_timeout"`
	ReadTimeout       string `yaml:"read_timeout"`
	WriteTimeout      string `yaml:"write_timeout"`
	IdleTimeout       string `yaml:"idle_timeout"`
}

type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Iterations:       polyroot.DefaultIterations,
			EvalPrecision:    polyroot.DefaultEvalPrecision,
			DisplayPrecision: polyroot.DefaultDisplayPrecision,
			MaxDegree:        polyroot.DefaultMaxDegree,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Port:              8080,
			MaxBodyBytes:      1 << 20,
			ReadHeaderTimeout: "5s",
			ReadTimeout:       "15s",
			WriteTimeout:      "15s",
			IdleTimeout:       "60s",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides lets POLYROOT_* variables win over the file.
func (c *Config) applyEnvOverrides() {
	if v, ok := envInt("POLYROOT_ITERATIONS"); ok {
		c.Solver.Iterations = v
	}
	if v, ok := envInt("POLYROOT_EVAL_PRECISION"); ok {
		c.Solver.EvalPrecision = v
	}
	if v, ok := envInt("POLYROOT_DISPLAY_PRECISION"); ok {
		c.Solver.DisplayPrecision = v
	}
	if v, ok := envInt("POLYROOT_MAX_DEGREE"); ok {
		c.Solver.MaxDegree = v
	}
	if v := os.Getenv("POLYROOT_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Solver.Strict = b
		}
	}
	if v := os.Getenv("POLYROOT_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v, ok := envInt("POLYROOT_PORT"); ok {
		c.Server.Port = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Validate rejects values the solver or server cannot use.
func (c *Config) Validate() error {
	if c.Solver.Iterations < 1 {
		return fmt.Errorf("solver.iterations must be >= 1, got %d", c.Solver.Iterations)
	}
	if c.Solver.EvalPrecision < 1 || c.Solver.EvalPrecision > 15 {
		return fmt.Errorf("solver.eval_precision must be in [1, 15], got %d", c.Solver.EvalPrecision)
	}
	if c.Solver.DisplayPrecision < 1 || c.Solver.DisplayPrecision > 15 {
		return fmt.Errorf("solver.display_precision must be in [1, 15], got %d", c.Solver.DisplayPrecision)
	}
	if c.Solver.MaxDegree < 3 || c.Solver.MaxDegree > polyroot.MaxExponent {
		return fmt.Errorf("solver.max_degree must be in [3, %d], got %d", polyroot.MaxExponent, c.Solver.MaxDegree)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	for name, v := range map[string]string{
		"read_header_timeout": c.Server.ReadHeaderTimeout,
		"read_timeout":        c.Server.ReadTimeout,
		"write_timeout":       c.Server.WriteTimeout,
		"idle_timeout":        c.Server.IdleTimeout,
	} {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("server.%s: %w", name, err)
		}
	}
	return nil
}

// SolverOptions maps the solver section onto polyroot.Options.
func (c *Config) SolverOptions() polyroot.Options {
	return polyroot.Options{
		Iterations:       c.Solver.Iterations,
		EvalPrecision:    c.Solver.EvalPrecision,
		DisplayPrecision: c.Solver.DisplayPrecision,
		Strict:           c.Solver.Strict,
		MaxDegree:        c.Solver.MaxDegree,
	}
}

// Duration parses one of the server timeouts, falling back to def.
func Duration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
