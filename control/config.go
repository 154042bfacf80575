// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Harness configuration: YAML file, then .env, then HIOLOAD_* variables.

package control

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-generics/api"
)

// Log formats understood by internal/logging.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// HarnessConfig drives the demo harness.
type HarnessConfig struct {
	// Seed for the PCG source; 0 uses the process-wide nondeterministic source.
	Seed       uint64        `yaml:"seed"`
	Count      int           `yaml:"count"`
	UpperBound int           `yaml:"upper_bound"`
	Log        LogConfig     `yaml:"log"`
	Metrics    MetricsConfig `yaml:"metrics"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
}

// Defaults for a config that sets nothing.
const (
	DefaultCount      = 5
	DefaultUpperBound = 20
	DefaultLogLevel   = "info"
	DefaultNamespace  = "hioload"
)

// DefaultHarnessConfig returns the configuration used when no file or
// variable overrides a field.
func DefaultHarnessConfig() *HarnessConfig {
	return &HarnessConfig{
		Count:      DefaultCount,
		UpperBound: DefaultUpperBound,
		Log:        LogConfig{Level: DefaultLogLevel, Format: FormatConsole},
		Metrics:    MetricsConfig{Namespace: DefaultNamespace},
	}
}

// LoadConfig starts from DefaultHarnessConfig, overlays path (optional),
// loads envFile into the environment if it exists, applies HIOLOAD_*
// overrides, then validates. Numeric fields set explicitly to 0 keep 0.
func LoadConfig(path, envFile string) (*HarnessConfig, error) {
	cfg := DefaultHarnessConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("control: read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("control: parse config %s: %w", path, err)
		}
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("control: load env file: %w", err)
		}
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv overrides fields from HIOLOAD_* environment variables.
func (c *HarnessConfig) LoadFromEnv() error {
	if v := os.Getenv("HIOLOAD_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("control: HIOLOAD_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("HIOLOAD_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("control: HIOLOAD_COUNT: %w", err)
		}
		c.Count = n
	}
	if v := os.Getenv("HIOLOAD_UPPER_BOUND"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("control: HIOLOAD_UPPER_BOUND: %w", err)
		}
		c.UpperBound = n
	}
	if v := os.Getenv("HIOLOAD_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("HIOLOAD_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("HIOLOAD_METRICS_NAMESPACE"); v != "" {
		c.Metrics.Namespace = v
	}
	return nil
}

// ApplyDefaults fills in empty strings. Numbers are left alone since 0 is
// a meaningful count.
func (c *HarnessConfig) ApplyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = FormatConsole
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate checks configuration.
func (c *HarnessConfig) Validate() error {
	invalid := func(msg, key string, val any) error {
		return api.NewError(api.ErrCodeInvalidArgument, "control: "+msg).WithContext(key, val)
	}
	if c.Count < 0 {
		return invalid("count must be >= 0", "count", c.Count)
	}
	if c.UpperBound <= 1 {
		return invalid("upper_bound must be > 1", "upper_bound", c.UpperBound)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return invalid("invalid log level", "level", c.Log.Level)
	}
	if c.Log.Format != FormatJSON && c.Log.Format != FormatConsole {
		return invalid("invalid log format", "format", c.Log.Format)
	}
	return nil
}
