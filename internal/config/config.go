// Package config handles configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/dense/internal/parallel"
)

// Config holds all application configuration.
type Config struct {
	// Logging configuration
	Log LogConfig `yaml:"log"`

	// Parallel execution of elementwise loops
	Parallel ParallelConfig `yaml:"parallel"`

	// Tensor file storage
	Storage StorageConfig `yaml:"storage"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `envconfig:"DENSE_LOG_LEVEL" yaml:"level"`
	Format string `envconfig:"DENSE_LOG_FORMAT" yaml:"format"`
}

// ParallelConfig holds worker settings for elementwise operations.
type ParallelConfig struct {
	Enabled      bool `envconfig:"DENSE_PARALLEL" yaml:"enabled"`
	Workers      int  `envconfig:"DENSE_WORKERS" yaml:"workers"` // 0 = one per CPU
	MinChunkSize int  `envconfig:"DENSE_MIN_CHUNK" yaml:"min_chunk_size"`
}

// StorageConfig holds tensor file settings.
type StorageConfig struct {
	Validation string `envconfig:"DENSE_VALIDATION" yaml:"validation"`
}

// Load loads configuration from defaults, an optional YAML file, and
// environment variables, in increasing order of priority.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	// Set defaults first
	setDefaults(cfg)

	// Load from YAML file if provided (overrides defaults)
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only.
func LoadFromEnv() (*Config, error) {
	return Load("")
}

func loadFromFile(cfg *Config, path string) error {
	//nolint:gosec // G304: config path is supplied by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func setDefaults(cfg *Config) {
	cfg.Log = LogConfig{
		Level:  "info",
		Format: "text",
	}

	def := parallel.DefaultConfig()
	cfg.Parallel = ParallelConfig{
		Enabled:      def.Enabled,
		Workers:      0,
		MinChunkSize: def.MinChunkSize,
	}

	cfg.Storage = StorageConfig{
		Validation: "strict",
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs []string

	// Names are matched case-insensitively, as the logger and storage parsers do.
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Log.Format)] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be text or json)", c.Log.Format))
	}

	if c.Parallel.Workers < 0 {
		errs = append(errs, "parallel workers must not be negative")
	}

	if c.Parallel.MinChunkSize < 1 {
		errs = append(errs, "parallel min_chunk_size must be positive")
	}

	validValidation := map[string]bool{"strict": true, "normal": true, "none": true}
	if !validValidation[strings.ToLower(c.Storage.Validation)] {
		errs = append(errs, fmt.Sprintf("invalid storage validation: %s (must be strict, normal, or none)", c.Storage.Validation))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// ParallelOptions converts the parallel settings for use by tensor operations.
func (c *Config) ParallelOptions() parallel.Config {
	workers := c.Parallel.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	return parallel.Config{
		Enabled:      c.Parallel.Enabled && workers > 1,
		NumWorkers:   workers,
		MinChunkSize: c.Parallel.MinChunkSize,
	}
}
