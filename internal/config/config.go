// Package config loads, validates and persists emetricx configuration.
//
// Configuration lives in $EMETRICX_HOME/config.yaml (default ~/.emetricx).
// Values are resolved in order: built-in defaults, the YAML file (shallow
// merged per section), then environment variables, optionally seeded from a
// .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by output.default_format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Defaults.
const (
	DefaultOutputFormat = FormatText
	DefaultPrecision    = 2
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultStorageKey   = "carbonData"
	DefaultReportDir    = "."

	maxPrecision   = 6
	configFileName = "config.yaml"
)

// Config is the complete emetricx configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Storage StorageConfig `yaml:"storage"`
	Report  ReportConfig  `yaml:"report"`

	configPath string
}

// OutputConfig controls CLI output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// StorageConfig controls where the wizard snapshot is persisted.
type StorageConfig struct {
	Directory string `yaml:"directory"`
	Key       string `yaml:"key"`
}

// ReportConfig controls report downloads.
type ReportConfig struct {
	Directory string `yaml:"directory"`
}

// New returns the resolved configuration. A malformed config file is logged
// and ignored so the CLI keeps working on defaults.
func New() *Config {
	loadDotEnv()

	dir, err := GetConfigDir()
	if err != nil {
		dir = ".emetricx"
	}

	cfg := Defaults(dir)
	cfg.configPath = filepath.Join(dir, configFileName)

	if _, statErr := os.Stat(cfg.configPath); statErr == nil {
		merged := Defaults(dir)
		merged.configPath = cfg.configPath
		if mergeErr := ShallowMergeYAML(merged, cfg.configPath); mergeErr != nil {
			log.Warn().
				Str("component", "config").
				Str("operation", "load").
				Err(mergeErr).
				Str("path", cfg.configPath).
				Msg("failed to load config file, using defaults")
		} else {
			cfg = merged
		}
	}

	cfg.applyEnv()
	return cfg
}

// Defaults returns the built-in configuration rooted at dir.
func Defaults(dir string) *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
			Precision:     DefaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			File:   filepath.Join(dir, "logs", "emetricx.log"),
		},
		Storage: StorageConfig{
			Directory: filepath.Join(dir, "state"),
			Key:       DefaultStorageKey,
		},
		Report: ReportConfig{
			Directory: DefaultReportDir,
		},
	}
}

// ConfigPath returns the file this configuration is saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath overrides the file this configuration is saved to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if writeErr := os.WriteFile(c.configPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing config file: %w", writeErr)
	}
	return nil
}

// Validate checks semantic correctness of every section.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output.DefaultFormat {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("output.default_format must be %q or %q, got %q",
			FormatText, FormatJSON, c.Output.DefaultFormat))
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		errs = append(errs, fmt.Errorf("output.precision must be between 0 and %d, got %d",
			maxPrecision, c.Output.Precision))
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil || c.Logging.Level == "" {
		errs = append(errs, fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}

	if strings.TrimSpace(c.Storage.Key) == "" {
		errs = append(errs, errors.New("storage.key cannot be empty"))
	}
	if strings.TrimSpace(c.Storage.Directory) == "" {
		errs = append(errs, errors.New("storage.directory cannot be empty"))
	}

	return errors.Join(errs...)
}
