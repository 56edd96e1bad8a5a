package config

import (
	"fmt"
	"strconv"
)

// Dotted keys understood by Get, Set and List.
const (
	KeyOutputFormat     = "output.default_format"
	KeyOutputPrecision  = "output.precision"
	KeyLoggingLevel     = "logging.level"
	KeyLoggingFormat    = "logging.format"
	KeyLoggingFile      = "logging.file"
	KeyStorageDirectory = "storage.directory"
	KeyStorageKey       = "storage.key"
	KeyReportDirectory  = "report.directory"
)

// Keys lists every settable key in display order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var Keys = []string{
	KeyOutputFormat,
	KeyOutputPrecision,
	KeyLoggingLevel,
	KeyLoggingFormat,
	KeyLoggingFile,
	KeyStorageDirectory,
	KeyStorageKey,
	KeyReportDirectory,
}

// Get returns the value stored under a dotted key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyOutputFormat:
		return c.Output.DefaultFormat, nil
	case KeyOutputPrecision:
		return strconv.Itoa(c.Output.Precision), nil
	case KeyLoggingLevel:
		return c.Logging.Level, nil
	case KeyLoggingFormat:
		return c.Logging.Format, nil
	case KeyLoggingFile:
		return c.Logging.File, nil
	case KeyStorageDirectory:
		return c.Storage.Directory, nil
	case KeyStorageKey:
		return c.Storage.Key, nil
	case KeyReportDirectory:
		return c.Report.Directory, nil
	default:
		return "", fmt.Errorf("unknown configuration key %q", key)
	}
}

// Set stores value under a dotted key and re-validates the configuration.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyOutputFormat:
		c.Output.DefaultFormat = value
	case KeyOutputPrecision:
		p, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("output.precision must be an integer: %w", err)
		}
		c.Output.Precision = p
	case KeyLoggingLevel:
		c.Logging.Level = value
	case KeyLoggingFormat:
		c.Logging.Format = value
	case KeyLoggingFile:
		c.Logging.File = value
	case KeyStorageDirectory:
		c.Storage.Directory = value
	case KeyStorageKey:
		c.Storage.Key = value
	case KeyReportDirectory:
		c.Report.Directory = value
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}
	return c.Validate()
}

// List returns every key with its current value.
func (c *Config) List() map[string]string {
	out := make(map[string]string, len(Keys))
	for _, k := range Keys {
		v, _ := c.Get(k)
		out[k] = v
	}
	return out
}
