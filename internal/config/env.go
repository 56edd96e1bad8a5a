package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Environment variables recognized by emetricx.
const (
	EnvHome      = "EMETRICX_HOME"
	EnvLogLevel  = "EMETRICX_LOG_LEVEL"
	EnvLogFormat = "EMETRICX_LOG_FORMAT"
	EnvLogFile   = "EMETRICX_LOG_FILE"
	EnvStateDir  = "EMETRICX_STATE_DIR"
	EnvOutput    = "EMETRICX_OUTPUT"
	EnvPrecision = "EMETRICX_PRECISION"
	EnvReportDir = "EMETRICX_REPORT_DIR"
)

//nolint:gochecknoglobals // .env is read at most once per process.
var dotEnvOnce sync.Once

// loadDotEnv seeds the environment from ./.env. Existing variables win and a
// missing file is not an error.
func loadDotEnv() {
	dotEnvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v := os.Getenv(EnvStateDir); v != "" {
		c.Storage.Directory = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvPrecision); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Output.Precision = p
		}
	}
	if v := os.Getenv(EnvReportDir); v != "" {
		c.Report.Directory = v
	}
}
