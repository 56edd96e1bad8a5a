package config

import "github.com/rshade/emetricx/internal/logging"

// ToLoggingConfig converts the logging section into a logging.Config. A set
// file routes output to it; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
