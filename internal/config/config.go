// Package config provides centralized configuration management for minfind.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Scan    ScanConfig
	Logging LoggingConfig
}

// ScanConfig holds the table layout a scan expects.
type ScanConfig struct {
	// ValueColumns are the numeric columns to minimize (default: mse,mse_icu,mse_cum)
	ValueColumns []string `env:"MINFIND_VALUE_COLUMNS" default:"mse,mse_icu,mse_cum"`

	// IDColumn is the integer column reported with each minimum (default: param_set_id)
	IDColumn string `env:"MINFIND_ID_COLUMN" default:"param_set_id"`

	// MaxLineLength is the longest accepted line in bytes (default: 4096)
	MaxLineLength int `env:"MINFIND_MAX_LINE_LENGTH" default:"4096"`

	// Delimiter is the single-byte field separator (default: ,)
	Delimiter string `env:"MINFIND_DELIMITER" default:","`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	// MINFIND_LOG_LEVEL is read when LOG_LEVEL is unset
	Level string `env:"LOG_LEVEL" envAlt:"MINFIND_LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	// MINFIND_LOG_FORMAT is read when LOG_FORMAT is unset
	Format string `env:"LOG_FORMAT" envAlt:"MINFIND_LOG_FORMAT" default:"text"`
}

// DelimiterByte returns the configured delimiter as a byte.
// Validate guarantees it is exactly one byte.
func (c *ScanConfig) DelimiterByte() byte {
	if len(c.Delimiter) != 1 {
		return ','
	}
	return c.Delimiter[0]
}
