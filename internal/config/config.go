// Package config provides centralized configuration management for solverplot.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"github.com/JonMunkholm/solverplot/internal/core"
)

// Config holds all application configuration.
// All settings can be configured via environment variables and most can be
// overridden by command-line flags.
type Config struct {
	Source  SourceConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// SourceConfig describes the solutions log to read.
type SourceConfig struct {
	// Path is the solutions log written by the solver
	Path string `env:"SOLUTIONS_PATH" envDefault:"examples/output/solutions.csv"`

	// Delimiter is the field separator, a single character or "tab" (default: ;)
	Delimiter string `env:"SOLUTIONS_DELIMITER" envDefault:";"`

	// Quote is the quote character; "none" disables quoting (default: ")
	Quote string `env:"SOLUTIONS_QUOTE" envDefault:"\""`

	// Decimal is "comma", "period" or a locale tag such as "es" (default: es)
	Decimal string `env:"SOLUTIONS_DECIMAL" envDefault:"es"`

	// Encoding is a WHATWG encoding label (default: utf-8)
	Encoding string `env:"SOLUTIONS_ENCODING" envDefault:"utf-8"`
}

// OutputConfig controls what is written to stdout.
type OutputConfig struct {
	// Format is text, json or arrow (default: text)
	Format string `env:"OUTPUT_FORMAT" envDefault:"text"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Options converts the source settings into loader options.
func (c *SourceConfig) Options() (core.Options, error) {
	return core.NewOptions(c.Delimiter, c.Quote, c.Decimal, c.Encoding)
}
