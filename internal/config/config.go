// Package config loads CLI defaults from environment variables.
// Command line flags take precedence over every value loaded here.
package config

// Config holds all CLI configuration.
type Config struct {
	Read    ReadConfig
	Render  RenderConfig
	Logging LoggingConfig
}

// ReadConfig holds worksheet read settings.
type ReadConfig struct {
	// Sheet is the worksheet to read (default: first sheet)
	Sheet string `env:"XLWAVE_SHEET"`

	// NoHeader disables header row resolution (default: false)
	NoHeader bool `env:"XLWAVE_NO_HEADER" default:"false"`
}

// RenderConfig holds the rendering block attached to the diagram.
type RenderConfig struct {
	// HScale is the horizontal scale passed to the renderer; 0 omits it (default: 0)
	HScale float64 `env:"XLWAVE_HSCALE" default:"0"`

	// Pretty enables indented JSON output (default: false)
	Pretty bool `env:"XLWAVE_PRETTY" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
