package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string
	LogFormat    string
	LogLevel     string
	Attrs        []string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if len(cfg.Attrs) == 0 {
		cfg.Attrs = []string{"ext"}
	}

	return &cfg, nil
}
