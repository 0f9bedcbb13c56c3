package app

import (
	"errors"
	"fmt"
)

// Default dimensions used when the command line does not override them.
const (
	DefaultWidth  = 200
	DefaultHeight = 200
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Width  int
	Height int
	// Seed drives the generator; 0 means "pick one from the wall clock".
	Seed   int64
	Verify bool

	LogFormat string
	LogLevel  string
}

// NewConfig checks the logging fields and returns a copy of cfg.
// Dimensions are deliberately left to maze.Build so that they surface as
// maze.ErrInvalidDimension.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}
