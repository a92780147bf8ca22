package config

import (
	"fmt"
	"io"
	"log/slog"
)

const EnvFloorplanLogFormat = "FLOORPLAN_LOG_FORMAT"

// Level parses LogLevel into a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// LogHandler returns a slog handler writing to w in LogFormat at Level.
func (c *Config) LogHandler(w io.Writer) (slog.Handler, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch c.LogFormat {
	case "text":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("invalid log_format %q: want text or json", c.LogFormat)
	}
}
