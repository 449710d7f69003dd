package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/yamlns"
)

// FormatJSON and FormatText name the supported handler encodings.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds configuration for the logger.
type Config struct {
	Level  string
	Format string
}

// NewLogger creates a new slog.Logger with the specified output.
// The level and format are parsed from the config; invalid or empty values
// default to INFO and JSON.
func NewLogger(config Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, FormatText) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// FromNamespace creates a logger configured by the "level" and "format"
// entries of the given namespace. Absent entries or non-string values fall
// back to the defaults.
func FromNamespace(namespace *yamlns.Namespace, w io.Writer) *slog.Logger {
	var config Config

	if level, err := namespace.Get("level"); err == nil {
		config.Level, _ = level.(string)
	}

	if format, err := namespace.Get("format"); err == nil {
		config.Format, _ = format.(string)
	}

	return NewLogger(config, w)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
