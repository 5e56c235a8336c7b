// Package logging sets up the structured JSON logger used across the service.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON logger writing to stderr tagged with module and version.
// Debug level also records the source location.
func New(module, version string, level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, module, version, level)
}

func NewWithWriter(w io.Writer, module, version string, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return slog.New(h).With("module", module, "version", version)
}

// SetDefault installs the logger as slog's default and returns it.
func SetDefault(module, version string, level slog.Level) *slog.Logger {
	l := New(module, version, level)
	slog.SetDefault(l)
	return l
}
