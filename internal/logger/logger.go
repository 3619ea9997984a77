// Package logger provides the structured logging setup shared by the
// server and the entry point.
package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New builds a zerolog logger writing to the given writer at the given
// level. Unknown level strings fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// NewConsole builds a logger with human-readable console output, intended
// for interactive runs.
func NewConsole(w io.Writer, level string) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}
	return New(consoleWriter, level)
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
