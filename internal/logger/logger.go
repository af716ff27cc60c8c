// Package logger provides logging utilities for the collection generator.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger provides structured logging functionality.
type Logger struct {
	internal zerolog.Logger
}

// NewLogger creates a new logger writing human-readable output to stderr.
func NewLogger(level string) *Logger {
	return NewLoggerWithWriter(level, ConsoleWriter(os.Stderr))
}

// ConsoleWriter wraps w with zerolog's human-readable formatter.
func ConsoleWriter(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
}

// NewLoggerWithWriter creates a logger that writes to w.
func NewLoggerWithWriter(level string, w io.Writer) *Logger {
	return &Logger{
		internal: zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(level)),
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{internal: zerolog.Nop()}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Info logs an info level message.
func (l *Logger) Info(msg string, args ...any) {
	l.internal.Info().Fields(args).Msg(msg)
}

// Error logs an error level message.
func (l *Logger) Error(msg string, args ...any) {
	l.internal.Error().Fields(args).Msg(msg)
}

// Debug logs a debug level message.
func (l *Logger) Debug(msg string, args ...any) {
	l.internal.Debug().Fields(args).Msg(msg)
}

// Warn logs a warning level message.
func (l *Logger) Warn(msg string, args ...any) {
	l.internal.Warn().Fields(args).Msg(msg)
}

// With creates a child logger with the given key/value attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		internal: l.internal.With().Fields(args).Logger(),
	}
}

// Level returns the active minimum level.
func (l *Logger) Level() zerolog.Level {
	return l.internal.GetLevel()
}
