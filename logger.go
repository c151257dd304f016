package seriesgo

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with series-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBake logs a bake operation.
func (l *Logger) LogBake(pairs int, duration time.Duration, err error) {
	if err != nil {
		l.Error("bake failed",
			"pairs", pairs,
			"error", err,
		)
	} else {
		l.Debug("bake completed",
			"pairs", pairs,
			"duration", duration,
		)
	}
}

// LogConstruct logs a series construction.
func (l *Logger) LogConstruct(shape string, err error) {
	if err != nil {
		l.Error("construction failed",
			"shape", shape,
			"error", err,
		)
	} else {
		l.Debug("series constructed",
			"shape", shape,
		)
	}
}

// LogInflate logs an inflate operation.
func (l *Logger) LogInflate(rows int, duration time.Duration, err error) {
	if err != nil {
		l.Error("inflate failed",
			"rows", rows,
			"error", err,
		)
	} else {
		l.Debug("inflate completed",
			"rows", rows,
			"duration", duration,
		)
	}
}
