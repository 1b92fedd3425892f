package rowdex

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rowdex-specific helpers.
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

// LogFind logs a lookup operation.
func (l *Logger) LogFind(key []string, found bool, err error) {
	if err != nil {
		l.Error("find failed",
			"key", key,
			"error", err,
		)
	} else {
		l.Debug("find completed",
			"key", key,
			"found", found,
		)
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(key []string, status Status, err error) {
	if err != nil {
		l.Error("insert failed",
			"key", key,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"key", key,
			"status", status,
		)
	}
}

// LogDelete logs a delete operation.
func (l *Logger) LogDelete(key []string, status Status, err error) {
	if err != nil {
		l.Error("delete failed",
			"key", key,
			"error", err,
		)
	} else {
		l.Debug("delete completed",
			"key", key,
			"status", status,
		)
	}
}

// LogReindex logs an index rebuild.
func (l *Logger) LogReindex(key []string, rows int) {
	l.Debug("index rebuilt",
		"key", key,
		"rows", rows,
	)
}
