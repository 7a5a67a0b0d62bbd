package binvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with binvec-specific context.
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

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogAdjust logs a Hamming adjustment.
// Callers scope the logger with WithDimension.
func (l *Logger) LogAdjust(flips, probes int, err error) {
	if err != nil {
		l.Error("hamming adjustment failed",
			"flips", flips,
			"probes", probes,
			"error", err,
		)
	} else {
		l.Debug("hamming adjustment completed",
			"flips", flips,
			"probes", probes,
		)
	}
}

// LogOrthogonalize logs an orthogonalization.
// Callers scope the logger with WithCount and WithDimension.
func (l *Logger) LogOrthogonalize(err error) {
	if err != nil {
		l.Warn("orthogonalize failed", "error", err)
	} else {
		l.Debug("orthogonalize completed")
	}
}

// LogIntersect logs a fuzzy intersection.
func (l *Logger) LogIntersect(disputed int) {
	l.Debug("fuzzy intersection completed", "disputed", disputed)
}

// LogCombine logs a weighted combination.
func (l *Logger) LogCombine(err error) {
	if err != nil {
		l.Warn("weighted combination failed", "error", err)
	} else {
		l.Debug("weighted combination completed")
	}
}
