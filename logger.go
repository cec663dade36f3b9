package vecmath

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecmath-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithVector adds v under key to the logger.
func (l *Logger) WithVector(key string, v Vector) *Logger {
	return &Logger{
		Logger: l.Logger.With(key, v),
	}
}

// LogConstruct logs the outcome of a dimensioned constructor.
func (l *Logger) LogConstruct(ctx context.Context, dim int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "construct failed",
			"dimension", dim,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "construct completed",
			"dimension", dim,
		)
	}
}

// LogResult logs the vector produced by op.
func (l *Logger) LogResult(ctx context.Context, op string, result Vector) {
	l.InfoContext(ctx, "operation completed",
		"op", op,
		"result", result,
	)
}

// LogScalar logs the scalar produced by op.
func (l *Logger) LogScalar(ctx context.Context, op string, value float64) {
	l.InfoContext(ctx, "operation completed",
		"op", op,
		"value", value,
	)
}
