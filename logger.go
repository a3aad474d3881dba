package quadgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with quadgo-specific context.
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

// WithRadius adds a radius field to the logger.
func (l *Logger) WithRadius(radius float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("radius", radius),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs an index build.
func (l *Logger) LogBuild(ctx context.Context, points int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"points", points,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "tree constructed",
			"points", points,
		)
	}
}

// LogNear logs a proximity search.
func (l *Logger) LogNear(ctx context.Context, centroids int, radius float64, results int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "proximity search failed",
			"centroids", centroids,
			"radius", radius,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "proximity search completed",
			"centroids", centroids,
			"radius", radius,
			"results", results,
		)
	}
}

// LogSolve logs a radius solve.
func (l *Logger) LogSolve(ctx context.Context, target int, radius float64, count int, converged bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "radius solve failed",
			"target", target,
			"error", err,
		)
		return
	}
	if converged {
		l.DebugContext(ctx, "radius solve converged",
			"target", target,
			"radius", radius,
			"count", count,
		)
	} else {
		l.WarnContext(ctx, "radius solve returned best effort",
			"target", target,
			"radius", radius,
			"count", count,
		)
	}
}
