package gfaview

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/gfaview/graph"
)

// Logger wraps slog.Logger with gfaview-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithNode adds a node field to the logger.
func (l *Logger) WithNode(id graph.NodeID) *Logger {
	return &Logger{
		Logger: l.Logger.With("node", uint64(id)),
	}
}

// WithPath adds a path field to the logger.
func (l *Logger) WithPath(id graph.PathID) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", uint64(id)),
	}
}

// LogBuild logs index construction.
func (l *Logger) LogBuild(ctx context.Context, nodes, paths int, elapsed time.Duration) {
	l.InfoContext(ctx, "index built",
		"nodes", nodes,
		"paths", paths,
		"elapsed", elapsed,
	)
}

// LogQuery logs one blocking worker request.
func (l *Logger) LogQuery(ctx context.Context, kind string, elapsed time.Duration) {
	l.DebugContext(ctx, "query served",
		"kind", kind,
		"elapsed", elapsed,
	)
}

// LogOverlay logs an overlay build.
func (l *Logger) LogOverlay(ctx context.Context, nodes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "overlay build failed",
			"nodes", nodes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "overlay built",
			"nodes", nodes,
		)
	}
}
