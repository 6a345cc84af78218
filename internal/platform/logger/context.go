package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithLogger returns a context carrying the given logger. Middleware uses
// this to attach a request-scoped logger (e.g. one tagged with a trace ID).
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// FromContext returns the logger stored in the context, or slog.Default()
// when none is present.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

// FromContextOrDefault returns the logger stored in the context, falling back
// to the provided default, then to slog.Default().
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return log
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
