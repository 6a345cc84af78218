package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// ContextKey is the key type for request context values.
type ContextKey string

const (
	// UserContextKey is the context key for the authenticated *domain.User.
	UserContextKey ContextKey = "user"

	// UserIDContextKey is the context key for the authenticated user's ID.
	UserIDContextKey ContextKey = "userID"

	// TraceIDKey is the context key for the request trace ID.
	TraceIDKey ContextKey = "traceID"

	// traceIDLength is the number of random bytes in a trace ID.
	traceIDLength = 16
)

// SetTraceID adds a fresh trace ID to the context, used to correlate logs
// and error responses for one request.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, newTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" when absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func newTraceID() string {
	b := make([]byte, traceIDLength)
	// crypto/rand.Read does not fail on supported platforms.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
