// internal/contextutil/context.go
package contextutil

import (
	"context"

	"zumogate/internal/auth"
	"zumogate/internal/observability/logging"
)

// Key is a type-safe key for context values
type Key string

const (
	// LoggerKey is the key for the logger
	LoggerKey Key = "context:logger"

	// TraceIDKey is the key for the trace ID
	TraceIDKey Key = "context:trace_id"

	// SpanIDKey is the key for the span ID
	SpanIDKey Key = "context:span_id"
)

// WithLogger adds a logger to a context
func WithLogger(ctx context.Context, logger *logging.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// GetLogger retrieves a logger from a context
func GetLogger(ctx context.Context) *logging.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*logging.Logger); ok {
		return logger
	}
	return nil
}

// WithTraceID adds a trace ID to a context
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves a trace ID from a context
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// WithIdentity adds an identity to a context. Identity values live under the
// auth package's keys so auth.IdentityFromContext sees the same value.
func WithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return auth.ContextWithIdentity(ctx, identity)
}

// GetIdentity retrieves an identity from a context. It returns a non-nil
// anonymous identity when none was attached.
func GetIdentity(ctx context.Context) *auth.Identity {
	return auth.IdentityFromContext(ctx)
}

// WithAuthScheme adds an authentication scheme to a context
func WithAuthScheme(ctx context.Context, scheme string) context.Context {
	return auth.ContextWithScheme(ctx, scheme)
}

// GetAuthScheme retrieves an authentication scheme from a context
func GetAuthScheme(ctx context.Context) string {
	return auth.SchemeFromContext(ctx)
}
