// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Context keys and getter/setter functions live here so that values set by
// middleware can be consumed by services without those services importing
// net/http.
//
// Usage in services (read values):
//
//	voterID := requestcontext.VoterID(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in middleware (set values):
//
//	ctx = requestcontext.WithVoterID(ctx, voterID)
//	ctx = requestcontext.WithRequestID(ctx, requestID)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	voterIDKey     struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// VoterID retrieves the authenticated voter ID from the context.
// Returns the empty string if the request is anonymous.
func VoterID(ctx context.Context) string {
	if id, ok := ctx.Value(voterIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithVoterID injects an authenticated voter ID into the context.
func WithVoterID(ctx context.Context, voterID string) context.Context {
	return context.WithValue(ctx, voterIDKey{}, voterID)
}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now retrieves the request-scoped time from the context. Falls back to
// time.Now() for non-HTTP contexts such as CLI commands and tests that don't
// pin a time.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Used by the request-time
// middleware and by service tests that need deterministic timestamps.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
