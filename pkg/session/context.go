package session

import (
	"context"
	"log/slog"
)

type idContextKey struct{}

// WithID adds the resolved session identifier to the context.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idContextKey{}, id)
}

// IDFromContext retrieves the session identifier from the context.
func IDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(idContextKey{}).(string)
	return id, ok && id != ""
}

// MustIDFromContext retrieves the session identifier or panics.
// Only use behind Middleware.
func MustIDFromContext(ctx context.Context) string {
	id, ok := IDFromContext(ctx)
	if !ok {
		panic("session: id not found in context")
	}
	return id
}

// LogExtractor adds session_id to log records written with a context that
// carries one. It matches logger.ContextExtractor.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := IDFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("session_id", id), true
}
