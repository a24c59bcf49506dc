package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
)

type contextKey string

// UserIDContextKey is the context key for the resolved user id.
const UserIDContextKey contextKey = "userID"

// SetTraceID adds a fresh trace ID to the context.
// The id is shared with the logger package so request-scoped log lines and
// error responses carry the same value.
func SetTraceID(ctx context.Context) context.Context {
	return logger.WithTraceID(ctx, NewTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" when none is set.
func GetTraceID(ctx context.Context) string {
	return logger.TraceIDFromContext(ctx)
}

// NewTraceID returns a random 32 character hex id.
func NewTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// WithUserID returns a copy of ctx carrying the user id requests act on.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// UserIDFromContext returns the user id set by the user middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
