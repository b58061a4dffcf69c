package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const sessionIDKey ctxKey = "session_id"

// WithSessionID tags the context with the client session the work
// belongs to. Set once when a session starts, read everywhere below.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

func SessionIDFrom(ctx context.Context) string {
	if v := ctx.Value(sessionIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns logger with session_id automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	sessID := SessionIDFrom(ctx)
	if sessID == "" {
		return L()
	}
	return L().With(zap.String("session_id", sessID))
}
