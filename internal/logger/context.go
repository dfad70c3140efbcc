package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userEmailKey contextKey = "user_email"
)

// WithRequestID stores the request id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithUserEmail stores the authenticated email in the context.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// GetRequestID returns the request id from the context, or "".
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// FromContext builds a logger carrying request_id and user_email fields when
// they are present in the context.
func FromContext(ctx context.Context) *slog.Logger {
	l := GetLogger()
	if requestID := GetRequestID(ctx); requestID != "" {
		l = l.With("request_id", requestID)
	}
	if email, ok := ctx.Value(userEmailKey).(string); ok && email != "" {
		l = l.With("user_email", email)
	}
	return l
}

// CtxInfo logs at info level with context fields.
func CtxInfo(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

// CtxWarn logs at warn level with context fields.
func CtxWarn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

// CtxError logs at error level with context fields.
func CtxError(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Error(msg, args...)
}

// CtxWithError logs an error with context fields and an error field.
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	FromContext(ctx).With("error", err.Error()).Error(msg, args...)
}
