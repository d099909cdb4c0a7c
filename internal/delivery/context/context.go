// Package context carries request-scoped values (request id, logger, caller)
// between the HTTP layers and the services they call.
package context

import (
	"context"
	"log/slog"

	"mastercraft/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyCaller    ContextKey = "caller"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored by the request ID middleware,
// falling back to the request context and then to a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" when none is set.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil when none is set.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetCaller stores the verified caller in echo.Context and in the request's context.Context.
func SetCaller(c echo.Context, caller *service.CallerIdentity) {
	c.Set(string(KeyCaller), caller)
	c.SetRequest(c.Request().WithContext(WithCaller(c.Request().Context(), caller)))
}

// GetCaller returns the verified caller, or nil for anonymous requests.
func GetCaller(c echo.Context) *service.CallerIdentity {
	caller, _ := c.Get(string(KeyCaller)).(*service.CallerIdentity)

	return caller
}

// WithCaller returns a new context with the caller identity.
func WithCaller(ctx context.Context, caller *service.CallerIdentity) context.Context {
	return context.WithValue(ctx, KeyCaller, caller)
}

// GetCallerFromContext returns the caller identity, or nil when none is set.
func GetCallerFromContext(ctx context.Context) *service.CallerIdentity {
	caller, _ := ctx.Value(KeyCaller).(*service.CallerIdentity)

	return caller
}
