// Package context carries request-scoped values between the delivery layer
// and the services: the request id, a logger tagged with it, and the admin
// session once the auth middleware accepted the cookie.
package context

import (
	"context"
	"log/slog"

	"stampshop/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID   ContextKey = "request_id"
	KeyLogger      ContextKey = "logger"
	KeyAdminClaims ContextKey = "admin_claims"

	// HeaderXRequestID is echoed on every response and forwarded to the notifier.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the id stored by the request id middleware, or ""
// for requests that never passed through it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext is used by services to stamp order events.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetAdminClaims records the admin session on the request so services can
// attribute back-office changes to it.
func SetAdminClaims(c echo.Context, claims *service.AdminClaims) {
	c.Set(string(KeyAdminClaims), claims)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), KeyAdminClaims, claims)))
}

// GetAdminClaims returns the admin session accepted for this request.
func GetAdminClaims(ctx context.Context) (*service.AdminClaims, bool) {
	claims, ok := ctx.Value(KeyAdminClaims).(*service.AdminClaims)

	return claims, ok && claims != nil
}
