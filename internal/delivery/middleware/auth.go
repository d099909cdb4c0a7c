package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "mastercraft/internal/delivery/context"
	"mastercraft/internal/domain/entity"
	domainerrors "mastercraft/internal/domain/errors"
	"mastercraft/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates callers from their bearer token and authorizes them by role.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate verifies the bearer token and stores the caller identity for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header must be a Bearer token")
		}

		ctx := c.Request().Context()
		caller, err := m.verifier.VerifyToken(ctx, strings.TrimSpace(token))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).DebugContext(ctx, "Token rejected", slog.Any("error", err))

			return domainerrors.ErrUnauthenticated
		}

		deliverycontext.SetCaller(c, caller)

		return next(c)
	}
}

// RequireRole rejects callers without role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := deliverycontext.GetCaller(c)
			if caller == nil {
				return domainerrors.ErrUnauthenticated
			}
			if !caller.HasRole(role) {
				return domainerrors.ErrForbidden.WithDetails("require '" + role.String() + "' role")
			}

			return next(c)
		}
	}
}
