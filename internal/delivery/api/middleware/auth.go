package middleware

import (
	"log/slog"

	"stampshop/internal/delivery/api/response"
	deliverycontext "stampshop/internal/delivery/context"
	"stampshop/internal/domain/constants"
	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AdminAuthMiddleware guards the back-office routes with the session cookie.
type AdminAuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAdminAuthMiddleware is the constructor for AdminAuthMiddleware.
func NewAdminAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects requests without a valid admin_token cookie.
func (m *AdminAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(constants.AdminCookieName)
		if err != nil || cookie.Value == "" {
			return unauthorized(c)
		}

		claims, err := m.tokenSvc.ValidateToken(cookie.Value)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Rejected admin token",
				slog.String("remote_ip", c.RealIP()),
				slog.Any("error", err),
			)

			return unauthorized(c)
		}

		deliverycontext.SetAdminClaims(c, claims)

		return next(c)
	}
}

func unauthorized(c echo.Context) error {
	return response.Fail(c, domainerrors.ErrUnauthorized)
}
