package handler

import (
	"log/slog"
	"net/http"
	"time"

	"stampshop/config"
	"stampshop/internal/delivery/api/response"
	"stampshop/internal/domain/constants"
	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// AdminHandler serves the back-office login and order management.
type AdminHandler struct {
	adminUC      usecase.AdminUsecase
	secureCookie bool
	logger       *slog.Logger
	now          func() time.Time
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	secure := params.Config.Admin != nil && params.Config.Admin.SecureCookie

	return &AdminHandler{
		adminUC:      params.AdminUC,
		secureCookie: secure,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// LoginRequest represents the request body for the admin login
type LoginRequest struct {
	Code string `json:"code"`
}

// UpdateStatusRequest represents the request body for a status change
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.Invalid(c, "Invalid login input")
	}

	session, err := h.adminUC.Login(c.Request().Context(), req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(h.sessionCookie(session.Token, session.ExpiresAt))

	return response.Success(c, http.StatusOK, map[string]any{"expiresAt": session.ExpiresAt})
}

// Logout handles POST /admin/logout
func (h *AdminHandler) Logout(c echo.Context) error {
	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return response.Success(c, http.StatusOK, map[string]bool{"loggedOut": true})
}

func (h *AdminHandler) sessionCookie(value string, expiresAt time.Time) *http.Cookie {
	maxAge := int(expiresAt.Sub(h.now()).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}

	return &http.Cookie{
		Name:     constants.AdminCookieName,
		Value:    value,
		Path:     constants.AdminCookiePath,
		Expires:  expiresAt,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}

// ListOrders handles GET /admin/orders
func (h *AdminHandler) ListOrders(c echo.Context) error {
	output, err := h.adminUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Private(c, output)
}

// GetOrder handles GET /admin/orders/:id
func (h *AdminHandler) GetOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	order, err := h.adminUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Private(c, order)
}

// UpdateStatus handles PATCH /admin/orders/:id
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Invalid(c, "Invalid status input")
	}

	order, err := h.adminUC.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Private(c, order)
}
