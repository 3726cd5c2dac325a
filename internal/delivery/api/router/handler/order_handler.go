package handler

import (
	"log/slog"
	"net/http"

	"stampshop/internal/delivery/api/response"
	"stampshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC    usecase.OrderUsecase
	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// OrderHandler serves order submission and the public tracking page.
type OrderHandler struct {
	orderUC    usecase.OrderUsecase
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:    params.OrderUC,
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// SubmitOrder handles POST /orders
func (h *OrderHandler) SubmitOrder(c echo.Context) error {
	var input usecase.SubmitOrderInput
	if err := c.Bind(&input); err != nil {
		return response.Invalid(c, "Invalid order input")
	}

	output, err := h.orderUC.SubmitOrder(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// TrackOrder handles GET /orders/track?id=&phone=
func (h *OrderHandler) TrackOrder(c echo.Context) error {
	order, err := h.trackingUC.TrackOrder(c.Request().Context(), c.QueryParam("id"), c.QueryParam("phone"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Private(c, map[string]any{"order": order})
}

// TrackingQR handles GET /orders/:friendlyId/qr
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	png, err := h.trackingUC.TrackingQR(c.Request().Context(), c.Param("friendlyId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}
