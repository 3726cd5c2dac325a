package handler

import (
	"io"
	"log/slog"
	"net/http"

	"stampshop/internal/delivery/api/response"
	"stampshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderStripeSignature carries the webhook HMAC.
const HeaderStripeSignature = "Stripe-Signature"

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler bridges the storefront to hosted checkout.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CheckoutRequest represents the request body for opening a checkout session
type CheckoutRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}

// CreateCheckoutSession handles POST /payment/checkout
func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Invalid(c, "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.paymentUC.CreateCheckoutSession(c.Request().Context(), req.OrderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// VerifySession handles GET /payment/verify-session?session_id=
func (h *PaymentHandler) VerifySession(c echo.Context) error {
	output, err := h.paymentUC.VerifySession(c.Request().Context(), c.QueryParam("session_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Private(c, output)
}

// Webhook handles POST /payment/webhook. The body must reach the usecase
// byte-for-byte for signature verification, so it is never bound.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.Invalid(c, "Unreadable webhook body")
	}

	signature := c.Request().Header.Get(HeaderStripeSignature)

	if err := h.paymentUC.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"received": true})
}
