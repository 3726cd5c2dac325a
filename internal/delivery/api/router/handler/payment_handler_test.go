package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "stampshop/internal/domain/errors"
	mockUC "stampshop/internal/mocks/usecase"
	"stampshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestPaymentHandler(t *testing.T) (*echo.Echo, *mockUC.MockPaymentUsecase) {
	paymentUC := mockUC.NewMockPaymentUsecase(t)

	h := NewPaymentHandler(PaymentHandlerParams{
		PaymentUC: paymentUC,
		Logger:    newDiscardLogger(),
	})

	e := newTestEcho()
	e.POST("/payment/checkout", h.CreateCheckoutSession)
	e.GET("/payment/verify-session", h.VerifySession)
	e.POST("/payment/webhook", h.Webhook)

	return e, paymentUC
}

func TestPaymentHandler_CreateCheckoutSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, paymentUC := createTestPaymentHandler(t)
		paymentUC.EXPECT().CreateCheckoutSession(mock.Anything, "SS-7K2Q9X").
			Return(&usecase.CheckoutOutput{SessionID: "cs_1", URL: "https://checkout.example/cs_1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/payment/checkout", strings.NewReader(`{"orderId":"SS-7K2Q9X"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"sessionId":"cs_1","url":"https://checkout.example/cs_1"}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("missing order id", func(t *testing.T) {
		e, _ := createTestPaymentHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/payment/checkout", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, []string{"Order ID is required"}, env.Error.Details["orderId"])
	})

	t.Run("gateway failure hides details", func(t *testing.T) {
		e, paymentUC := createTestPaymentHandler(t)
		paymentUC.EXPECT().CreateCheckoutSession(mock.Anything, "SS-7K2Q9X").
			Return(nil, domainerrors.ErrPaymentGatewayFailed.WrapMessage("api key revoked"))

		req := httptest.NewRequest(http.MethodPost, "/payment/checkout", strings.NewReader(`{"orderId":"SS-7K2Q9X"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "api key revoked")
	})
}

func TestPaymentHandler_Webhook(t *testing.T) {
	const payload = `{"id":"evt_1","type":"checkout.session.completed"}`

	t.Run("raw body and signature reach the usecase", func(t *testing.T) {
		e, paymentUC := createTestPaymentHandler(t)
		paymentUC.EXPECT().HandleWebhook(mock.Anything, []byte(payload), "t=1,v1=abc").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/payment/webhook", strings.NewReader(payload))
		req.Header.Set(HeaderStripeSignature, "t=1,v1=abc")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"received":true}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("bad signature", func(t *testing.T) {
		e, paymentUC := createTestPaymentHandler(t)
		paymentUC.EXPECT().HandleWebhook(mock.Anything, mock.Anything, "").Return(domainerrors.ErrInvalidWebhookSignature)

		req := httptest.NewRequest(http.MethodPost, "/payment/webhook", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("persistence failure asks for a retry", func(t *testing.T) {
		e, paymentUC := createTestPaymentHandler(t)
		paymentUC.EXPECT().HandleWebhook(mock.Anything, mock.Anything, mock.Anything).
			Return(domainerrors.ErrWebhookProcessingFailed.WrapMessage("deadlock"))

		req := httptest.NewRequest(http.MethodPost, "/payment/webhook", strings.NewReader(payload))
		req.Header.Set(HeaderStripeSignature, "sig")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestPaymentHandler_VerifySession(t *testing.T) {
	e, paymentUC := createTestPaymentHandler(t)
	paymentUC.EXPECT().VerifySession(mock.Anything, "").Return(nil, domainerrors.ErrSessionIDRequired)

	req := httptest.NewRequest(http.MethodGet, "/payment/verify-session", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SESSION_ID_REQUIRED", decodeEnvelope(t, rec).Error.Code)
}
