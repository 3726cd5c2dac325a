package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"stampshop/config"
	deliverycontext "stampshop/internal/delivery/context"
	domainerrors "stampshop/internal/domain/errors"
	"stampshop/internal/domain/service"
	mockUC "stampshop/internal/mocks/usecase"
	"stampshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockNotificationUsecase) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)

	if cfg == nil {
		cfg = &config.Config{}
	}

	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationUC,
	})

	return h, notificationUC
}

func pushRequest(t *testing.T, event *service.OrderEvent, attributes map[string]string) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/local/subscriptions/order-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func servePush(h *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func paidEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:  "req-from-event",
		EventID:    "cs_paid_1",
		Kind:       service.OrderEventPaid,
		OrderID:    "0195a0c2-7f0e-7b9c-8a44-3f1d2c3b4a59",
		FriendlyID: "SS-7K2Q9X",
		PaymentID:  "cs_paid_1",
	}
}

func TestPushHandler_DeliversEventWithRequestID(t *testing.T) {
	h, notificationUC := createTestPushHandler(t, nil)

	notificationUC.EXPECT().
		HandleOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.EventID == "cs_paid_1" && e.Kind == service.OrderEventPaid
		})).
		RunAndReturn(func(ctx context.Context, _ *service.OrderEvent) error {
			// attribute wins over the event field
			assert.Equal(t, "req-from-attr", requestIDFrom(ctx))

			return nil
		})

	rec := servePush(h, pushRequest(t, paidEvent(), map[string]string{"request_id": "req-from-attr"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_FailureClassification(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown order is dropped", domainerrors.ErrOrderNotFound, http.StatusOK},
		{"partial send is not redelivered", errors.Wrap(usecase.ErrNotificationFailed, "receipt"), http.StatusOK},
		{"database outage is retried", errors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, notificationUC := createTestPushHandler(t, nil)
			notificationUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(tc.err)

			rec := servePush(h, pushRequest(t, paidEvent(), nil))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	h, _ := createTestPushHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/push",
		bytes.NewReader([]byte(`{"message":{"data":"!!not-base64!!"}}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, servePush(h, req).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("plain text"))
	req = httptest.NewRequest(http.MethodPost, "/push",
		bytes.NewReader([]byte(`{"message":{"data":"`+notJSON+`"}}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, servePush(h, req).Code)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"

	t.Run("missing token", func(t *testing.T) {
		h, _ := createTestPushHandler(t, cfg)
		require.True(t, h.verifyPushAuth)

		rec := servePush(h, pushRequest(t, paidEvent(), nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := createTestPushHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		req := pushRequest(t, paidEvent(), nil)
		req.Header.Set("Authorization", "Bearer token")
		assert.Equal(t, http.StatusUnauthorized, servePush(h, req).Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, notificationUC := createTestPushHandler(t, cfg)
		var audience string
		h.validateToken = func(_ context.Context, _ string, aud string) (*idtoken.Payload, error) {
			audience = aud

			return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
		}
		notificationUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(nil)

		req := pushRequest(t, paidEvent(), nil)
		req.Header.Set("Authorization", "Bearer token")
		assert.Equal(t, http.StatusOK, servePush(h, req).Code)
		assert.Equal(t, "http://example.com/push", audience)
	})
}

func requestIDFrom(ctx context.Context) string {
	return deliverycontext.GetRequestIDFromContext(ctx)
}
