package worker

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stampshop/config"
	"stampshop/internal/delivery/worker/handler"
	"stampshop/internal/infra/metrics"
	mockUC "stampshop/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParams(t *testing.T, m *metrics.Metrics) ServerParams {
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:          cfg,
			Logger:          logger,
			NotificationSvc: mockUC.NewMockNotificationUsecase(t),
		}),
	}
}

func TestNotifierRoutes(t *testing.T) {
	e := newEcho(newTestParams(t, metrics.New()))

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("oversized push is rejected before decoding", func(t *testing.T) {
		body := bytes.NewReader([]byte(`{"message":{"data":"` + strings.Repeat("a", 300<<10) + `"}}`))
		req := httptest.NewRequest(http.MethodPost, PushPath, body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("malformed push is acknowledged as bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(`{"message":{"data":"%%%"}}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNotifierRoutes_WithoutMetrics(t *testing.T) {
	e := newEcho(newTestParams(t, nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
