package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"stampshop/config"
	apimiddleware "stampshop/internal/delivery/api/middleware"
	"stampshop/internal/delivery/api/router/handler"
	"stampshop/internal/domain/constants"
	"stampshop/internal/domain/service"
	"stampshop/internal/infra/auth"
	"stampshop/internal/infra/metrics"
	mockUC "stampshop/internal/mocks/usecase"
	"stampshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	echo    *echo.Echo
	tokens  service.TokenService
	adminUC *mockUC.MockAdminUsecase
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Admin: &config.AdminConfig{JWTSecret: "router-test-secret"}}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	adminUC := mockUC.NewMockAdminUsecase(t)

	r := NewRouter(RouterParams{
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			OrderUC:    mockUC.NewMockOrderUsecase(t),
			TrackingUC: mockUC.NewMockTrackingUsecase(t),
			Logger:     logger,
		}),
		PaymentHandler: handler.NewPaymentHandler(handler.PaymentHandlerParams{
			PaymentUC: mockUC.NewMockPaymentUsecase(t),
			Logger:    logger,
		}),
		UploadHandler: handler.NewUploadHandler(handler.UploadHandlerParams{
			UploadUC: mockUC.NewMockUploadUsecase(t),
			Logger:   logger,
		}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			AdminUC: adminUC,
			Config:  cfg,
			Logger:  logger,
		}),
		AdminAuth: apimiddleware.NewAdminAuthMiddleware(tokens, logger),
		Metrics:   metrics.New(),
	})

	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)

	return routerFixtures{echo: e, tokens: tokens, adminUC: adminUC}
}

func TestRouter_AdminOrdersRequireSession(t *testing.T) {
	fx := createTestRouter(t)

	t.Run("no cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/orders", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("forged cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
		req.AddCookie(&http.Cookie{Name: constants.AdminCookieName, Value: "not.a.jwt"})
		rec := httptest.NewRecorder()
		fx.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRouter_AdminOrdersWithSession(t *testing.T) {
	fx := createTestRouter(t)

	token, _, err := fx.tokens.GenerateAdminToken()
	require.NoError(t, err)

	fx.adminUC.EXPECT().ListOrders(mock.Anything).Return(&usecase.OrderListOutput{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(&http.Cookie{Name: constants.AdminCookieName, Value: token})
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_PublicRoutes(t *testing.T) {
	fx := createTestRouter(t)

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_ServesStoredDocuments(t *testing.T) {
	fx := createTestRouter(t)

	var found bool
	for _, route := range fx.echo.Routes() {
		if route.Method == http.MethodGet && route.Path == constants.DocumentsPath+"/*" {
			found = true
		}
	}
	assert.True(t, found, "document route not registered")
}
