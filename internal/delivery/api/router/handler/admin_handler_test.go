package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stampshop/config"
	"stampshop/internal/domain/entity"
	domainerrors "stampshop/internal/domain/errors"
	mockUC "stampshop/internal/mocks/usecase"
	"stampshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminHandler(t *testing.T, secure bool) (*echo.Echo, *AdminHandler, *mockUC.MockAdminUsecase) {
	adminUC := mockUC.NewMockAdminUsecase(t)

	h := NewAdminHandler(AdminHandlerParams{
		AdminUC: adminUC,
		Config:  &config.Config{Admin: &config.AdminConfig{SecureCookie: secure}},
		Logger:  newDiscardLogger(),
	})

	e := newTestEcho()
	e.POST("/admin/login", h.Login)
	e.POST("/admin/logout", h.Logout)
	e.GET("/admin/orders/:id", h.GetOrder)
	e.PATCH("/admin/orders/:id", h.UpdateStatus)

	return e, h, adminUC
}

func TestAdminHandler_Login_SetsSessionCookie(t *testing.T) {
	e, h, adminUC := createTestAdminHandler(t, true)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	adminUC.EXPECT().Login(mock.Anything, "123456").
		Return(&usecase.AdminSession{Token: "signed.jwt", ExpiresAt: now.Add(24 * time.Hour)}, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"code":"123456"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "admin_token", cookie.Name)
	assert.Equal(t, "signed.jwt", cookie.Value)
	assert.Equal(t, "/admin", cookie.Path)
	assert.Equal(t, 86400, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestAdminHandler_Login_Failures(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"malformed code", domainerrors.ErrInvalidCodeFormat, http.StatusBadRequest},
		{"wrong code", domainerrors.ErrInvalidAdminCode, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, _, adminUC := createTestAdminHandler(t, false)
			adminUC.EXPECT().Login(mock.Anything, "000000").Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"code":"000000"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestAdminHandler_Logout_ClearsCookie(t *testing.T) {
	e, _, _ := createTestAdminHandler(t, false)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	setCookie := rec.Header().Get(echo.HeaderSetCookie)
	assert.Contains(t, setCookie, "admin_token=;")
	assert.Contains(t, setCookie, "Max-Age=0")
	assert.Contains(t, setCookie, "Path=/admin")
}

func TestAdminHandler_GetOrder_MalformedID(t *testing.T) {
	e, _, _ := createTestAdminHandler(t, false)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminHandler_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, _, adminUC := createTestAdminHandler(t, false)
		id := uuid.New()
		adminUC.EXPECT().UpdateStatus(mock.Anything, id, "DELIVERED").
			Return(&entity.Order{ID: id, FriendlyID: "SS-7K2Q9X", Status: entity.OrderStatusDelivered}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/admin/orders/"+id.String(), strings.NewReader(`{"status":"DELIVERED"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"status":"DELIVERED"`)
	})

	t.Run("invalid status", func(t *testing.T) {
		e, _, adminUC := createTestAdminHandler(t, false)
		id := uuid.New()
		adminUC.EXPECT().UpdateStatus(mock.Anything, id, "SHIPPED").Return(nil, domainerrors.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodPatch, "/admin/orders/"+id.String(), strings.NewReader(`{"status":"SHIPPED"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_STATUS", decodeEnvelope(t, rec).Error.Code)
	})
}
