package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"stampshop/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	c := newEchoContext()
	assert.Empty(t, GetRequestID(c))

	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "from-ctx")))
	assert.Equal(t, "from-ctx", GetRequestID(c))

	SetRequestID(c, "from-echo")
	assert.Equal(t, "from-echo", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestAdminClaims(t *testing.T) {
	c := newEchoContext()

	_, ok := GetAdminClaims(c.Request().Context())
	assert.False(t, ok)

	claims := &service.AdminClaims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{ID: "session-1"}}
	SetAdminClaims(c, claims)

	got, ok := GetAdminClaims(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, "session-1", got.ID)
	assert.Same(t, claims, c.Get(string(KeyAdminClaims)))
}
