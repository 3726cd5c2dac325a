package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"stampshop/config"
	deliverycontext "stampshop/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		keepsID bool
	}{
		{name: "well formed id is reused", header: "req-123.abc_DEF", keepsID: true},
		{name: "missing id is generated", header: ""},
		{name: "id with spaces is replaced", header: "evil id\nforged=1"},
		{name: "overlong id is replaced", header: strings.Repeat("a", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&logs, nil))
			mw := NewRequestIDMiddleware(logger)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/orders/track", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			assert.Contains(t, logs.String(), `"request_id":"`+seen+`"`)
			if tt.keepsID {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
			}
		})
	}
}

func TestLoggerMiddleware_RedactsTrackingCredentials(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(logger, cfg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/track?id=SS-7K2Q9X&phone=0501234567", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "HTTP Request")
	assert.Contains(t, out, "SS-7K2Q9X")
	assert.NotContains(t, out, "0501234567")
	assert.Contains(t, out, url.QueryEscape("********67"))
}

func TestLoggerMiddleware_Quiet(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(logger, cfg)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, logs.String())

	cfg.Env.Debug = false
	mw = NewLoggerMiddleware(logger, cfg)
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/orders", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, logs.String())
}

func TestMask(t *testing.T) {
	assert.Equal(t, "**", mask("ab"))
	assert.Equal(t, "***45", mask("12345"))
	assert.Equal(t, "", mask(""))
}
