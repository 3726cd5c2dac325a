package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "stampshop/internal/delivery/context"
	domainerrors "stampshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestPrivate(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Private(c, map[string]string{"status": "READY"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
	assert.JSONEq(t, `{"data":{"status":"READY"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_DetailsVisibility(t *testing.T) {
	details := map[string]string{"field": "phone"}

	tests := []struct {
		name        string
		status      int
		wantDetails bool
	}{
		{name: "bad request keeps details", status: http.StatusBadRequest, wantDetails: true},
		{name: "conflict keeps details", status: http.StatusConflict, wantDetails: true},
		{name: "unauthorized drops details", status: http.StatusUnauthorized},
		{name: "server error drops details", status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", details))

			assert.Equal(t, tt.status, rec.Code)
			errBody, ok := decode(t, rec)["error"].(map[string]any)
			require.True(t, ok)
			_, present := errBody["details"]
			assert.Equal(t, tt.wantDetails, present)
		})
	}
}

func TestInvalid(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Invalid(c, "File is required"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"INVALID_INPUT","message":"File is required"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestHandleAppError(t *testing.T) {
	t.Run("application error is written", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, errors.Wrap(domainerrors.ErrOrderNotFound, "lookup"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		errBody, ok := decode(t, rec)["error"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, domainerrors.ErrOrderNotFound.ErrorCode(), errBody["code"])
	})

	t.Run("unknown error is returned", func(t *testing.T) {
		c, rec := newContext()
		cause := errors.New("boom")

		err := HandleAppError(c, cause)

		require.Error(t, err)
		assert.True(t, errors.Is(err, cause))
		assert.Zero(t, rec.Body.Len())
	})
}
