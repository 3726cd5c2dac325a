package middleware

import (
	"log/slog"
	"net/http"

	"stampshop/internal/delivery/api/response"
	deliverycontext "stampshop/internal/delivery/context"
	domainerrors "stampshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the API's echo.HTTPErrorHandler. Every error reaching it
// leaves as a JSON envelope; only server-side failures are logged.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, err, slog.String("code", appErr.ErrorCode()))
		}
		_ = response.Fail(c, appErr)
	case errors.As(err, &httpErr):
		// routing misses, body limits and binder failures from echo itself
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
	default:
		m.logFailure(c, err)
		_ = response.Fail(c, domainerrors.ErrInternalError)
	}
}

func (m *ErrorMiddleware) logFailure(c echo.Context, err error, attrs ...any) {
	req := c.Request()
	attrs = append(attrs,
		slog.Any("error", err),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
	)

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Request failed", attrs...)
}
