// Package response writes the storefront's JSON envelope.
//
// Every body is either {"data": ..., "meta": {...}} or
// {"error": {...}, "meta": {...}}.
package response

import (
	"net/http"

	deliverycontext "stampshop/internal/delivery/context"
	domainerrors "stampshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CodeInvalidInput is used for requests that fail before reaching a usecase.
const CodeInvalidInput = "INVALID_INPUT"

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data with the given status.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Private writes a 200 that intermediaries must not cache. Used for bodies
// carrying customer details.
func Private(c echo.Context, data any) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return Success(c, http.StatusOK, data)
}

// Error writes an error envelope. Server failures and authentication
// failures never carry details.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// Invalid writes a 400 for input the handler could not read or bind.
func Invalid(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeInvalidInput, message, nil)
}

// Fail writes a known application error.
func Fail(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

// HandleAppError writes err when it is an application error. Anything else
// is returned wrapped so the central error handler logs it.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Fail(c, appErr)
	}

	return errors.WithStack(err)
}
