package errors

import (
	"net/http"

	"stampshop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code, so errors.Is
// keeps working after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		nil,
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_CREATION_FAILED",
		"Failed to create order",
		nil,
	)

	ErrOrderIDExhausted = NewBaseError(
		http.StatusConflict,
		"ORDER_ID_EXHAUSTED",
		"Could not allocate a unique order ID, please retry",
		nil,
	)

	ErrOrderIDRequired = NewBaseError(
		http.StatusBadRequest,
		"ORDER_ID_REQUIRED",
		"Order ID is required",
		nil,
	)

	ErrOrderAlreadyPaid = NewBaseError(
		http.StatusConflict,
		"ORDER_ALREADY_PAID",
		"Order has already been paid",
		nil,
	)

	// Tracking-related errors
	ErrTrackingInputRequired = NewBaseError(
		http.StatusBadRequest,
		"TRACKING_INPUT_REQUIRED",
		"Order ID and Phone Number are required",
		nil,
	)

	ErrPhoneMismatch = NewBaseError(
		http.StatusUnauthorized,
		"PHONE_MISMATCH",
		"Phone number does not match order records.",
		nil,
	)

	// Payment-related errors
	ErrPaymentGatewayFailed = NewBaseError(
		http.StatusInternalServerError,
		"PAYMENT_GATEWAY_FAILED",
		"Failed to create checkout session",
		nil,
	)

	ErrSessionIDRequired = NewBaseError(
		http.StatusBadRequest,
		"SESSION_ID_REQUIRED",
		"Session ID is required",
		nil,
	)

	ErrPaymentNotCompleted = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_NOT_COMPLETED",
		"Payment not completed",
		nil,
	)

	ErrSessionMissingOrder = NewBaseError(
		http.StatusBadRequest,
		"SESSION_MISSING_ORDER",
		"Order ID not found in session",
		nil,
	)

	ErrInvalidWebhookSignature = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SIGNATURE",
		"Invalid webhook signature",
		nil,
	)

	ErrWebhookProcessingFailed = NewBaseError(
		http.StatusInternalServerError,
		"WEBHOOK_PROCESSING_FAILED",
		"Webhook handler failed",
		nil,
	)

	// Admin-related errors
	ErrStatusRequired = NewBaseError(
		http.StatusBadRequest,
		"STATUS_REQUIRED",
		"Status required",
		nil,
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Invalid status",
		nil,
	)

	ErrInvalidCodeFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CODE_FORMAT",
		"Invalid code format",
		nil,
	)

	ErrInvalidAdminCode = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_ADMIN_CODE",
		"Invalid authenticator code",
		nil,
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		nil,
	)

	// Upload-related errors
	ErrDocumentNotFound = NewBaseError(
		http.StatusNotFound,
		"DOCUMENT_NOT_FOUND",
		"Document not found",
		nil,
	)

	ErrInvalidDocument = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DOCUMENT",
		"Only PDF, PNG and JPEG documents are accepted",
		nil,
	)

	ErrDocumentTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"DOCUMENT_TOO_LARGE",
		"Document exceeds the upload limit",
		nil,
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Failed to store document",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid order data",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		nil,
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
