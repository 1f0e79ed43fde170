package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message, safe for clients.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains optional additional context for the client.
	Details string `json:"details,omitempty"`
	// Cause is the underlying error. It is logged but never serialized.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails sets the client-visible details string and returns the receiver.
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// --- Common Error Constructors ---

// NotFound creates a new AppError for an entity lookup miss.
func NotFound(message string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: message,
		HTTPStatus: http.StatusNotFound,
	}
}

// BadRequest creates a new AppError for a semantically malformed request.
func BadRequest(message string) *AppError {
	return &AppError{
		Code: ErrCodeBadRequest, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Unauthorized creates a new AppError for a credential failure. The message
// is deliberately generic: login must not reveal which factor failed.
func Unauthorized() *AppError {
	return &AppError{
		Code: ErrCodeUnauthorized, Message: "Unauthorized",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// MissingToken creates a new AppError for an absent or malformed
// Authorization header.
func MissingToken() *AppError {
	return &AppError{
		Code: ErrCodeMissingToken, Message: "Authorization header missing or invalid",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// InvalidToken creates a new AppError for a token that failed verification.
func InvalidToken() *AppError {
	return &AppError{
		Code: ErrCodeInvalidToken, Message: "Invalid or expired token",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a new AppError for a role check failure.
func Forbidden(message string) *AppError {
	if message == "" {
		message = "You don't have permission to perform this action"
	}
	return &AppError{
		Code: ErrCodeForbidden, Message: message,
		HTTPStatus: http.StatusForbidden,
	}
}

// RateLimited creates a new AppError for an exceeded request quota.
func RateLimited() *AppError {
	return &AppError{
		Code: ErrCodeRateLimited, Message: "Rate limit exceeded",
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// Validation creates a new AppError for a field constraint violation.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeValidation, Message: message,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(message string) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Database creates a new AppError for a store backend failure.
func Database(cause error) *AppError {
	return &AppError{
		Code: ErrCodeDatabase, Message: "A database error occurred. Please try again.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// AuthConfig creates a new AppError for an authentication misconfiguration.
func AuthConfig(message string) *AppError {
	return &AppError{
		Code: ErrCodeAuth, Message: message,
		HTTPStatus: http.StatusInternalServerError,
	}
}
