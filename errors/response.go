package errors

import (
	stderrors "errors"
)

// ErrorBody is the flat JSON structure returned to clients.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// ToBody converts an AppError to an ErrorBody for JSON serialization.
// Internal causes are never included.
func (e *AppError) ToBody() ErrorBody {
	return ErrorBody{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
