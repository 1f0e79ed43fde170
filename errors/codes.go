package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeBadRequest indicates a semantically malformed request.
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	// ErrCodeRateLimited indicates the caller exceeded a request quota.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
)

// Authentication/Authorization errors
const (
	// ErrCodeUnauthorized indicates a credential failure or an expired or
	// otherwise invalid token.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeMissingToken indicates an absent or malformed Authorization header.
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	// ErrCodeInvalidToken indicates a bearer token that failed verification.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	// ErrCodeForbidden indicates the caller lacks a required role.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
	// ErrCodeAuth indicates an authentication misconfiguration.
	ErrCodeAuth ErrorCode = "AUTH_ERROR"
)

// Validation errors
const (
	// ErrCodeValidation indicates a field constraint violation.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_SERVER_ERROR"
	// ErrCodeDatabase indicates a store backend failure.
	ErrCodeDatabase ErrorCode = "DATABASE_ERROR"
)
