package errors

import (
	"errors"
	"fmt"
	"net/http"

	"stayin/app/domain"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Authentication and Authorization errors
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"

	// Account errors
	ErrCodeIdentityExists     ErrorCode = "IDENTITY_EXISTS"
	ErrCodeProfileNotFound    ErrorCode = "PROFILE_NOT_FOUND"
	ErrCodeProfileWriteFailed ErrorCode = "PROFILE_WRITE_FAILED"
	ErrCodePasswordTooWeak    ErrorCode = "PASSWORD_TOO_WEAK"
	ErrCodeInvalidRole        ErrorCode = "INVALID_ROLE"

	// Validation errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"

	// System errors
	ErrCodeInternalError      ErrorCode = "INTERNAL_ERROR"
	ErrCodeProviderError      ErrorCode = "PROVIDER_ERROR"
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// Generic errors
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeConflict   ErrorCode = "CONFLICT"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// FromDomain maps domain sentinel errors onto coded transport errors.
func FromDomain(err error) *AppError {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return Wrap(ErrCodeInvalidCredentials, "invalid credentials", err)
	case errors.Is(err, domain.ErrIdentityExists):
		return Wrap(ErrCodeIdentityExists, "an account already exists for this email", err)
	case errors.Is(err, domain.ErrProfileWriteFailed):
		return Wrap(ErrCodeProfileWriteFailed, "account created but profile could not be saved", err)
	case errors.Is(err, domain.ErrProfileNotFound):
		return Wrap(ErrCodeProfileNotFound, "profile not found", err)
	case errors.Is(err, domain.ErrPasswordTooWeak):
		return Wrap(ErrCodePasswordTooWeak, "password too weak", err)
	case errors.Is(err, domain.ErrInvalidRole):
		return Wrap(ErrCodeInvalidRole, "invalid role", err)
	case errors.Is(err, domain.ErrForbidden):
		return Wrap(ErrCodeForbidden, "access denied", err)
	case errors.Is(err, domain.ErrUnauthorized):
		return Wrap(ErrCodeUnauthorized, "authentication required", err)
	case errors.Is(err, domain.ErrProviderUnavailable):
		return Wrap(ErrCodeProviderError, "credential provider unavailable", err)
	default:
		return Wrap(ErrCodeInternalError, "internal server error", err)
	}
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeUnauthorized, ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeProfileNotFound, ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeIdentityExists, ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeValidationFailed, ErrCodeInvalidInput, ErrCodePasswordTooWeak, ErrCodeInvalidRole, ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeProfileWriteFailed, ErrCodeProviderError:
		return http.StatusBadGateway
	case ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
