package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Domain errors
	ErrorTypeValidation       ErrorType = "VALIDATION"
	ErrorTypeNotFound         ErrorType = "NOT_FOUND"
	ErrorTypeConflict         ErrorType = "CONFLICT"
	ErrorTypeInvalidReference ErrorType = "INVALID_REFERENCE"

	// Application errors
	ErrorTypeInternal       ErrorType = "INTERNAL"
	ErrorTypeNotImplemented ErrorType = "NOT_IMPLEMENTED"

	// Infrastructure errors
	ErrorTypePersistence ErrorType = "PERSISTENCE"
)

// AppError represents an application-specific error. Code carries the
// stable numeric identifier surfaced to API clients; it never changes once
// published.
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Code       int                    `json:"code,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

// Error implements the error interface. Persistence causes stay out of the
// message so storage internals never leak to clients.
func (e *AppError) Error() string {
	if e.Cause != nil && e.Type != ErrorTypePersistence {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Extensions exposes the error type and stable code to GraphQL responses
func (e *AppError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"type": string(e.Type),
	}
	if e.Code != 0 {
		ext["code"] = e.Code
	}
	return ext
}

// WithDetails adds error details
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// Constructor functions for common error types

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewInvalidReferenceError creates an error for a mutation that names an
// entity which does not exist
func NewInvalidReferenceError(message string, code int) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidReference,
		Message:    message,
		Code:       code,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewPersistenceError creates a storage failure error
func NewPersistenceError(message string, code int, err error) *AppError {
	return &AppError{
		Type:       ErrorTypePersistence,
		Message:    message,
		Code:       code,
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewNotImplementedError creates an error for operations the API declares
// but does not support
func NewNotImplementedError(operation string, code int) *AppError {
	return &AppError{
		Type:       ErrorTypeNotImplemented,
		Message:    fmt.Sprintf("operation '%s' is not implemented", operation),
		Code:       code,
		HTTPStatus: http.StatusNotImplemented,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Helper functions

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool {
	return IsType(err, ErrorTypeConflict)
}

// IsInvalidReference checks if an error names a missing entity
func IsInvalidReference(err error) bool {
	return IsType(err, ErrorTypeInvalidReference)
}

// IsPersistence checks if an error is a storage failure
func IsPersistence(err error) bool {
	return IsType(err, ErrorTypePersistence)
}

// IsNotImplemented checks if an error marks an unsupported operation
func IsNotImplemented(err error) bool {
	return IsType(err, ErrorTypeNotImplemented)
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return IsType(err, ErrorTypeInternal)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// If it's already an AppError, add context to message
	if appErr := GetAppError(err); appErr != nil {
		appErr.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return appErr
	}

	// Otherwise create a new internal error
	return NewInternalError(message).WithCause(err)
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
