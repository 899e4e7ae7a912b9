package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	ErrCodeDuplicate  = "DUPLICATE"
	ErrCodeEmpty      = "EMPTY"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// AppError represents an application error with a machine-readable code
type AppError struct {
	Code    string // Error code (e.g., "DUPLICATE", "VALIDATION_ERROR")
	Message string // Human-readable error message
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDuplicateError creates a new DUPLICATE error
func NewDuplicateError(resource string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicate,
		Message: fmt.Sprintf("%s already exists", resource),
	}
}

// NewEmptyError creates a new EMPTY error for operations that need at least one element
func NewEmptyError(action string) *AppError {
	return &AppError{
		Code:    ErrCodeEmpty,
		Message: fmt.Sprintf("nothing to %s", action),
	}
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal error",
		Err:     err,
	}
}

// HasCode reports whether err, or any error it wraps, is an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
