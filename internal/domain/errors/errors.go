// Package errors defines the application error model. Every precondition
// violation in the service layer surfaces as the single InvalidInput
// kind required by the business rules; store-level failures pass
// through wrapped but unclassified.
package errors

import (
	"net/http"

	"shop/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// Is makes all errors sharing a business error code interchangeable for
// errors.Is, so services can build fresh InvalidInput values with
// per-violation details while callers still match on ErrInvalidInput.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

const codeInvalidInput = "INVALID_INPUT"

// ErrInvalidInput is the single error kind raised for violated
// preconditions. Match with errors.Is; construct concrete instances via
// NewInvalidInput so the violated constraint travels in the details.
var ErrInvalidInput = NewBaseError(
	http.StatusBadRequest,
	codeInvalidInput,
	"invalid input provided",
	"",
)

// ErrAmbiguousMatch is reserved for the dedup lookups finding more than
// one row for a natural key. The dedup lookups treat that case the
// same as no match (insert a new row), so this error is declared but
// never returned; it documents the open ambiguity instead of silently
// resolving it.
var ErrAmbiguousMatch = NewBaseError(
	http.StatusConflict,
	"AMBIGUOUS_MATCH",
	"more than one stored row matches the natural key",
	"",
)

// NewInvalidInput builds an InvalidInput error carrying the specific
// violated constraint.
func NewInvalidInput(details string) *BaseError {
	return ErrInvalidInput.WithDetails(details)
}

// WithDetails adds detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInput error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
