// Package errors defines the application errors the API renders and the
// worker classifies for retries.
package errors

import (
	"net/http"

	"mastercraft/internal/errors"
)

// AppError is an error that knows how it is presented to API callers.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// FromError returns the first AppError in err's chain.
func FromError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// BaseError is a catalogue error identified by its code.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError with the same code, so WithDetails copies
// still satisfy errors.Is against the catalogue entry.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy of e carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Withheld reports whether details must not reach the caller: server
// failures and authentication or authorization refusals.
func Withheld(httpCode int) bool {
	return httpCode >= http.StatusInternalServerError ||
		httpCode == http.StatusUnauthorized ||
		httpCode == http.StatusForbidden
}
