package errors

import "net/http"

func define(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

// Caller
var (
	ErrUnauthenticated = define(http.StatusUnauthorized, "UNAUTHENTICATED", "The function must be called while authenticated.")
	ErrForbidden       = define(http.StatusForbidden, "FORBIDDEN", "You are not allowed to access this resource")
)

// Input
var (
	ErrInvalidArgument  = define(http.StatusBadRequest, "INVALID_ARGUMENT", "Latitude and longitude are required.")
	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
)

// Marketplace resources
var (
	ErrRequestNotFound      = define(http.StatusNotFound, "REQUEST_NOT_FOUND", "Service request not found")
	ErrInvalidTransition    = define(http.StatusConflict, "INVALID_TRANSITION", "The requested status change is not allowed")
	ErrProviderNotFound     = define(http.StatusNotFound, "PROVIDER_NOT_FOUND", "Provider not found")
	ErrNotificationNotFound = define(http.StatusNotFound, "NOTIFICATION_NOT_FOUND", "Notification not found")
	ErrNotFound             = define(http.StatusNotFound, "NOT_FOUND", "Resource not found")
)

// Infrastructure
var (
	ErrStoreUnavailable = define(http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "The data store is temporarily unavailable")
	ErrInternalError    = define(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

// DatabaseExecuteError is a store failure that is not a caller mistake.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps a driver error; details name the failed operation.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	if e.details != "" {
		return "database execution failed: " + e.details + ": " + e.err.Error()
	}

	return "database execution failed: " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
