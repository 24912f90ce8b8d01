package errors

import (
	"net/http"

	"blog/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
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

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is reports whether target is a BaseError of the same kind.
// Variants created by WithMessage or WithDetails match their kind.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy of the error with a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Error kinds
var (
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Not authenticated",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid input",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// Authentication errors
var (
	ErrInvalidCredentials = ErrUnauthenticated.WithMessage("Invalid username or password")
	ErrTokenInvalid       = ErrUnauthenticated.WithMessage("Invalid token")
	ErrTokenExpired       = ErrUnauthenticated.WithMessage("Token has expired")
	ErrPrincipalNotFound  = ErrUnauthenticated.WithMessage("User not found")
)

// Resource errors
var (
	ErrUserNotFound    = ErrNotFound.WithMessage("User not found")
	ErrPostNotFound    = ErrNotFound.WithMessage("Post not found")
	ErrCommentNotFound = ErrNotFound.WithMessage("Comment not found")

	ErrUsernameTaken     = ErrConflict.WithMessage("Username already exists")
	ErrEmailTaken        = ErrConflict.WithMessage("Email already exists")
	ErrUserAlreadyExists = ErrConflict.WithMessage("Username or email already exists")
)

// Validation errors
var (
	ErrValidationFailed = ErrInvalidInput.WithMessage("Validation failed")
	ErrEmptyTitle       = ErrInvalidInput.WithMessage("Title cannot be empty")
	ErrEmptyContent     = ErrInvalidInput.WithMessage("Content cannot be empty")
	ErrTitleTooLong     = ErrInvalidInput.WithMessage("Title must be at most 200 characters")
	ErrCommentTooLong   = ErrInvalidInput.WithMessage("Content must be at most 1000 characters")
	ErrInvalidPage      = ErrInvalidInput.WithMessage("Page must be >= 1")
	ErrInvalidPageSize  = ErrInvalidInput.WithMessage("Page size is out of range")
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

// Unwrap returns the underlying driver error
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
