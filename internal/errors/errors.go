package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password, so login failures are not enumerable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("user already exists")
	// ErrUnauthorized is returned when a request carries no valid identity.
	ErrUnauthorized = errors.New("not authorized to access this route")
	// ErrForbidden is returned when an identity lacks the required role.
	ErrForbidden = errors.New("not authorized to perform this action")
	// ErrUserNotFound is returned when a user id has no matching record.
	ErrUserNotFound = errors.New("user not found")
	// ErrPortfolioNotFound is returned when a portfolio item id has no matching record.
	ErrPortfolioNotFound = errors.New("portfolio item not found")
	// ErrContactNotFound is returned when a contact message id has no matching record.
	ErrContactNotFound = errors.New("contact message not found")
)

// ValidationError carries per-field messages for malformed input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError creates a validation error from field messages.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// becomes a generic 500 with the underlying detail withheld from the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "CONFLICT")
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPortfolioNotFound),
		errors.Is(err, ErrContactNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Server error", "INTERNAL_ERROR")
	}
}
