package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies HTTP client errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, reset).
	ErrCodeConnection
	// ErrCodeRequest indicates the request could not be built.
	ErrCodeRequest
	// ErrCodeAuth indicates a 401 or 403 response.
	ErrCodeAuth
	// ErrCodeNotFound indicates a 404 response.
	ErrCodeNotFound
	// ErrCodeRateLimit indicates a 429 response.
	ErrCodeRateLimit
	// ErrCodeValidation indicates any other 4xx response.
	ErrCodeValidation
	// ErrCodeServer indicates a 5xx response.
	ErrCodeServer
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeRequest:
		return "request"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeRateLimit:
		return "rate_limit"
	case ErrCodeValidation:
		return "validation"
	case ErrCodeServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a structured HTTP client error.
type Error struct {
	// StatusCode is the HTTP status code (0 for errors without a response).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Body is the response body, if any.
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Response returns the status code and body of the response that produced
// the error. Status is 0 when no response was received.
func (e *Error) Response() (int, []byte) {
	return e.StatusCode, e.Body
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Err: err}
}

// NewRequestError creates an error for a request that could not be built.
func NewRequestError(err error) *Error {
	return &Error{Code: ErrCodeRequest, Message: err.Error(), Err: err}
}

// ClassifyStatusCode converts an HTTP status code into a typed error.
// Returns nil for any status below 400.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	e := &Error{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
	switch {
	case statusCode < http.StatusBadRequest:
		return nil
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		e.Code = ErrCodeAuth
	case statusCode == http.StatusNotFound:
		e.Code = ErrCodeNotFound
	case statusCode == http.StatusTooManyRequests:
		e.Code = ErrCodeRateLimit
	case statusCode < http.StatusInternalServerError:
		e.Code = ErrCodeValidation
	default:
		e.Code = ErrCodeServer
	}
	return e
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool { return hasCode(err, ErrCodeTimeout) }

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool { return hasCode(err, ErrCodeConnection) }

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.StatusCode == status
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
