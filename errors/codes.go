package errors

import "net/http"

// ErrorCode represents a machine-readable domain error kind.
type ErrorCode string

const (
	// ErrCodeAuthorization indicates the credential was rejected or missing.
	ErrCodeAuthorization ErrorCode = "AUTHORIZATION_FAILED"
	// ErrCodeNotFound indicates the target resource does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeValidation indicates the backend rejected the request payload.
	ErrCodeValidation ErrorCode = "VALIDATION_FAILED"
	// ErrCodeBackend indicates a failure on the backend side.
	ErrCodeBackend ErrorCode = "BACKEND_ERROR"
)

// CodeForStatus maps an HTTP status code to a domain error kind.
// The boolean is false when the status does not belong to any kind.
func CodeForStatus(status int) (ErrorCode, bool) {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrCodeAuthorization, true
	case status == http.StatusNotFound:
		return ErrCodeNotFound, true
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return ErrCodeValidation, true
	case status >= http.StatusInternalServerError:
		return ErrCodeBackend, true
	default:
		return "", false
	}
}
