package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is a translated domain error.
type AppError struct {
	// Code is the domain error kind.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the status code of the response that produced the error,
	// or the kind's nominal status when built directly.
	HTTPStatus int `json:"-"`
	// Details carries backend-supplied context, e.g. per-field validation messages.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the transport error this error was translated from.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Authorization creates an error for a rejected or missing credential.
func Authorization(message string) *AppError {
	if message == "" {
		message = "Access token is missing or was rejected."
	}
	return New(ErrCodeAuthorization, message, http.StatusUnauthorized)
}

// NotFound creates an error for a resource that does not exist.
func NotFound(message string) *AppError {
	if message == "" {
		message = "The requested resource was not found."
	}
	return New(ErrCodeNotFound, message, http.StatusNotFound)
}

// Validation creates an error for a payload the backend rejected.
func Validation(message string) *AppError {
	if message == "" {
		message = "The request payload was rejected."
	}
	return New(ErrCodeValidation, message, http.StatusBadRequest)
}

// Backend creates an error for a failure on the backend side.
func Backend(message string) *AppError {
	if message == "" {
		message = "The shipping backend failed to process the request."
	}
	return New(ErrCodeBackend, message, http.StatusInternalServerError)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the domain error kind carried by err.
// The boolean is false for unclassified errors.
func CodeOf(err error) (ErrorCode, bool) {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code, true
	}
	return "", false
}

// IsAuthorization reports whether err is an authorization error.
func IsAuthorization(err error) bool { return hasCode(err, ErrCodeAuthorization) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return hasCode(err, ErrCodeNotFound) }

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return hasCode(err, ErrCodeValidation) }

// IsBackend reports whether err is a backend error.
func IsBackend(err error) bool { return hasCode(err, ErrCodeBackend) }

func hasCode(err error, code ErrorCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}
