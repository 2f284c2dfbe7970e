package errors

import (
	"encoding/json"
	stderrors "errors"
	"strings"
)

// HTTPError is implemented by transport errors that carry an HTTP response.
type HTTPError interface {
	error
	Response() (status int, body []byte)
}

// problem is the JSON error envelope returned by the shipping API.
type problem struct {
	Status      int            `json:"status"`
	Error       string         `json:"error"`
	Message     string         `json:"message"`
	Description string         `json:"description"`
	Details     map[string]any `json:"details"`
}

// Translate maps a transport error onto a domain error.
//
// Errors carrying an HTTP response with a classified status become an
// *AppError whose Cause is err. Any other error, including nil, is returned
// unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsAppError(err); ok {
		return err
	}

	var httpErr HTTPError
	if !stderrors.As(err, &httpErr) {
		return err
	}
	status, body := httpErr.Response()
	code, ok := CodeForStatus(status)
	if !ok {
		return err
	}

	appErr := New(code, "", status).WithCause(err)
	p, decoded := decodeProblem(body)
	if decoded {
		appErr.Message = p.message()
		if p.Error != "" {
			appErr.WithDetails(map[string]any{"error": p.Error})
		}
		if len(p.Details) > 0 {
			appErr.WithDetails(map[string]any{"fields": p.Details})
		}
	}
	if appErr.Message == "" {
		appErr.Message = defaultMessage(code)
	}
	return appErr
}

func decodeProblem(body []byte) (problem, bool) {
	var p problem
	if len(body) == 0 {
		return p, false
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return p, false
	}
	return p, true
}

func (p problem) message() string {
	parts := make([]string, 0, 2)
	if p.Message != "" {
		parts = append(parts, p.Message)
	}
	if p.Description != "" && p.Description != p.Message {
		parts = append(parts, p.Description)
	}
	return strings.Join(parts, ": ")
}

func defaultMessage(code ErrorCode) string {
	switch code {
	case ErrCodeAuthorization:
		return Authorization("").Message
	case ErrCodeNotFound:
		return NotFound("").Message
	case ErrCodeValidation:
		return Validation("").Message
	default:
		return Backend("").Message
	}
}
