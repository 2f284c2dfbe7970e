package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

type responseError struct {
	status int
	body   []byte
}

func (e *responseError) Error() string { return fmt.Sprintf("HTTP %d", e.status) }

func (e *responseError) Response() (int, []byte) { return e.status, e.body }

func TestTranslate_Nil(t *testing.T) {
	if Translate(nil) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestTranslate_ByStatus(t *testing.T) {
	tests := []struct {
		status int
		code   ErrorCode
	}{
		{401, ErrCodeAuthorization},
		{403, ErrCodeAuthorization},
		{404, ErrCodeNotFound},
		{400, ErrCodeValidation},
		{422, ErrCodeValidation},
		{500, ErrCodeBackend},
		{502, ErrCodeBackend},
	}
	for _, tt := range tests {
		src := &responseError{status: tt.status}
		err := Translate(src)
		appErr, ok := AsAppError(err)
		if !ok {
			t.Fatalf("status %d: expected AppError, got %T", tt.status, err)
		}
		if appErr.Code != tt.code {
			t.Errorf("status %d: code = %s, want %s", tt.status, appErr.Code, tt.code)
		}
		if appErr.HTTPStatus != tt.status {
			t.Errorf("status %d: HTTPStatus = %d", tt.status, appErr.HTTPStatus)
		}
		if appErr.Message == "" {
			t.Errorf("status %d: expected default message", tt.status)
		}
		if !stderrors.Is(err, src) {
			t.Errorf("status %d: translated error should wrap the transport error", tt.status)
		}
	}
}

func TestTranslate_DecodesErrorEnvelope(t *testing.T) {
	body := []byte(`{"status":400,"error":"validation_failed","message":"There are some validation errors",` +
		`"details":{"receiver":[{"phone":["invalid"]}]}}`)
	err := Translate(&responseError{status: 400, body: body})

	appErr, ok := AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Message != "There are some validation errors" {
		t.Errorf("unexpected message %q", appErr.Message)
	}
	if appErr.Details["error"] != "validation_failed" {
		t.Errorf("expected error key in details, got %v", appErr.Details)
	}
	if _, ok := appErr.Details["fields"]; !ok {
		t.Errorf("expected fields in details, got %v", appErr.Details)
	}
}

func TestTranslate_DescriptionAppended(t *testing.T) {
	body := []byte(`{"error":"token_invalid","message":"Token is invalid","description":"Token expired"}`)
	appErr, _ := AsAppError(Translate(&responseError{status: 401, body: body}))
	if appErr == nil {
		t.Fatal("expected AppError")
	}
	if appErr.Message != "Token is invalid: Token expired" {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

func TestTranslate_NonJSONBody(t *testing.T) {
	appErr, _ := AsAppError(Translate(&responseError{status: 502, body: []byte("<html>bad gateway</html>")}))
	if appErr == nil {
		t.Fatal("expected AppError")
	}
	if appErr.Message != Backend("").Message {
		t.Errorf("expected default backend message, got %q", appErr.Message)
	}
}

func TestTranslate_Passthrough(t *testing.T) {
	plain := fmt.Errorf("dial tcp: connection refused")
	if got := Translate(plain); got != plain {
		t.Errorf("expected plain error unchanged, got %v", got)
	}

	conflict := &responseError{status: 409}
	if got := Translate(conflict); got != conflict {
		t.Errorf("expected unclassified status unchanged, got %v", got)
	}

	already := NotFound("x")
	if got := Translate(already); got != already {
		t.Errorf("expected domain error unchanged, got %v", got)
	}
}

func TestTranslate_Deterministic(t *testing.T) {
	src := &responseError{status: 404, body: []byte(`{"message":"Not found"}`)}
	a, _ := AsAppError(Translate(src))
	b, _ := AsAppError(Translate(src))
	if a.Code != b.Code || a.Message != b.Message {
		t.Errorf("translation differs between calls: %v vs %v", a, b)
	}
}
