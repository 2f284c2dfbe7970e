package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", buf.String(), err)
	}
	return m
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "json", Writer: &buf}, "shipx")

	l.Debug("hello", Fields("method", "GET"))

	m := decodeLine(t, &buf)
	if m["message"] != "hello" {
		t.Errorf("expected message hello, got %v", m["message"])
	}
	if m[FieldService] != "shipx" {
		t.Errorf("expected service field, got %v", m[FieldService])
	}
	if m["method"] != "GET" {
		t.Errorf("expected method field, got %v", m["method"])
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Writer: &buf}, "")

	l.Info("skipped")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
	l.Warn("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("expected warn to be written, got %q", buf.String())
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "loud", Writer: &buf}, "")
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Format: "console", NoColor: true, Writer: &buf}, "")
	l.Info("pretty")
	if !strings.Contains(buf.String(), "pretty") {
		t.Errorf("expected console output, got %q", buf.String())
	}
}

func TestWithComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf}, "svc").
		WithComponent("adapter").
		WithFields(map[string]any{FieldRequestID: "r-1"}).
		WithError(errors.New("boom"))

	l.Error("failed")

	m := decodeLine(t, &buf)
	if m[FieldComponent] != "adapter" {
		t.Errorf("expected component, got %v", m[FieldComponent])
	}
	if m[FieldRequestID] != "r-1" {
		t.Errorf("expected request id, got %v", m[FieldRequestID])
	}
	if m["error"] != "boom" {
		t.Errorf("expected error field, got %v", m["error"])
	}
	if l.name != "svc" {
		t.Errorf("name should be preserved, got %q", l.name)
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing happens")
	if l.Zerolog().GetLevel().String() == "" {
		t.Error("expected a level on the nop logger")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
	if cfg.Format != FormatJSON || cfg.Level != "info" || cfg.Output != "stderr" {
		t.Errorf("unexpected defaults %+v", cfg)
	}

	bad := Config{Level: "verbose", Format: "json"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
	bad = Config{Level: "info", Format: "xml"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, 2, "ignored", "b")
	if len(m) != 1 || m["a"] != 1 {
		t.Errorf("unexpected fields %v", m)
	}

	ef := ErrorFields("get", errors.New("x"))
	if ef[FieldOperation] != "get" || ef[FieldError] != "x" {
		t.Errorf("unexpected error fields %v", ef)
	}

	df := DurationFields("get", 1500*time.Millisecond)
	if df[FieldDuration] != int64(1500) {
		t.Errorf("unexpected duration fields %v", df)
	}
}
