package httpclient

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Timeout)
	}

	cfg = Config{Timeout: 5 * time.Second}
	cfg.ApplyDefaults()
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected timeout to be kept, got %v", cfg.Timeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{Timeout: time.Second}, ""},
		{"zero timeout", Config{}, "timeout must be positive"},
		{"cert without key", Config{Timeout: time.Second, TLS: &TLSConfig{CertFile: "c.pem"}}, "must be set together"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{TLS: &TLSConfig{KeyFile: "k.pem"}})
	if err == nil {
		t.Fatal("expected error for inconsistent TLS config")
	}
}

func TestTLSConfig_Build(t *testing.T) {
	var nilCfg *TLSConfig
	if cfg, err := nilCfg.Build(); cfg != nil || err != nil {
		t.Errorf("nil config should build to nil, got %v, %v", cfg, err)
	}

	empty := &TLSConfig{}
	if cfg, _ := empty.Build(); cfg != nil {
		t.Error("empty config should build to nil")
	}

	cfg, err := (&TLSConfig{SkipVerify: true, ServerName: "api.example"}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.InsecureSkipVerify || cfg.ServerName != "api.example" {
		t.Errorf("unexpected tls config %+v", cfg)
	}
	if cfg.MinVersion != tls.VersionTLS12 {
		t.Errorf("expected TLS 1.2 minimum, got %x", cfg.MinVersion)
	}
}

func TestTLSConfig_BuildBadCA(t *testing.T) {
	dir := t.TempDir()
	ca := filepath.Join(dir, "ca.pem")
	if err := os.WriteFile(ca, []byte("not a certificate"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := (&TLSConfig{CAFile: ca}).Build(); err == nil {
		t.Error("expected error for invalid CA bundle")
	}
	if _, err := (&TLSConfig{CAFile: filepath.Join(dir, "missing.pem")}).Build(); err == nil {
		t.Error("expected error for missing CA file")
	}
}
