package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected default addr %q", cfg.Addr)
	}
	if cfg.TokenDuration != time.Hour {
		t.Fatalf("unexpected default token duration %v", cfg.TokenDuration)
	}
	if cfg.RateLimit.Requests != 5 || cfg.RateLimit.Window != time.Minute {
		t.Fatalf("unexpected default rate limit %+v", cfg.RateLimit)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("AWTAD_ADDR", ":9999")
	t.Setenv("AWTAD_ADMIN_EMAIL", "admin@example.com")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("env override not applied: %q", cfg.Addr)
	}
	if cfg.Admin.Email != "admin@example.com" {
		t.Fatalf("env override not applied: %q", cfg.Admin.Email)
	}
}

func TestLoadConfigYAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `addr: ":7070"
jwt_secret: file-secret
rate_limit:
  requests: 10
  window: 30s
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.JWTSecret != "file-secret" {
		t.Fatalf("yaml overlay not applied: %+v", cfg)
	}
	if cfg.RateLimit.Requests != 10 || cfg.RateLimit.Window != 30*time.Second {
		t.Fatalf("yaml rate limit not applied: %+v", cfg.RateLimit)
	}
	// untouched keys keep their defaults
	if cfg.DatabasePath != "awtad.db" {
		t.Fatalf("default lost under overlay: %q", cfg.DatabasePath)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/no/such/config.yaml"); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
