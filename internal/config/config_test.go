package config

import (
	"os"
	"path/filepath"
	"testing"
)

const baseConfig = `server:
  address: 127.0.0.1
  port: 9090
  mode: release

database:
  host: db.local
  port: 3307
  name: calendrier_editoriel
  user: calendrier
  password: calendrier

jwt:
  secret: file-secret
  ttl_seconds: 3600

cors:
  allowed_origin: http://localhost:8081
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, baseConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.local" {
		t.Errorf("database.host = %q, want db.local", cfg.Database.Host)
	}
	if cfg.Database.Charset != "utf8mb4" {
		t.Errorf("database.charset = %q, want utf8mb4 default", cfg.Database.Charset)
	}
	if cfg.JWT.Secret != "file-secret" {
		t.Errorf("jwt.secret = %q, want file-secret", cfg.JWT.Secret)
	}
	if cfg.JWT.TTLSeconds != 3600 {
		t.Errorf("jwt.ttl_seconds = %d, want 3600", cfg.JWT.TTLSeconds)
	}
	if cfg.CORS.AllowedOrigin != "http://localhost:8081" {
		t.Errorf("cors.allowed_origin = %q", cfg.CORS.AllowedOrigin)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ECAL_JWT_SECRET", "env-secret")
	t.Setenv("ECAL_DATABASE_HOST", "env.local")

	cfg, err := Load(writeConfig(t, baseConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("jwt.secret = %q, want env-secret from environment", cfg.JWT.Secret)
	}
	if cfg.Database.Host != "env.local" {
		t.Errorf("database.host = %q, want env.local from environment", cfg.Database.Host)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	noSecret := `jwt:
  ttl_seconds: 3600
`
	if _, err := Load(writeConfig(t, noSecret)); err == nil {
		t.Error("Load() without jwt.secret error = nil, want error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing file error = nil, want error")
	}
}
