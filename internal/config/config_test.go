package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" || cfg.Database.DSN != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.API.EmptyListNotFound || cfg.API.DefaultPageLimit != 100 {
		t.Fatalf("unexpected api defaults: %+v", cfg.API)
	}
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	path := writeYAML(t, `
http:
  addr: ":9000"
  shutdownTimeout: 3s
database:
  dsn: postgres://from-file
  ensureSchema: true
rateLimit:
  enabled: false
api:
  emptyListNotFound: false
  defaultPageLimit: 25
`)
	t.Setenv("DB_DSN", "postgres://from-env")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":9000" || cfg.HTTP.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected http: %+v", cfg.HTTP)
	}
	if cfg.Database.DSN != "postgres://from-env" || !cfg.Database.EnsureSchema {
		t.Fatalf("unexpected database: %+v", cfg.Database)
	}
	if cfg.RateLimit.Enabled || cfg.API.EmptyListNotFound || cfg.API.DefaultPageLimit != 25 {
		t.Fatalf("file values not applied: %+v %+v", cfg.RateLimit, cfg.API)
	}
	if cfg.Log.Format != "json" || cfg.Log.Level != "info" {
		t.Fatalf("unexpected log: %+v", cfg.Log)
	}
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("EMPTY_LIST_NOT_FOUND", "false")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg := Default()
	if err := ApplyEnvOverrides(&cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.HTTP.Addr != ":7000" || cfg.API.EmptyListNotFound || cfg.RateLimit.RPS != 2.5 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestApplyEnvOverrides_Logging(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("APP_NAME", "pets-test")

	cfg := Default()
	if err := ApplyEnvOverrides(&cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" || cfg.Log.App != "pets-test" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestApplyEnvOverrides_ReportsEveryBadValue(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("RATE_LIMIT_ENABLED", "maybe")

	cfg := Default()
	err := ApplyEnvOverrides(&cfg)
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, name := range []string{"DB_MAX_CONNS", "RATE_LIMIT_ENABLED"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("expected %s in %q", name, err.Error())
		}
	}
}
