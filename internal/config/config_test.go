package config

import (
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BRAND_SESSION_SECRET", strings.Repeat("s", MinSessionSecretLength))
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBPath != "./data/brandsite.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if !cfg.IsDevelopment() {
		t.Error("default environment should be development")
	}
	if cfg.UseRedisCache() {
		t.Error("redis cache should be off without BRAND_REDIS_URL")
	}
	if cfg.DoSeed {
		t.Error("seeding should be off by default")
	}
}

func TestLoad_ShortSecretRejected(t *testing.T) {
	t.Setenv("BRAND_SESSION_SECRET", "too-short")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for short session secret")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BRAND_SERVER_HOST", "0.0.0.0")
	t.Setenv("BRAND_SERVER_PORT", "9090")
	t.Setenv("BRAND_ENV", "production")
	t.Setenv("BRAND_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ServerAddr() != "0.0.0.0:9090" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
	if cfg.IsDevelopment() {
		t.Error("production env should not report development")
	}
	if !cfg.UseRedisCache() {
		t.Error("redis cache should be on with BRAND_REDIS_URL")
	}
}
