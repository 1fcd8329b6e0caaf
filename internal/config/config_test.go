package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PATH", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("RATE_LIMIT_BURST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.DBPath != "data/familywealth.db" {
		t.Errorf("Expected default db path, got %s", cfg.DBPath)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.RateLimitPerMinute != 300 {
		t.Errorf("Expected default rate limit 300, got %d", cfg.RateLimitPerMinute)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://a.example,http://b.example")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("RATE_LIMIT_BURST", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("Expected overridden db path, got %s", cfg.DBPath)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("Expected 2 CORS origins, got %d", len(cfg.CORSOrigins))
	}
	if cfg.RateLimitPerMinute != 120 || cfg.RateLimitBurst != 12 {
		t.Errorf("Expected rate limit 120/12, got %d/%d", cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	}
}

func TestLoad_RejectsBadRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "-5")

	if _, err := Load(); err == nil {
		t.Error("Expected error for negative rate limit")
	}
}
