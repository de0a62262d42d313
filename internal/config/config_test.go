package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected default session TTL 24h, got %s", cfg.SessionTTL)
	}
	if cfg.APIRateBurst != 40 {
		t.Errorf("expected default rate burst 40, got %d", cfg.APIRateBurst)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/backoffice")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://blackos.example, https://admin.blackos.example")
	t.Setenv("API_RATE_PER_SECOND", "5.5")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/backoffice" {
		t.Errorf("unexpected database url %s", cfg.DatabaseURL)
	}
	if cfg.SessionSecret != "s3cret" {
		t.Errorf("unexpected session secret %s", cfg.SessionSecret)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected session TTL 1h, got %s", cfg.SessionTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://admin.blackos.example" {
		t.Errorf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.APIRatePerSecond != 5.5 {
		t.Errorf("expected rate 5.5, got %f", cfg.APIRatePerSecond)
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	cfg := Load()
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected fallback 24h, got %s", cfg.SessionTTL)
	}
}
