package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ANALYSIS_DELAY", "")
	t.Setenv("BOOKING_WINDOW_DAYS", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.AnalysisDelay != 1500*time.Millisecond {
		t.Fatalf("expected default analysis delay, got %s", cfg.AnalysisDelay)
	}
	if cfg.BookingWindowDays != 30 {
		t.Fatalf("expected default booking window, got %d", cfg.BookingWindowDays)
	}
	if cfg.UseMemoryStore {
		t.Fatalf("expected memory store disabled by default")
	}
	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Fatalf("expected no CORS origins by default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "localhost:6380")
	t.Setenv("USE_MEMORY_STORE", "true")
	t.Setenv("ANALYSIS_DELAY", "10ms")
	t.Setenv("BOOKING_DELAY", "25ms")
	t.Setenv("BOOKING_WINDOW_DAYS", "14")
	t.Setenv("SESSION_TTL", "12h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://kiosk.example.org, https://admin.example.org")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.RedisAddr != "localhost:6380" {
		t.Fatalf("expected redis override, got %s", cfg.RedisAddr)
	}
	if !cfg.UseMemoryStore {
		t.Fatalf("expected memory store enabled")
	}
	if cfg.AnalysisDelay != 10*time.Millisecond {
		t.Fatalf("expected analysis delay override, got %s", cfg.AnalysisDelay)
	}
	if cfg.BookingDelay != 25*time.Millisecond {
		t.Fatalf("expected booking delay override, got %s", cfg.BookingDelay)
	}
	if cfg.BookingWindowDays != 14 {
		t.Fatalf("expected booking window override, got %d", cfg.BookingWindowDays)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("expected session ttl override, got %s", cfg.SessionTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "https://kiosk.example.org" {
		t.Fatalf("expected CORS origins parsed, got %v", cfg.CORSAllowedOrigins)
	}
}
