package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values fall back to envDefault.
	for _, k := range []string{"HTTP_ADDR", "DB_PATH", "LOG_LEVEL", "HTTP_CLIENT_TIMEOUT", "SPOTIFY_ENDPOINT", "SESSION_IDLE_TTL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.DBPath != "data/termfolio.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
	if cfg.HTTPClientTimeout != 10*time.Second {
		t.Errorf("HTTPClientTimeout = %v, want 10s", cfg.HTTPClientTimeout)
	}
	if cfg.SessionIdleTTL != 30*time.Minute {
		t.Errorf("SessionIdleTTL = %v, want 30m", cfg.SessionIdleTTL)
	}
	if cfg.SpotifyEndpoint != "" {
		t.Errorf("SpotifyEndpoint = %q, want empty", cfg.SpotifyEndpoint)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SESSION_IDLE_TTL", "90s")
	t.Setenv("SPOTIFY_ENDPOINT", "http://localhost:3000/api/spotify")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
	if cfg.SessionIdleTTL != 90*time.Second {
		t.Errorf("SessionIdleTTL = %v", cfg.SessionIdleTTL)
	}
	if cfg.SpotifyEndpoint != "http://localhost:3000/api/spotify" {
		t.Errorf("SpotifyEndpoint = %q", cfg.SpotifyEndpoint)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("HTTP_CLIENT_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error")
	}
}
