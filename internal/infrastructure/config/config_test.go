package config_test

import (
	"testing"
	"time"

	"github.com/pattarin/banchi/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CUTOFF_DAY", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.CutoffDay != 6 {
		t.Fatalf("expected default cutoff day 6, got %d", cfg.CutoffDay)
	}

	if cfg.ConfirmWindow != 60*time.Second {
		t.Fatalf("expected default confirm window 60s, got %s", cfg.ConfirmWindow)
	}

	if cfg.PendingStore != "memory" {
		t.Fatalf("expected default pending store memory, got %s", cfg.PendingStore)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CUTOFF_DAY", "25")
	t.Setenv("CONFIRM_WINDOW", "90s")
	t.Setenv("UTC_OFFSET_HOURS", "0")
	t.Setenv("PENDING_STORE", "redis")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.CutoffDay != 25 {
		t.Fatalf("expected cutoff day override, got %d", cfg.CutoffDay)
	}

	if cfg.ConfirmWindow != 90*time.Second {
		t.Fatalf("expected confirm window override, got %s", cfg.ConfirmWindow)
	}

	if cfg.UTCOffsetHours != 0 {
		t.Fatalf("expected offset override, got %d", cfg.UTCOffsetHours)
	}

	if cfg.PendingStore != "redis" {
		t.Fatalf("expected pending store override, got %s", cfg.PendingStore)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("CONFIRM_WINDOW", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
