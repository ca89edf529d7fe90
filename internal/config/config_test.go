package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "4000" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.Timezone != "America/New_York" {
		t.Fatalf("unexpected timezone %q", cfg.Timezone)
	}
	if cfg.Provider != "espn" {
		t.Fatalf("unexpected provider %q", cfg.Provider)
	}
	if cfg.UpdateInterval != 2*time.Minute {
		t.Fatalf("unexpected interval %v", cfg.UpdateInterval)
	}
	if cfg.DisplayWidth != 128 || cfg.DisplayHeight != 32 {
		t.Fatalf("unexpected display %dx%d", cfg.DisplayWidth, cfg.DisplayHeight)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("metrics default on")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TICKER_PORT", "8080")
	t.Setenv("TICKER_PROVIDER", "fixture")
	t.Setenv("TICKER_UPDATE_INTERVAL", "5m")
	t.Setenv("TICKER_DISPLAY_WIDTH", "64")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("unexpected provider %q", cfg.Provider)
	}
	if cfg.UpdateInterval != 5*time.Minute {
		t.Fatalf("unexpected interval %v", cfg.UpdateInterval)
	}
	if cfg.DisplayWidth != 64 {
		t.Fatalf("unexpected width %d", cfg.DisplayWidth)
	}
}

func TestLoadFloorsAggressiveInterval(t *testing.T) {
	t.Setenv("TICKER_UPDATE_INTERVAL", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UpdateInterval != 30*time.Second {
		t.Fatalf("expected interval floored to 30s, got %v", cfg.UpdateInterval)
	}
}

func TestLoadClampsDisplay(t *testing.T) {
	t.Setenv("TICKER_DISPLAY_WIDTH", "0")
	t.Setenv("TICKER_DISPLAY_HEIGHT", "-4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DisplayWidth != 128 || cfg.DisplayHeight != 32 {
		t.Fatalf("expected display defaults restored, got %dx%d", cfg.DisplayWidth, cfg.DisplayHeight)
	}
}
