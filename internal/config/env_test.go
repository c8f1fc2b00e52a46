package config

import (
	"errors"
	"testing"

	"roaddodge/internal/dodge"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAssets, EnvSeed, EnvFrontend, EnvMute, EnvLogLevel, EnvLogFile, EnvSpawnAttempts} {
		t.Setenv(k, "")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ROAD_TEST_KEY", "value")
	if got := GetEnv("ROAD_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("Expected value, got %s", got)
	}
	if got := GetEnv("ROAD_TEST_MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %s", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAssets, ".")
	t.Setenv(EnvFrontend, "desktop")
	t.Setenv(EnvLogLevel, "info")

	cfg, warnings, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if cfg.AssetDir != "." || cfg.Frontend != FrontendDesktop || cfg.LogLevel != "info" {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.SpawnAttempts != dodge.DefaultSpawnAttempts {
		t.Errorf("Expected %d spawn attempts, got %d", dodge.DefaultSpawnAttempts, cfg.SpawnAttempts)
	}
	if cfg.Muted {
		t.Error("Expected sound on by default")
	}
}

func TestLoadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAssets, "/srv/assets")
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvFrontend, "TERM")
	t.Setenv(EnvMute, "true")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "/tmp/road.log")
	t.Setenv(EnvSpawnAttempts, "0")

	cfg, warnings, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	want := Config{
		AssetDir:      "/srv/assets",
		Seed:          1234,
		Frontend:      FrontendTerminal,
		Muted:         true,
		LogLevel:      "debug",
		LogFile:       "/tmp/road.log",
		SpawnAttempts: 0,
	}
	if cfg != want {
		t.Errorf("Expected %+v, got %+v", want, cfg)
	}
}

func TestLoadWarnings(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Bad seed", EnvSeed, "abc"},
		{"Bad mute", EnvMute, "loud"},
		{"Negative attempts", EnvSpawnAttempts, "-3"},
		{"Bad log level", EnvLogLevel, "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvFrontend, "desktop")
			t.Setenv(EnvLogLevel, "info")
			t.Setenv(tt.key, tt.value)

			cfg, warnings, err := Load()
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if len(warnings) != 1 {
				t.Errorf("Expected 1 warning, got %v", warnings)
			}
			if cfg.LogLevel != "info" {
				t.Errorf("Expected log level info, got %s", cfg.LogLevel)
			}
			if cfg.SpawnAttempts != dodge.DefaultSpawnAttempts {
				t.Errorf("Expected default spawn attempts, got %d", cfg.SpawnAttempts)
			}
		})
	}
}

func TestLoadUnknownFrontend(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFrontend, "vr")
	t.Setenv(EnvLogLevel, "info")

	_, _, err := Load()
	if !errors.Is(err, ErrUnknownFrontend) {
		t.Errorf("Expected ErrUnknownFrontend, got %v", err)
	}
}
