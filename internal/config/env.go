// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"roaddodge/internal/dodge"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Environment keys.
const (
	EnvAssets        = "ROAD_ASSETS"
	EnvSeed          = "ROAD_SEED"
	EnvFrontend      = "ROAD_FRONTEND"
	EnvMute          = "ROAD_MUTE"
	EnvLogLevel      = "ROAD_LOG_LEVEL"
	EnvLogFile       = "ROAD_LOG_FILE"
	EnvSpawnAttempts = "ROAD_SPAWN_ATTEMPTS"
)

type Frontend string

const (
	FrontendDesktop  Frontend = "desktop"
	FrontendTerminal Frontend = "term"
)

var ErrUnknownFrontend = errors.New("unknown frontend")

// Config holds everything main needs to start a game.
type Config struct {
	AssetDir      string
	Seed          uint64
	Frontend      Frontend
	Muted         bool
	LogLevel      string
	LogFile       string
	SpawnAttempts int
}

// Load reads the environment. Malformed optional values fall back to their
// defaults and are reported in warnings; only an unknown frontend is an error.
func Load() (Config, []string, error) {
	var warnings []string
	cfg := Config{
		AssetDir:      GetEnv(EnvAssets, "."),
		Seed:          uint64(time.Now().UnixNano()),
		Frontend:      Frontend(strings.ToLower(GetEnv(EnvFrontend, string(FrontendDesktop)))),
		LogLevel:      strings.ToLower(GetEnv(EnvLogLevel, "info")),
		LogFile:       GetEnv(EnvLogFile, ""),
		SpawnAttempts: dodge.DefaultSpawnAttempts,
	}

	if s := os.Getenv(EnvSeed); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			cfg.Seed = v
		} else {
			warnings = append(warnings, fmt.Sprintf("%s=%q is not a number, using clock seed", EnvSeed, s))
		}
	}

	if s := os.Getenv(EnvMute); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			cfg.Muted = v
		} else {
			warnings = append(warnings, fmt.Sprintf("%s=%q is not a boolean, sound stays on", EnvMute, s))
		}
	}

	if s := os.Getenv(EnvSpawnAttempts); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			cfg.SpawnAttempts = v
		} else {
			warnings = append(warnings, fmt.Sprintf("%s=%q is not a non-negative integer, using %d", EnvSpawnAttempts, s, dodge.DefaultSpawnAttempts))
		}
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("%s=%q is not a log level, using info", EnvLogLevel, cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	switch cfg.Frontend {
	case FrontendDesktop, FrontendTerminal:
	default:
		return cfg, warnings, fmt.Errorf("%s=%q: %w", EnvFrontend, cfg.Frontend, ErrUnknownFrontend)
	}

	return cfg, warnings, nil
}
