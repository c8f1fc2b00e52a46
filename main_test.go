package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roaddodge/internal/config"
	"roaddodge/internal/dodge"
)

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "road.log")
	cfg := config.Config{LogFile: path, LogLevel: "debug", Frontend: config.FrontendTerminal}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	bus := dodge.NewEventBus()
	logEvents(bus, logger)
	bus.Emit(dodge.Event{Type: dodge.EventGameOver, Data: 17})
	bus.Emit(dodge.Event{Type: dodge.EventSpawnExhausted, Data: 5})
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file, got %v", err)
	}
	out := string(data)
	for _, want := range []string{"roaddodge", "game over", "survived=17", "spawn attempts exhausted"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log to contain %q, got:\n%s", want, out)
		}
	}
}

func TestNewLoggerLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "road.log")
	cfg := config.Config{LogFile: path, LogLevel: "warn"}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closeLog()

	data, _ := os.ReadFile(path)
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Error("Expected info line filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("Expected warn line in log")
	}
}

func TestNewLoggerBadPath(t *testing.T) {
	cfg := config.Config{LogFile: filepath.Join(t.TempDir(), "missing", "road.log"), LogLevel: "info"}
	if _, _, err := newLogger(cfg); err == nil {
		t.Error("Expected error for unwritable log path")
	}
}
