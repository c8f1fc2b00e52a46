package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"roaddodge/internal/assets"
	"roaddodge/internal/audio"
	"roaddodge/internal/config"
	"roaddodge/internal/dodge"
	"roaddodge/internal/game"
	"roaddodge/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "roaddodge: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, warnings, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	for _, w := range warnings {
		logger.Warn(w)
	}

	set, err := assets.Load(cfg.AssetDir)
	if err != nil {
		logger.Error("load assets", "dir", cfg.AssetDir, "err", err)
		return fmt.Errorf("load assets: %w", err)
	}

	bus := dodge.NewEventBus()
	logEvents(bus, logger)

	if cfg.Muted {
		logger.Info("sound muted")
	} else if sfx, err := audio.New(); err != nil {
		logger.Warn("audio init failed (continuing without sound)", "err", err)
	} else {
		sfx.Attach(bus)
	}

	session := dodge.NewSession(dodge.Options{
		Seed:          cfg.Seed,
		SpawnAttempts: cfg.SpawnAttempts,
		Bus:           bus,
	})
	logger.Info("starting", "frontend", cfg.Frontend, "seed", cfg.Seed)

	switch cfg.Frontend {
	case config.FrontendTerminal:
		screen, err := term.Open()
		if errors.Is(err, term.ErrNotTerminal) {
			return fmt.Errorf("%w (set %s=%s for a window)", err, config.EnvFrontend, config.FrontendDesktop)
		}
		if err != nil {
			return fmt.Errorf("terminal frontend: %w", err)
		}
		defer screen.Fini()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return term.Run(ctx, screen, session, set, logger)
	default:
		return game.RunDesktop(session, set, logger)
	}
}

// newLogger builds the process logger. The terminal frontend owns the screen,
// so without a log file its output is discarded.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case cfg.Frontend == config.FrontendTerminal:
		w = io.Discard
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "roaddodge",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	return logger, closeFn, nil
}

func logEvents(bus *dodge.EventBus, logger *log.Logger) {
	bus.SubscribeAll(func(e dodge.Event) {
		switch e.Type {
		case dodge.EventCollision:
			logger.Debug("collision", "x", e.X, "y", e.Y, "lives", e.Data)
		case dodge.EventGameOver:
			logger.Info("game over", "survived", e.Data)
		case dodge.EventSpeedUp:
			logger.Debug("speed up", "level", e.Data)
		case dodge.EventRestart:
			logger.Info("restart", "attempt", e.Data)
		case dodge.EventSpawnExhausted:
			logger.Warn("spawn attempts exhausted, placing car anyway",
				"x", e.X, "y", e.Y, "attempts", e.Data, "err", dodge.ErrSpawnExhausted)
		}
	})
}
