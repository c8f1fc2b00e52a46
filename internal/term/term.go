// Package term runs the game in a terminal using tcell half-block pixels.
package term

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	xterm "golang.org/x/term"

	"roaddodge/internal/assets"
	"roaddodge/internal/dodge"
)

var ErrNotTerminal = errors.New("stdout is not a terminal")

// FrameDuration paces terminal redraws.
const FrameDuration = 33 * time.Millisecond

// Open checks for a TTY and initialises a tcell screen.
func Open() (tcell.Screen, error) {
	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// Run drives session on screen until Escape, Ctrl-C or ctx is done.
// The caller owns screen and must Fini it afterwards.
func Run(ctx context.Context, screen tcell.Screen, session *dodge.Session, set *assets.Set, logger *log.Logger) error {
	// PollEvent blocks; it returns nil once the screen is finalised.
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	keys := NewKeys()
	rend := NewRenderer(set)
	var (
		clock dodge.Clock
		snap  dodge.Snapshot
	)
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			logger.Info("terminal frontend stopped", "reason", ctx.Err())
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					logger.Info("quit", "attempts", session.Attempts, "record", session.Record)
					return nil
				}
				keys.Press(ev, time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			frame := now.Sub(last)
			last = now
			for n := clock.Advance(frame); n > 0; n-- {
				session.Step(keys.Controls(now))
			}
			session.Snapshot(&snap)
			rend.Draw(screen, &snap)
		}
	}
}
