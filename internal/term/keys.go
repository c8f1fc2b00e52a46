package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"roaddodge/internal/dodge"
)

// Terminals report presses and auto-repeats but no releases, so a key counts
// as held until holdTimeout passes without a new event for it.
const holdTimeout = 150 * time.Millisecond

// Keys tracks key hold state from tcell key events.
type Keys struct {
	last    map[tcell.Key]time.Time
	restart bool
}

func NewKeys() *Keys {
	return &Keys{last: make(map[tcell.Key]time.Time)}
}

// Press records ev at now.
func (k *Keys) Press(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyRight, tcell.KeyUp, tcell.KeyDown:
		k.last[ev.Key()] = now
	case tcell.KeyEnter:
		k.restart = true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			k.restart = true
		}
	}
}

func (k *Keys) held(key tcell.Key, now time.Time) bool {
	t, ok := k.last[key]
	return ok && now.Sub(t) < holdTimeout
}

// Controls returns the input for one tick. The restart edge is consumed.
func (k *Keys) Controls(now time.Time) dodge.Controls {
	c := dodge.Controls{
		Left:    k.held(tcell.KeyLeft, now),
		Right:   k.held(tcell.KeyRight, now),
		Up:      k.held(tcell.KeyUp, now),
		Down:    k.held(tcell.KeyDown, now),
		Restart: k.restart,
	}
	k.restart = false
	return c
}
