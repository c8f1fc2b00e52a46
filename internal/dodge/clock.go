package dodge

import "time"

// Clock turns variable frame times into a number of fixed update ticks.
type Clock struct {
	acc time.Duration
}

// Advance adds the frame time and returns how many ticks to run.
// Long stalls are clamped so the game never fast-forwards through a hitch.
func (c *Clock) Advance(frame time.Duration) int {
	if frame < 0 {
		frame = 0
	}
	if frame > MaxFrameTime {
		frame = MaxFrameTime
	}
	c.acc += frame

	ticks := 0
	for c.acc >= TickDuration && ticks < MaxCatchUp {
		c.acc -= TickDuration
		ticks++
	}
	if ticks == MaxCatchUp && c.acc >= TickDuration {
		c.acc = 0
	}
	return ticks
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
