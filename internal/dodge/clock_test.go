package dodge

import (
	"testing"
	"time"
)

func TestClockAdvance(t *testing.T) {
	tests := []struct {
		name   string
		frames []time.Duration
		want   []int
	}{
		{"Sub-tick frames accumulate", []time.Duration{10 * time.Millisecond, 10 * time.Millisecond}, []int{0, 1}},
		{"Exact ticks", []time.Duration{2 * TickDuration}, []int{2}},
		{"Long stall is clamped", []time.Duration{2 * time.Second}, []int{MaxCatchUp}},
		{"Negative frame ignored", []time.Duration{-time.Second}, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Clock
			for i, f := range tt.frames {
				if got := c.Advance(f); got != tt.want[i] {
					t.Errorf("Frame %d: expected %d ticks, got %d", i, tt.want[i], got)
				}
			}
		})
	}
}

func TestClockDropsBacklogAfterStall(t *testing.T) {
	var c Clock
	c.Advance(time.Second)
	if got := c.Advance(0); got != 0 {
		t.Errorf("Expected backlog dropped, got %d ticks", got)
	}
}
