package game

import "testing"

func TestTextWidth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		scale float32
		want  int
	}{
		{"Empty", "", 1, 0},
		{"Single line", "GAME OVER", 1, 63},
		{"Scaled", "Time: 5s", 2, 112},
		{"Widest line wins", "ab\nabcd\nc", 1, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextWidth(tt.text, tt.scale); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestHUDFitsWindow(t *testing.T) {
	if w := TextWidth("GAME OVER", GameOverScale); w > WindowWidth {
		t.Errorf("Expected GAME OVER to fit, got width %d", w)
	}
	// Time label starts 160 px from the right edge and must not run off it.
	if w := TextWidth("Time: 9999s", HUDScale); w > 160 {
		t.Errorf("Expected time label within 160 px, got %d", w)
	}
}
