package dodge

import "testing"

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 80, H: 100}
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"Same rect", base, true},
		{"Partial overlap", Rect{X: 150, Y: 150, W: 80, H: 100}, true},
		{"Contained", Rect{X: 110, Y: 110, W: 10, H: 10}, true},
		{"Touching right edge", Rect{X: 180, Y: 100, W: 80, H: 100}, false},
		{"Touching bottom edge", Rect{X: 100, Y: 200, W: 80, H: 100}, false},
		{"Disjoint", Rect{X: 400, Y: 400, W: 80, H: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.o); got != tt.want {
				t.Errorf("Expected Overlaps to be %v, got %v", tt.want, got)
			}
			if got := tt.o.Overlaps(base); got != tt.want {
				t.Errorf("Expected symmetric Overlaps to be %v, got %v", tt.want, got)
			}
		})
	}
}
