package dodge

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether the two rectangles share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// tooClose reports whether two positions are within (dx, dy) of each other on both axes.
func tooClose(x1, y1, x2, y2, dx, dy float64) bool {
	return absF(x1-x2) < dx && absF(y1-y2) < dy
}
