package dodge

// Enemy is a car descending the road.
type Enemy struct {
	X, Y   float64
	Speed  int // px per tick before the difficulty multiplier
	Sprite int // index into the enemy images
}

// Advance moves the car down by its speed scaled by the multiplier.
func (e *Enemy) Advance(multiplier float64) {
	e.Y += float64(e.Speed) * multiplier
}

// PastBottom reports whether the car has left the screen far enough to recycle.
func (e Enemy) PastBottom() bool {
	return e.Y > EnemyDespawnY
}

func (e Enemy) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, W: EnemyWidth, H: EnemyHeight}
}
