package dodge

// Player is the car steered by the keyboard.
type Player struct {
	X, Y float64
}

func NewPlayer() Player {
	return Player{X: PlayerStartX, Y: PlayerStartY}
}

// Move applies one tick of directional input.
func (p *Player) Move(c Controls) {
	if c.Left {
		p.X -= PlayerSpeed
	}
	if c.Right {
		p.X += PlayerSpeed
	}
	if c.Up {
		p.Y -= PlayerSpeed
	}
	if c.Down {
		p.Y += PlayerSpeed
	}
}

// Clamp keeps the car inside the road lane and the screen.
func (p *Player) Clamp() {
	p.X = clampF(p.X, RoadLeft, RoadRight-CarWidth)
	p.Y = clampF(p.Y, 0, ScreenHeight-CarHeight)
}

// Respawn returns the car to its start position.
func (p *Player) Respawn() {
	p.X = PlayerStartX
	p.Y = PlayerStartY
}

func (p Player) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: CarWidth, H: CarHeight}
}
