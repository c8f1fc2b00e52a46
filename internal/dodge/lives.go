package dodge

// Lives tracks the remaining hearts of the player.
type Lives struct {
	Current int
	Max     int
}

func NewLives(max int) Lives {
	return Lives{Current: max, Max: max}
}

// Lose removes one heart. Never drops below zero.
func (l *Lives) Lose() {
	if l.Current > 0 {
		l.Current--
	}
}

func (l *Lives) Reset() {
	l.Current = l.Max
}

func (l *Lives) IsOut() bool {
	return l.Current <= 0
}
