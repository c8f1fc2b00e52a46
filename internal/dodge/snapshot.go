package dodge

// Snapshot is a read-only copy of what a frontend needs to draw a frame.
type Snapshot struct {
	Player     Player
	Enemies    []Enemy
	Lives      int
	Elapsed    int // whole seconds
	Record     int
	Multiplier float64
	Over       bool
}

// Snapshot fills into from the current state, reusing its Enemies slice.
func (s *Session) Snapshot(into *Snapshot) {
	into.Player = s.Player
	into.Enemies = append(into.Enemies[:0], s.Enemies...)
	into.Lives = s.Lives.Current
	into.Elapsed = s.ElapsedSeconds()
	into.Record = s.Record
	into.Multiplier = s.Multiplier
	into.Over = s.Over()
}
