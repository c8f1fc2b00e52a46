package dodge

// Controls is the input state for a single update tick.
type Controls struct {
	Left, Right, Up, Down bool

	// Restart is an edge: true only on the tick the key went down.
	Restart bool
}
