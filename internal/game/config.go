package game

import "roaddodge/internal/dodge"

// Window defaults.
const (
	WindowWidth  = dodge.ScreenWidth
	WindowHeight = dodge.ScreenHeight
	WindowTitle  = "Road with Car"
)

// HUD text scales over the 7x13 atlas font.
const (
	HUDScale      = 2.0
	GameOverScale = 5.0
	RetryScale    = 2.0
)

// Max quads per draw call; longer batches are split.
const MaxBatchQuads = 512
