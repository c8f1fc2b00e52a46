package dodge

import "time"

// Screen dimensions (in pixels).
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Road lane, shared by the player and enemy cars.
const (
	RoadLeft  = 150
	RoadRight = 650
)

// Player car.
const (
	CarWidth     = 80
	CarHeight    = 100
	PlayerSpeed  = 5.0 // px per tick
	PlayerStartX = ScreenWidth / 2
	PlayerStartY = ScreenHeight - CarHeight - 40
)

// Enemy cars.
const (
	EnemyWidth     = 80
	EnemyHeight    = 100
	EnemyMargin    = 30 // extra spawn separation on both axes
	EnemySpawnMinY = -600
	EnemySpawnMaxY = -100
	EnemyMinSpeed  = 3
	EnemyMaxSpeed  = 6
	EnemyDespawnY  = ScreenHeight + 150
	EnemySprites   = 2
	DefaultEnemies = 2
)

// Lives and HUD.
const (
	InitialLives = 3
	HeartSize    = 40
	HeartSpacing = 45
	HeartX       = 10
	HeartY       = 10
)

// Difficulty scaling.
const (
	SpeedStep     = 0.2
	SpeedInterval = 10 * time.Second
)

// Fixed update step.
const (
	TickRate     = 60
	TickDuration = time.Second / TickRate
	MaxFrameTime = 250 * time.Millisecond
	MaxCatchUp   = 5
)

// DefaultSpawnAttempts bounds the rejection sampler. Zero means unbounded.
const DefaultSpawnAttempts = 10000
