package dodge

import "errors"

// ErrSpawnExhausted is returned when no separated position was found within the attempt cap.
var ErrSpawnExhausted = errors.New("dodge: no free spawn position")

// Spawner places enemies above the screen by rejection sampling.
type Spawner struct {
	rng         *Rand
	maxAttempts int
}

// NewSpawner creates a spawner. maxAttempts <= 0 retries until a position is found.
func NewSpawner(rng *Rand, maxAttempts int) *Spawner {
	return &Spawner{rng: rng, maxAttempts: maxAttempts}
}

// Spawn samples a position and speed for an enemy with the given sprite that keeps
// its distance from every car in others. When the attempt cap runs out the last
// candidate is returned together with ErrSpawnExhausted.
func (s *Spawner) Spawn(sprite int, others []Enemy) (Enemy, error) {
	var e Enemy
	for attempt := 1; ; attempt++ {
		e = Enemy{
			X:      float64(s.rng.Range(RoadLeft, RoadRight-EnemyWidth)),
			Y:      float64(s.rng.Range(EnemySpawnMinY, EnemySpawnMaxY)),
			Speed:  s.rng.Range(EnemyMinSpeed, EnemyMaxSpeed),
			Sprite: sprite,
		}
		if Separated(e, others) {
			return e, nil
		}
		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return e, ErrSpawnExhausted
		}
	}
}

// Separated reports whether e keeps the spawn margin from every car in others.
func Separated(e Enemy, others []Enemy) bool {
	for _, o := range others {
		if tooClose(e.X, e.Y, o.X, o.Y, EnemyWidth+EnemyMargin, EnemyHeight+EnemyMargin) {
			return false
		}
	}
	return true
}
