package dodge

import "time"

type GameState int

const (
	StatePlaying  GameState = iota // main gameplay
	StateGameOver                  // out of hearts, scene frozen
)

// Options configures a new Session.
type Options struct {
	Seed          uint64
	Enemies       int // defaults to DefaultEnemies
	SpawnAttempts int // rejection cap, 0 = unbounded
	Bus           *EventBus
}

// Session holds all mutable game state for one process run.
type Session struct {
	State      GameState
	Player     Player
	Enemies    []Enemy
	Lives      Lives
	Multiplier float64
	Record     int // best survival in whole seconds
	Attempts   int

	ticks      uint64
	speedLevel int

	spawner *Spawner
	bus     *EventBus
	others  []Enemy
}

// NewSession creates a session with all enemies placed above the screen.
func NewSession(opts Options) *Session {
	n := opts.Enemies
	if n <= 0 {
		n = DefaultEnemies
	}
	bus := opts.Bus
	if bus == nil {
		bus = NewEventBus()
	}
	s := &Session{
		Lives:   NewLives(InitialLives),
		Enemies: make([]Enemy, 0, n),
		others:  make([]Enemy, 0, n),
		spawner: NewSpawner(NewRand(opts.Seed), opts.SpawnAttempts),
		bus:     bus,
	}
	s.reset()
	for i := 0; i < n; i++ {
		e := s.spawn(i%EnemySprites, s.Enemies)
		s.Enemies = append(s.Enemies, e)
	}
	return s
}

// Bus returns the event bus the session emits on.
func (s *Session) Bus() *EventBus { return s.bus }

func (s *Session) reset() {
	s.State = StatePlaying
	s.Player = NewPlayer()
	s.Lives.Reset()
	s.Multiplier = 1.0
	s.ticks = 0
	s.speedLevel = 0
	s.Attempts++
}

// Elapsed is the survival time of the current attempt.
func (s *Session) Elapsed() time.Duration {
	return time.Duration(s.ticks) * time.Second / TickRate
}

// ElapsedSeconds is the elapsed time floored to whole seconds.
func (s *Session) ElapsedSeconds() int {
	return int(s.ticks / TickRate)
}

func (s *Session) Over() bool { return s.State == StateGameOver }

// Step runs one fixed update tick.
func (s *Session) Step(c Controls) {
	if s.State == StateGameOver {
		if c.Restart {
			s.Restart()
		}
		return
	}

	s.ticks++
	s.updateMultiplier()
	s.Player.Move(c)
	s.Player.Clamp()
	s.updateEnemies()
}

// updateMultiplier derives the speed multiplier from the time since the attempt started.
func (s *Session) updateMultiplier() {
	level := int(s.Elapsed() / SpeedInterval)
	if level > s.speedLevel {
		s.speedLevel = level
		s.bus.Emit(Event{Type: EventSpeedUp, Data: level})
	}
	s.Multiplier = 1.0 + SpeedStep*float64(s.speedLevel)
}

// updateEnemies moves each enemy, resolves player hits and recycles cars past the bottom.
func (s *Session) updateEnemies() {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.Advance(s.Multiplier)

		if e.Rect().Overlaps(s.Player.Rect()) {
			hitX, hitY := e.X, e.Y
			s.Lives.Lose()
			s.Player.Respawn()
			s.respawnEnemy(i)
			s.bus.Emit(Event{Type: EventCollision, X: hitX, Y: hitY, Data: s.Lives.Current})

			if s.Lives.IsOut() {
				s.gameOver()
				return
			}
			continue
		}

		if e.PastBottom() {
			s.respawnEnemy(i)
		}
	}
}

func (s *Session) gameOver() {
	s.State = StateGameOver
	secs := s.ElapsedSeconds()
	if secs > s.Record {
		s.Record = secs
	}
	s.bus.Emit(Event{Type: EventGameOver, Data: secs})
}

// respawnEnemy replaces enemy i, keeping its sprite, away from all other enemies.
func (s *Session) respawnEnemy(i int) {
	s.others = s.others[:0]
	for j := range s.Enemies {
		if j != i {
			s.others = append(s.others, s.Enemies[j])
		}
	}
	s.Enemies[i] = s.spawn(s.Enemies[i].Sprite, s.others)
}

func (s *Session) spawn(sprite int, others []Enemy) Enemy {
	e, err := s.spawner.Spawn(sprite, others)
	if err != nil {
		s.bus.Emit(Event{Type: EventSpawnExhausted, X: e.X, Y: e.Y, Data: s.spawner.maxAttempts})
	}
	return e
}

// Restart begins a new attempt. The record is kept.
func (s *Session) Restart() {
	s.reset()
	for i := range s.Enemies {
		s.respawnEnemy(i)
	}
	s.bus.Emit(Event{Type: EventRestart, Data: s.Attempts})
}
