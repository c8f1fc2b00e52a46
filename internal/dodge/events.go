package dodge

type EventType int

const (
	EventCollision EventType = iota
	EventGameOver
	EventSpeedUp
	EventRestart
	EventSpawnExhausted
)

func (t EventType) String() string {
	switch t {
	case EventCollision:
		return "collision"
	case EventGameOver:
		return "game_over"
	case EventSpeedUp:
		return "speed_up"
	case EventRestart:
		return "restart"
	case EventSpawnExhausted:
		return "spawn_exhausted"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	X, Y float64
	Data int // Generic payload (lives left, seconds survived, speed level, attempt).
}

type EventHandler func(Event)

// EventBus dispatches events synchronously on the caller's goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventCollision; t <= EventSpawnExhausted; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
