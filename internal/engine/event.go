package engine

// EventKind classifies a state transition reported to an Observer.
type EventKind int

const (
	EventStarted EventKind = iota
	EventPaused
	EventResumed
	EventStopped
	EventCompleted
	EventAdjusted
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventStopped:
		return "stopped"
	case EventCompleted:
		return "completed"
	case EventAdjusted:
		return "adjusted"
	}
	return "unknown"
}

// Event carries the state right after a transition and the state the
// operation started from. A stop caused by adjusting to zero reports the
// state before the adjustment as Prior.
type Event struct {
	Kind  EventKind
	State State
	Prior State
}

// Observer receives transitions synchronously on the engine's context.
type Observer func(Event)
