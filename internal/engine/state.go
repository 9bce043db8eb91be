package engine

import "fmt"

// State is the countdown state owned by an Engine.
type State struct {
	RemainingSeconds uint32
	DurationSeconds  uint32
	Running          bool
	Paused           bool
	Pending          Handle
}

// Phase names the three states defined by (Running, Paused).
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	default:
		return "idle"
	}
}

func (s State) Phase() Phase {
	switch {
	case !s.Running:
		return PhaseIdle
	case s.Paused:
		return PhasePaused
	default:
		return PhaseActive
	}
}

// Check reports the first violated state invariant, if any.
func (s State) Check() error {
	if s.Paused && !s.Running {
		return fmt.Errorf("paused while not running")
	}
	wantPending := s.Running && !s.Paused && s.RemainingSeconds > 0
	if (s.Pending != NoHandle) != wantPending {
		return fmt.Errorf("pending tick %d inconsistent with phase %s and %ds remaining", s.Pending, s.Phase(), s.RemainingSeconds)
	}
	if s.RemainingSeconds == 0 && s.Running {
		return fmt.Errorf("running with zero seconds remaining")
	}
	return nil
}
