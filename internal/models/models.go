package models

import "time"

// Outcome records how a countdown run ended.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeStopped   Outcome = "stopped"
)

func (o Outcome) Valid() bool {
	return o == OutcomeCompleted || o == OutcomeStopped
}

// Run is one countdown from start until completion or a manual stop.
// DurationSeconds is the seconds counted down plus RemainingSeconds, so
// it differs from the configured duration when the run was adjusted.
type Run struct {
	ID               int64
	StartedAt        time.Time
	EndedAt          time.Time
	DurationSeconds  uint32
	RemainingSeconds uint32
	Outcome          Outcome
}

// ElapsedSeconds is the counted-down part of the run.
func (r Run) ElapsedSeconds() uint32 {
	if r.RemainingSeconds >= r.DurationSeconds {
		return 0
	}
	return r.DurationSeconds - r.RemainingSeconds
}

// Summary aggregates the runs of one calendar day.
type Summary struct {
	Date           string
	Runs           int
	Completed      int
	Stopped        int
	FocusedSeconds uint64
}
