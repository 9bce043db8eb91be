package engine

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=engine

import "time"

// Handle identifies one scheduled tick. The zero Handle means none.
type Handle uint64

const NoHandle Handle = 0

// Scheduler runs fn once after d on the engine's execution context.
// Cancel must guarantee that a cancelled callback never runs.
type Scheduler interface {
	ScheduleAfter(d time.Duration, fn func(Handle)) Handle
	Cancel(h Handle)
}

// Display is notified after every state-affecting operation.
type Display interface {
	Refresh(s State)
}

// Alert is fired once when a run reaches zero by ticking.
type Alert interface {
	Pulse()
}

type nopDisplay struct{}

func (nopDisplay) Refresh(State) {}

type nopAlert struct{}

func (nopAlert) Pulse() {}
