package engine

import (
	"testing"
	"time"
)

// fakeScheduler records scheduled ticks and fires them on demand.
type fakeScheduler struct {
	next      Handle
	live      map[Handle]func(Handle)
	delays    []time.Duration
	cancelled []Handle
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{live: make(map[Handle]func(Handle))}
}

func (s *fakeScheduler) ScheduleAfter(d time.Duration, fn func(Handle)) Handle {
	s.next++
	s.live[s.next] = fn
	s.delays = append(s.delays, d)
	return s.next
}

func (s *fakeScheduler) Cancel(h Handle) {
	s.cancelled = append(s.cancelled, h)
	delete(s.live, h)
}

// fire runs every live callback once, as if their delay elapsed.
func (s *fakeScheduler) fire() int {
	due := make(map[Handle]func(Handle), len(s.live))
	for h, fn := range s.live {
		due[h] = fn
	}
	for h, fn := range due {
		delete(s.live, h)
		fn(h)
	}
	return len(due)
}

type countingAlert struct{ pulses int }

func (a *countingAlert) Pulse() { a.pulses++ }

type recordingDisplay struct{ states []State }

func (d *recordingDisplay) Refresh(s State) { d.states = append(d.states, s) }

func (d *recordingDisplay) last() State {
	if len(d.states) == 0 {
		return State{}
	}
	return d.states[len(d.states)-1]
}

type harness struct {
	engine  *Engine
	sched   *fakeScheduler
	alert   *countingAlert
	display *recordingDisplay
	events  []Event
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		sched:   newFakeScheduler(),
		alert:   &countingAlert{},
		display: &recordingDisplay{},
	}
	h.engine = New(h.sched, h.display, h.alert)
	h.engine.Observe(func(ev Event) { h.events = append(h.events, ev) })
	return h
}

func (h *harness) tick(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		h.sched.fire()
		mustHold(t, h.engine)
	}
}

func mustHold(t *testing.T, e *Engine) {
	t.Helper()
	if err := e.Snapshot().Check(); err != nil {
		t.Fatalf("invariant violated: %v (state %+v)", err, e.Snapshot())
	}
}

func (h *harness) kinds() []EventKind {
	out := make([]EventKind, 0, len(h.events))
	for _, ev := range h.events {
		out = append(out, ev.Kind)
	}
	return out
}
