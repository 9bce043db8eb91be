package clock

import (
	"time"

	"github.com/akyairhashvil/sstimer/internal/engine"
)

// Scheduler implements engine.Scheduler with time.AfterFunc. Its methods
// and the callbacks it runs all execute on the loop goroutine, so the
// live table needs no lock.
type Scheduler struct {
	loop *Loop
	next engine.Handle
	live map[engine.Handle]*time.Timer
}

var _ engine.Scheduler = (*Scheduler)(nil)

func NewScheduler(loop *Loop) *Scheduler {
	return &Scheduler{loop: loop, live: make(map[engine.Handle]*time.Timer)}
}

func (s *Scheduler) ScheduleAfter(d time.Duration, fn func(engine.Handle)) engine.Handle {
	s.next++
	h := s.next
	s.live[h] = time.AfterFunc(d, func() {
		s.loop.Post(func() {
			// A cancel that raced with the timer firing removed h.
			if _, ok := s.live[h]; !ok {
				return
			}
			delete(s.live, h)
			fn(h)
		})
	})
	return h
}

func (s *Scheduler) Cancel(h engine.Handle) {
	if t, ok := s.live[h]; ok {
		t.Stop()
		delete(s.live, h)
	}
}

// Pending reports the number of scheduled, uncancelled callbacks.
func (s *Scheduler) Pending() int {
	return len(s.live)
}
