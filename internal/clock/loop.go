// Package clock runs the timer engine outside the TUI: a serial event
// loop plus a wall-clock Scheduler whose callbacks execute on that loop.
package clock

import (
	"context"
	"errors"
)

// ErrLoopStopped is returned by Run after Stop.
var ErrLoopStopped = errors.New("loop stopped")

// Loop executes posted functions one at a time on the goroutine that
// calls Run. After every function it calls the frame hook, if set.
type Loop struct {
	funcs chan func()
	done  chan struct{}
	frame func()
}

func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		funcs: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// OnFrame sets the hook run after each posted function. Call before Run.
func (l *Loop) OnFrame(fn func()) {
	l.frame = fn
}

// Post queues fn. It reports false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.funcs <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Stop ends Run after the function currently executing. Safe to call
// more than once and from any goroutine.
func (l *Loop) Stop() {
	select {
	case <-l.done:
	default:
		close(l.done)
	}
}

// Run executes posted functions until ctx is done or Stop is called.
// Either way the loop is stopped afterwards and Post rejects new work.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.done:
			return ErrLoopStopped
		case fn := <-l.funcs:
			fn()
			if l.frame != nil {
				l.frame()
			}
		}
	}
}
