// Package engine implements the countdown state machine: a single timer
// with one re-armed one-shot tick, pause/resume, restart and minute
// adjustment. All methods must be called from one execution context.
package engine

import (
	"math"

	"github.com/akyairhashvil/sstimer/internal/config"
)

// maxMinutes is the largest whole-minute count representable in seconds.
const maxMinutes = math.MaxUint32 / 60

// Engine owns one countdown. Its zero value is not usable; call New.
type Engine struct {
	state     State
	scheduler Scheduler
	display   Display
	alert     Alert
	observer  Observer
}

// New returns an idle engine. display and alert may be nil.
func New(scheduler Scheduler, display Display, alert Alert) *Engine {
	if display == nil {
		display = nopDisplay{}
	}
	if alert == nil {
		alert = nopAlert{}
	}
	return &Engine{scheduler: scheduler, display: display, alert: alert}
}

// Observe registers fn to receive every transition. Passing nil removes it.
func (e *Engine) Observe(fn Observer) {
	e.observer = fn
}

// Start loads d seconds as both the remaining and the full duration and
// begins counting down. Start(0) leaves the engine idle.
func (e *Engine) Start(d uint32) {
	prior := e.state
	e.cancelPending()
	e.state.RemainingSeconds = d
	e.state.DurationSeconds = d
	e.state.Paused = false
	e.state.Running = d > 0
	if e.state.Running {
		e.schedule()
		e.emit(EventStarted, prior)
	}
	e.refresh()
}

// Stop halts the countdown, keeping the remaining time. Stopping an idle
// engine only refreshes the display.
func (e *Engine) Stop() {
	e.stop(e.state)
}

// stop halts the countdown; prior is the state reported as the one the
// stop ended.
func (e *Engine) stop(prior State) {
	wasRunning := e.state.Running
	e.state.Running = false
	e.state.Paused = false
	e.cancelPending()
	if wasRunning {
		e.emit(EventStopped, prior)
	}
	e.refresh()
}

// TogglePause pauses or resumes a running timer. On an idle timer it
// starts a new run from the remembered duration, if there is one.
func (e *Engine) TogglePause() {
	if !e.state.Running {
		if e.state.DurationSeconds > 0 {
			e.Start(e.state.DurationSeconds)
		}
		return
	}
	prior := e.state
	e.state.Paused = !e.state.Paused
	if e.state.Paused {
		e.cancelPending()
		e.emit(EventPaused, prior)
	} else {
		e.schedule()
		e.emit(EventResumed, prior)
	}
	e.refresh()
}

// Restart discards partial progress and starts over from the last
// configured duration.
func (e *Engine) Restart() {
	e.Stop()
	e.Start(e.state.DurationSeconds)
}

// OnTick is the scheduler callback. Only the pending handle is honoured.
func (e *Engine) OnTick(h Handle) {
	if h == NoHandle || h != e.state.Pending {
		return
	}
	prior := e.state
	e.state.Pending = NoHandle
	if !e.state.Running || e.state.Paused || e.state.RemainingSeconds == 0 {
		return
	}
	e.state.RemainingSeconds--
	if e.state.RemainingSeconds > 0 {
		e.schedule()
		e.refresh()
		return
	}
	e.state.Running = false
	e.alert.Pulse()
	e.emit(EventCompleted, prior)
	e.refresh()
}

// AdjustMinutes moves the remaining time to a whole number of minutes,
// currentMinutes+delta clamped at zero, and makes that the new duration.
// Reaching zero stops a running timer without an alert. Adjusting never
// starts the timer.
func (e *Engine) AdjustMinutes(delta int) {
	prior := e.state
	minutes := int64(e.state.RemainingSeconds/60) + int64(delta)
	if minutes < 0 {
		minutes = 0
	}
	if minutes > maxMinutes {
		minutes = maxMinutes
	}
	seconds := uint32(minutes * 60)
	e.state.RemainingSeconds = seconds
	e.state.DurationSeconds = seconds
	if seconds == 0 && e.state.Running {
		e.stop(prior)
		return
	}
	e.emit(EventAdjusted, prior)
	e.refresh()
}

// Close releases the pending tick at shutdown. An active timer is left
// paused so the state stays consistent.
func (e *Engine) Close() {
	e.cancelPending()
	if e.state.Running && !e.state.Paused {
		e.state.Paused = true
	}
}

// Running reports whether a run is in progress, paused or not.
func (e *Engine) Running() bool { return e.state.Running }

// Paused reports whether the running timer is suspended.
func (e *Engine) Paused() bool { return e.state.Paused }

// Remaining is the authoritative countdown value in seconds.
func (e *Engine) Remaining() uint32 { return e.state.RemainingSeconds }

// Duration is the last configured duration in seconds.
func (e *Engine) Duration() uint32 { return e.state.DurationSeconds }

// Phase names the current (Running, Paused) combination.
func (e *Engine) Phase() Phase { return e.state.Phase() }

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() State { return e.state }

func (e *Engine) schedule() {
	e.state.Pending = e.scheduler.ScheduleAfter(config.TickInterval, e.OnTick)
}

func (e *Engine) cancelPending() {
	if e.state.Pending == NoHandle {
		return
	}
	e.scheduler.Cancel(e.state.Pending)
	e.state.Pending = NoHandle
}

func (e *Engine) refresh() {
	e.display.Refresh(e.state)
}

func (e *Engine) emit(kind EventKind, prior State) {
	if e.observer != nil {
		e.observer(Event{Kind: kind, State: e.state, Prior: prior})
	}
}
