package tui

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/akyairhashvil/sstimer/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is delivered by tea.Tick when a scheduled tick is due.
type tickMsg struct {
	handle engine.Handle
}

// teaScheduler implements engine.Scheduler on top of bubbletea. Ticks are
// queued as commands during Update and returned with its result. A
// cancelled handle is forgotten, so its tickMsg is dropped on arrival.
type teaScheduler struct {
	tick   func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
	next   engine.Handle
	live   map[engine.Handle]func(engine.Handle)
	queued []tea.Cmd
}

var _ engine.Scheduler = (*teaScheduler)(nil)

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{
		tick: tea.Tick,
		live: make(map[engine.Handle]func(engine.Handle)),
	}
}

func (s *teaScheduler) ScheduleAfter(d time.Duration, fn func(engine.Handle)) engine.Handle {
	s.next++
	h := s.next
	s.live[h] = fn
	s.queued = append(s.queued, s.tick(d, func(time.Time) tea.Msg {
		return tickMsg{handle: h}
	}))
	return h
}

func (s *teaScheduler) Cancel(h engine.Handle) {
	delete(s.live, h)
}

// Fire runs the callback for h if it is still live.
func (s *teaScheduler) Fire(h engine.Handle) bool {
	fn, ok := s.live[h]
	if !ok {
		return false
	}
	delete(s.live, h)
	fn(h)
	return true
}

// Drain hands queued tick commands to bubbletea.
func (s *teaScheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *teaScheduler) Pending() int {
	return len(s.live)
}

// surface is the display.Renderer for the terminal. Marking it dirty
// invalidates the cached face, which View rebuilds on the next frame.
type surface struct {
	dirty  bool
	face   string
	width  int
	height int
	frames int
}

func (s *surface) MarkDirty() {
	s.dirty = true
}

// bellAlert counts completion pulses until the model turns them into
// bell commands.
type bellAlert struct {
	pending int
}

func (a *bellAlert) Pulse() {
	a.pending++
}

func (a *bellAlert) take() int {
	n := a.pending
	a.pending = 0
	return n
}

func bellCmd(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		if _, err := fmt.Fprint(w, "\a"); err != nil {
			log.Printf("bell: %v", err)
		}
		return nil
	}
}
