package tui

import (
	"context"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/akyairhashvil/sstimer/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

var testNow = time.Date(2024, 5, 6, 9, 30, 0, 0, time.Local)

// setupTestModel builds a sized model whose ticks are delivered by hand.
func setupTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Now == nil {
		opts.Now = func() time.Time { return testNow }
	}
	m := NewModel(context.Background(), opts)
	m.sched.tick = func(time.Duration, func(time.Time) tea.Msg) tea.Cmd { return nil }
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := updateCmd(t, m, msg)
	return next
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	next, ok := model.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", model)
	}
	return next, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func spaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

// pendingHandle returns the only live tick handle.
func pendingHandle(t *testing.T, m Model) engine.Handle {
	t.Helper()
	if m.sched.Pending() != 1 {
		t.Fatalf("expected one pending tick, got %d", m.sched.Pending())
	}
	var handles []engine.Handle
	for h := range m.sched.live {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles[0]
}

// tick delivers n due ticks and returns the command of the last update.
func tick(t *testing.T, m Model, n int) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		m, cmd = updateCmd(t, m, tickMsg{handle: pendingHandle(t, m)})
	}
	return m, cmd
}

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// collect runs cmd and any batched or sequenced commands, returning their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	// Batches and sequences are both slices of commands.
	if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
		var out []tea.Msg
		for i := 0; i < v.Len(); i++ {
			c, _ := v.Index(i).Interface().(tea.Cmd)
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
