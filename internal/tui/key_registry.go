package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model) (Model, tea.Cmd)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Group    int
	Priority int
}

// HandlerRegistry dispatches key presses to handlers and doubles as the
// help.KeyMap for the footer.
type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Binding.Enabled() && key.Matches(msg, b.Binding) {
			next, cmd := b.Handler(m)
			return next, cmd, true
		}
	}
	return m, nil, false
}

// ShortHelp lists the button bindings (group 0).
func (r *HandlerRegistry) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range r.bindings {
		if b.Group == 0 {
			out = append(out, b.Binding)
		}
	}
	return out
}

// FullHelp lists every binding, one column per group.
func (r *HandlerRegistry) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for _, b := range r.bindings {
		for len(groups) <= b.Group {
			groups = append(groups, nil)
		}
		groups[b.Group] = append(groups[b.Group], b.Binding)
	}
	return groups
}

const (
	groupButtons = iota
	groupApp
)

func buttonHandler(b Button, long bool) KeyHandler {
	return func(m Model) (Model, tea.Cmd) {
		Press(m.engine, b, long)
		return m, nil
	}
}

// defaultRegistry maps the watch buttons and application keys. Terminals
// have no long press, so each long press gets its own key.
func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "pause/resume")),
		Handler: buttonHandler(ButtonSelect, false), Group: groupButtons, Priority: 10,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Handler: buttonHandler(ButtonSelect, true), Group: groupButtons, Priority: 9,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "+1 min")),
		Handler: buttonHandler(ButtonUp, false), Group: groupButtons, Priority: 8,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("shift+up", "K", "pgup"), key.WithHelp("K", "+5 min")),
		Handler: buttonHandler(ButtonUp, true), Group: groupButtons, Priority: 7,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "-1 min")),
		Handler: buttonHandler(ButtonDown, false), Group: groupButtons, Priority: 6,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("shift+down", "J", "pgdown"), key.WithHelp("J", "-5 min")),
		Handler: buttonHandler(ButtonDown, true), Group: groupButtons, Priority: 5,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		Handler: func(m Model) (Model, tea.Cmd) {
			m.engine.Stop()
			return m, nil
		},
		Group: groupApp, Priority: 4,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Handler: handleThemeCycle, Group: groupApp, Priority: 3,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export report")),
		Handler: handleExport, Group: groupApp, Priority: 2,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Handler: func(m Model) (Model, tea.Cmd) {
			m.showHelp = !m.showHelp
			return m, nil
		},
		Group: groupApp, Priority: 1,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Handler: handleQuit, Group: groupApp, Priority: 0,
	})
	return r
}
