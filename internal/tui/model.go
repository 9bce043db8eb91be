package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/akyairhashvil/sstimer/internal/config"
	"github.com/akyairhashvil/sstimer/internal/database"
	"github.com/akyairhashvil/sstimer/internal/display"
	"github.com/akyairhashvil/sstimer/internal/engine"
	"github.com/akyairhashvil/sstimer/internal/models"
	"github.com/akyairhashvil/sstimer/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a Model. Zero values are usable.
type Options struct {
	InitialMinutes int
	Theme          string
	Bell           bool
	BellOut        io.Writer
	DB             Database
	ReportDir      string
	Now            func() time.Time
}

// runTracker follows the current run for the run log. Adjusting a
// running timer closes one segment and opens the next; counted keeps the
// seconds ticked down in closed segments.
type runTracker struct {
	active  bool
	started time.Time
	segment uint32
	counted uint32
}

func ticked(segment, remaining uint32) uint32 {
	if remaining >= segment {
		return 0
	}
	return segment - remaining
}

// adjust closes the segment at remaining and opens one of duration.
func (r *runTracker) adjust(remaining, duration uint32) {
	r.counted += ticked(r.segment, remaining)
	r.segment = duration
}

// finish builds the log row. DurationSeconds covers the counted seconds
// plus those left, so ElapsedSeconds is what was actually counted down.
func (r *runTracker) finish(now time.Time, remaining uint32, outcome models.Outcome) models.Run {
	counted := uint64(r.counted) + uint64(ticked(r.segment, remaining))
	total := counted + uint64(remaining)
	if total > math.MaxUint32 {
		total = math.MaxUint32
	}
	return models.Run{
		StartedAt:        r.started,
		EndedAt:          now,
		DurationSeconds:  uint32(total),
		RemainingSeconds: uint32(total - counted),
		Outcome:          outcome,
	}
}

type eventLog struct {
	events []engine.Event
}

// Model is the root bubbletea model: the host event loop for the engine
// and the terminal rendition of the watch face.
type Model struct {
	ctx       context.Context
	engine    *engine.Engine
	sched     *teaScheduler
	face      *display.Adapter
	surface   *surface
	alert     *bellAlert
	events    *eventLog
	run       *runTracker
	keys      *HandlerRegistry
	help      help.Model
	progress  progress.Model
	db        Database
	reportDir string
	bell      bool
	bellOut   io.Writer
	now       func() time.Time
	theme     string
	completed bool
	showHelp  bool
	Message   string
	width     int
	height    int
}

func NewModel(ctx context.Context, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.BellOut == nil {
		opts.BellOut = os.Stderr
	}
	theme := themeName(opts.Theme)
	if opts.DB != nil {
		if saved, ok := opts.DB.GetSetting(ctx, config.SettingTheme); ok {
			theme = themeName(saved)
		}
	}

	m := Model{
		ctx:       ctx,
		sched:     newTeaScheduler(),
		surface:   &surface{dirty: true},
		alert:     &bellAlert{},
		events:    &eventLog{},
		run:       &runTracker{},
		keys:      defaultRegistry(),
		help:      help.New(),
		db:        opts.DB,
		reportDir: opts.ReportDir,
		bell:      opts.Bell,
		bellOut:   opts.BellOut,
		now:       opts.Now,
		theme:     theme,
	}
	m.progress = newProgress(theme)
	m.face = display.NewAdapter(m.surface)
	m.engine = engine.New(m.sched, m.face, m.alert)
	events := m.events
	m.engine.Observe(func(ev engine.Event) {
		events.events = append(events.events, ev)
	})
	if opts.InitialMinutes > 0 {
		m.engine.AdjustMinutes(opts.InitialMinutes)
	}
	m.events.events = nil
	return m
}

func newProgress(theme string) progress.Model {
	p := progress.New(progress.WithSolidFill(string(Themes[theme].Fill)), progress.WithoutPercentage())
	p.Width = config.ProgressWidth
	return p
}

func (m Model) Init() tea.Cmd {
	return m.sched.Drain()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
	case tickMsg:
		m.sched.Fire(msg.handle)
	case tea.KeyMsg:
		m.completed = false
		next, cmd, _ := m.keys.Handle(m, msg)
		m = next
		cmds = append(cmds, cmd)
	case runRecordedMsg:
		if msg.err != nil {
			util.LogError("record run", msg.err)
			m.Message = fmt.Sprintf("History error: %v", msg.err)
		} else if msg.summary.Runs > 0 {
			m.Message = fmt.Sprintf("Today: %d runs, %s counted down",
				msg.summary.Runs, FormatDuration(time.Duration(msg.summary.FocusedSeconds)*time.Second))
		}
	case reportMsg:
		if errors.Is(msg.err, database.ErrNoRuns) {
			m.Message = "No runs to export today"
		} else if msg.err != nil {
			util.LogError("export report", msg.err)
			m.Message = fmt.Sprintf("Export failed: %v", msg.err)
		} else {
			m.Message = fmt.Sprintf("Report saved: %s", msg.path)
		}
	case settingSavedMsg:
		util.LogError("save theme", msg.err)
	}

	var eventCmds []tea.Cmd
	m, eventCmds = m.drainEvents()
	cmds = append(cmds, eventCmds...)
	cmds = append(cmds, m.sched.Drain())
	return m, tea.Batch(cmds...)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.progress.Width = util.Clamp(msg.Width-4, 1, config.ProgressWidth)
	m.surface.MarkDirty()
	return m
}

// drainEvents turns engine transitions and alert pulses collected during
// this update into status text and side-effect commands.
func (m Model) drainEvents() (Model, []tea.Cmd) {
	var cmds []tea.Cmd
	now := m.now()
	for _, ev := range m.events.events {
		s := ev.State
		clock := formatClock(s.RemainingSeconds)
		switch ev.Kind {
		case engine.EventStarted:
			*m.run = runTracker{active: true, started: now, segment: s.DurationSeconds}
			m.completed = false
			m.Message = "Started " + clock
		case engine.EventPaused:
			m.Message = "Paused at " + clock
		case engine.EventResumed:
			m.Message = "Resumed at " + clock
		case engine.EventAdjusted:
			if m.run.active {
				m.run.adjust(ev.Prior.RemainingSeconds, s.DurationSeconds)
			}
			m.Message = "Set to " + clock
		case engine.EventStopped:
			m.Message = "Stopped at " + clock
			cmds = append(cmds, m.finishRun(now, ev.Prior.RemainingSeconds, models.OutcomeStopped))
		case engine.EventCompleted:
			m.completed = true
			m.Message = "Time's up"
			cmds = append(cmds, m.finishRun(now, 0, models.OutcomeCompleted))
		}
		log.Printf("timer %s: remaining=%d duration=%d", ev.Kind, s.RemainingSeconds, s.DurationSeconds)
	}
	m.events.events = m.events.events[:0]

	for i := m.alert.take(); i > 0; i-- {
		if m.bell {
			cmds = append(cmds, bellCmd(m.bellOut))
		}
	}
	return m, cmds
}

// finishRun closes the tracked run and returns the command logging it.
func (m Model) finishRun(now time.Time, remaining uint32, outcome models.Outcome) tea.Cmd {
	run, ok := m.closeRun(now, remaining, outcome)
	if !ok || m.db == nil {
		return nil
	}
	return recordRunCmd(m.ctx, m.db, run)
}

func (m Model) closeRun(now time.Time, remaining uint32, outcome models.Outcome) (models.Run, bool) {
	if !m.run.active {
		return models.Run{}, false
	}
	run := m.run.finish(now, remaining, outcome)
	*m.run = runTracker{}
	return run, true
}

// Shutdown releases the pending tick and returns the unfinished run, if
// any, as stopped. Later calls report no run.
func (m Model) Shutdown(now time.Time) (models.Run, bool) {
	m.engine.Close()
	return m.closeRun(now, m.engine.Remaining(), models.OutcomeStopped)
}

func handleQuit(m Model) (Model, tea.Cmd) {
	run, ok := m.Shutdown(m.now())
	if !ok || m.db == nil {
		return m, tea.Quit
	}
	m.Message = "Stopped at " + formatClock(run.RemainingSeconds)
	return m, tea.Sequence(recordRunCmd(m.ctx, m.db, run), tea.Quit)
}

func handleThemeCycle(m Model) (Model, tea.Cmd) {
	m.theme = nextTheme(m.theme)
	m.progress = newProgress(m.theme)
	if m.width > 0 {
		m = m.handleWindowSize(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	m.surface.MarkDirty()
	m.Message = "Theme: " + Themes[m.theme].Name
	if m.db == nil {
		return m, nil
	}
	return m, saveThemeCmd(m.ctx, m.db, m.theme)
}

func handleExport(m Model) (Model, tea.Cmd) {
	if m.db == nil {
		m.Message = "History is disabled"
		return m, nil
	}
	dir := m.reportDir
	if dir == "" {
		dir = util.ReportsDir(config.AppName)
	}
	return m, exportReportCmd(m.ctx, m.db, dir, m.now())
}

// Engine exposes the engine for the shell and tests.
func (m Model) Engine() *engine.Engine {
	return m.engine
}
