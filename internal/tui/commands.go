package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/sstimer/internal/config"
	"github.com/akyairhashvil/sstimer/internal/database"
	"github.com/akyairhashvil/sstimer/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type runRecordedMsg struct {
	id      int64
	summary models.Summary
	err     error
}

type reportMsg struct {
	path string
	err  error
}

type settingSavedMsg struct {
	err error
}

// recordRunCmd stores run and reads back the day's totals.
func recordRunCmd(ctx context.Context, db Database, run models.Run) tea.Cmd {
	return func() tea.Msg {
		id, err := db.RecordRun(ctx, run)
		if err != nil {
			return runRecordedMsg{err: err}
		}
		summary, err := db.DaySummary(ctx, run.StartedAt)
		return runRecordedMsg{id: id, summary: summary, err: err}
	}
}

func exportReportCmd(ctx context.Context, db Database, dir string, day time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := database.WriteReport(ctx, db, dir, day)
		return reportMsg{path: path, err: err}
	}
}

func saveThemeCmd(ctx context.Context, db Database, name string) tea.Cmd {
	return func() tea.Msg {
		return settingSavedMsg{err: db.SetSetting(ctx, config.SettingTheme, name)}
	}
}
