package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/sstimer/internal/models"
	"github.com/go-pdf/fpdf"
)

// ReportSource is the read side WriteReport needs.
type ReportSource interface {
	RunsBetween(ctx context.Context, from, to time.Time) ([]models.Run, error)
	DaySummary(ctx context.Context, day time.Time) (models.Summary, error)
}

// WriteReport renders the runs of day into a PDF under dir and returns
// the file path. It fails with ErrNoRuns when the day is empty.
func WriteReport(ctx context.Context, repo ReportSource, dir string, day time.Time) (string, error) {
	from, to := DayBounds(day)
	runs, err := repo.RunsBetween(ctx, from, to)
	if err != nil {
		return "", err
	}
	if len(runs) == 0 {
		return "", ErrNoRuns
	}
	summary, err := repo.DaySummary(ctx, day)
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Timer Report: %s", summary.Date))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(30, 8, "Start")
	pdf.Cell(30, 8, "End")
	pdf.Cell(35, 8, "Duration")
	pdf.Cell(35, 8, "Counted")
	pdf.Cell(30, 8, "Outcome")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	for _, r := range runs {
		pdf.Cell(30, 7, r.StartedAt.Format("15:04:05"))
		pdf.Cell(30, 7, r.EndedAt.Format("15:04:05"))
		pdf.Cell(35, 7, clockText(uint64(r.DurationSeconds)))
		pdf.Cell(35, 7, clockText(uint64(r.ElapsedSeconds())))
		pdf.Cell(30, 7, string(r.Outcome))
		pdf.Ln(7)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Runs: %d  Completed: %d  Stopped: %d", summary.Runs, summary.Completed, summary.Stopped))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Time counted down: %s", clockText(summary.FocusedSeconds)))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("timer_report_%s.pdf", summary.Date))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func clockText(seconds uint64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
