package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/sstimer/internal/models"
)

// Database defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=database.go -destination=mock_database_test.go -package=tui
type Database interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error

	RecordRun(ctx context.Context, run models.Run) (int64, error)
	RunsBetween(ctx context.Context, from, to time.Time) ([]models.Run, error)
	DaySummary(ctx context.Context, day time.Time) (models.Summary, error)
}
