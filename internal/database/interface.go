package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/sstimer/internal/models"
)

// RunRepository defines run-log operations.
type RunRepository interface {
	RecordRun(ctx context.Context, run models.Run) (int64, error)
	RecentRuns(ctx context.Context, limit int) ([]models.Run, error)
	RunsBetween(ctx context.Context, from, to time.Time) ([]models.Run, error)
	DaySummary(ctx context.Context, day time.Time) (models.Summary, error)
}

// SettingsRepository defines key/value settings operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	RunRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
