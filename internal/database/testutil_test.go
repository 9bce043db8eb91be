package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/sstimer/internal/models"
	"github.com/akyairhashvil/sstimer/internal/testutil"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

type TestDataBuilder struct {
	t      *testing.T
	ctx    context.Context
	db     *Database
	runIDs []int64
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

// WithRuns records count runs one hour apart, starting at start.
func (b *TestDataBuilder) WithRuns(start time.Time, count int, outcome models.Outcome) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < count; i++ {
		rb := testutil.NewRun().StartedAt(start.Add(time.Duration(i) * time.Hour))
		if outcome == models.OutcomeStopped {
			rb = rb.StoppedWith(60)
		}
		id, err := b.db.RecordRun(b.ctx, rb.Build())
		if err != nil {
			b.t.Fatalf("RecordRun failed: %v", err)
		}
		b.runIDs = append(b.runIDs, id)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}
