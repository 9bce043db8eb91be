package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akyairhashvil/sstimer/internal/models"
)

const runColumns = "id, started_at, ended_at, duration_seconds, remaining_seconds, outcome"

// RecordRun appends a finished run and returns its ID.
func (d *Database) RecordRun(ctx context.Context, run models.Run) (int64, error) {
	if !run.Outcome.Valid() {
		return 0, wrapRunErr("record", 0, fmt.Errorf("%w: %q", ErrInvalidOutcome, run.Outcome))
	}
	if run.EndedAt.Before(run.StartedAt) {
		return 0, wrapRunErr("record", 0, fmt.Errorf("run ends before it starts"))
	}
	res, err := d.DB.ExecContext(ctx,
		`INSERT INTO runs (started_at, ended_at, duration_seconds, remaining_seconds, outcome)
		VALUES (?, ?, ?, ?, ?)`,
		run.StartedAt.Unix(), run.EndedAt.Unix(), run.DurationSeconds, run.RemainingSeconds, string(run.Outcome))
	if err != nil {
		return 0, wrapRunErr("record", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapRunErr("record", 0, err)
}

// RecentRuns returns up to limit runs, newest first.
func (d *Database) RecentRuns(ctx context.Context, limit int) ([]models.Run, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+runColumns+" FROM runs ORDER BY started_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, wrapRunErr("list", 0, err)
	}
	defer rows.Close()
	runs, err := scanRuns(rows)
	return runs, wrapRunErr("list", 0, err)
}

// RunsBetween returns runs started in [from, to), oldest first.
func (d *Database) RunsBetween(ctx context.Context, from, to time.Time) ([]models.Run, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+runColumns+" FROM runs WHERE started_at >= ? AND started_at < ? ORDER BY started_at ASC, id ASC",
		from.Unix(), to.Unix())
	if err != nil {
		return nil, wrapRunErr("list", 0, err)
	}
	defer rows.Close()
	runs, err := scanRuns(rows)
	return runs, wrapRunErr("list", 0, err)
}

// DaySummary aggregates the runs started on day's local calendar date.
func (d *Database) DaySummary(ctx context.Context, day time.Time) (models.Summary, error) {
	from, to := DayBounds(day)
	s := models.Summary{Date: from.Format("2006-01-02")}
	var completed, stopped, focused sql.NullInt64
	err := d.DB.QueryRowContext(ctx, `
		SELECT COUNT(*),
			SUM(CASE WHEN outcome = 'completed' THEN 1 ELSE 0 END),
			SUM(CASE WHEN outcome = 'stopped' THEN 1 ELSE 0 END),
			SUM(CASE WHEN duration_seconds > remaining_seconds THEN duration_seconds - remaining_seconds ELSE 0 END)
		FROM runs WHERE started_at >= ? AND started_at < ?`,
		from.Unix(), to.Unix()).Scan(&s.Runs, &completed, &stopped, &focused)
	if err != nil {
		return s, wrapRunErr("summarize", 0, err)
	}
	s.Completed = int(completed.Int64)
	s.Stopped = int(stopped.Int64)
	s.FocusedSeconds = uint64(focused.Int64)
	return s, nil
}

// DayBounds returns the local midnight starting day and the next one.
func DayBounds(day time.Time) (time.Time, time.Time) {
	y, m, dd := day.Date()
	from := time.Date(y, m, dd, 0, 0, 0, 0, day.Location())
	return from, from.AddDate(0, 0, 1)
}

func scanRuns(rows *sql.Rows) ([]models.Run, error) {
	var runs []models.Run
	for rows.Next() {
		var (
			r              models.Run
			started, ended int64
			outcome        string
		)
		if err := rows.Scan(&r.ID, &started, &ended, &r.DurationSeconds, &r.RemainingSeconds, &outcome); err != nil {
			return nil, err
		}
		r.StartedAt = time.Unix(started, 0)
		r.EndedAt = time.Unix(ended, 0)
		r.Outcome = models.Outcome(outcome)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
