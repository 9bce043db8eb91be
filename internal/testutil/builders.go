package testutil

import (
	"time"

	"github.com/akyairhashvil/sstimer/internal/models"
)

// RunBuilder provides fluent API for creating test runs.
type RunBuilder struct {
	run models.Run
}

// NewRun returns a completed five-minute run that ended now.
func NewRun() *RunBuilder {
	end := time.Now().Truncate(time.Second)
	return &RunBuilder{
		run: models.Run{
			StartedAt:       end.Add(-5 * time.Minute),
			EndedAt:         end,
			DurationSeconds: 300,
			Outcome:         models.OutcomeCompleted,
		},
	}
}

func (b *RunBuilder) StartedAt(t time.Time) *RunBuilder {
	elapsed := b.run.EndedAt.Sub(b.run.StartedAt)
	b.run.StartedAt = t
	b.run.EndedAt = t.Add(elapsed)
	return b
}

func (b *RunBuilder) WithDuration(seconds uint32) *RunBuilder {
	b.run.DurationSeconds = seconds
	b.run.EndedAt = b.run.StartedAt.Add(time.Duration(seconds-b.run.RemainingSeconds) * time.Second)
	return b
}

// StoppedWith marks the run as stopped with remaining seconds left.
func (b *RunBuilder) StoppedWith(remaining uint32) *RunBuilder {
	b.run.Outcome = models.OutcomeStopped
	b.run.RemainingSeconds = remaining
	return b
}

func (b *RunBuilder) WithOutcome(o models.Outcome) *RunBuilder {
	b.run.Outcome = o
	return b
}

func (b *RunBuilder) Build() models.Run {
	return b.run
}
