package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/akyairhashvil/sstimer/internal/clock"
	"github.com/akyairhashvil/sstimer/internal/display"
	"github.com/akyairhashvil/sstimer/internal/engine"
	"github.com/akyairhashvil/sstimer/internal/models"
	"github.com/akyairhashvil/sstimer/internal/util"
)

var errNoDuration = errors.New("nothing to count down: set initial_minutes or -minutes")

type runRecorder interface {
	RecordRun(ctx context.Context, run models.Run) (int64, error)
}

// lineRenderer prints the clock once per frame in which it was marked
// dirty.
type lineRenderer struct {
	w     io.Writer
	face  *display.Adapter
	dirty bool
}

func (r *lineRenderer) MarkDirty() {
	r.dirty = true
}

func (r *lineRenderer) flush() {
	if !r.dirty || r.face == nil {
		return
	}
	r.dirty = false
	if _, err := fmt.Fprintln(r.w, r.face.Clock()); err != nil {
		log.Printf("plain render: %v", err)
	}
}

// plainAlert rings the bell and ends the loop.
type plainAlert struct {
	w    io.Writer
	bell bool
	done func()
}

func (a *plainAlert) Pulse() {
	if a.bell {
		if _, err := fmt.Fprint(a.w, "\a"); err != nil {
			log.Printf("bell: %v", err)
		}
	}
	if a.done != nil {
		a.done()
	}
}

// runPlain counts down minutes on the clock loop until the timer
// completes or ctx is cancelled.
func runPlain(ctx context.Context, w io.Writer, minutes int, bell bool, rec runRecorder) error {
	if minutes <= 0 {
		return errNoDuration
	}
	loop := clock.NewLoop(16)
	sched := clock.NewScheduler(loop)
	r := &lineRenderer{w: w}
	face := display.NewAdapter(r)
	r.face = face
	e := engine.New(sched, face, &plainAlert{w: w, bell: bell, done: loop.Stop})
	loop.OnFrame(r.flush)

	var started time.Time
	e.Observe(func(ev engine.Event) {
		log.Printf("timer %s: remaining=%d duration=%d", ev.Kind, ev.State.RemainingSeconds, ev.State.DurationSeconds)
		switch ev.Kind {
		case engine.EventStarted:
			started = time.Now()
		case engine.EventCompleted:
			record(ctx, rec, started, ev.State, models.OutcomeCompleted)
		}
	})

	loop.Post(func() {
		e.AdjustMinutes(minutes)
		e.TogglePause()
	})
	err := loop.Run(ctx)

	// The loop has returned, so the engine is no longer shared.
	if e.Running() {
		record(context.WithoutCancel(ctx), rec, started, e.Snapshot(), models.OutcomeStopped)
	}
	e.Close()
	if errors.Is(err, clock.ErrLoopStopped) || ctx.Err() != nil {
		return nil
	}
	return err
}

func record(ctx context.Context, rec runRecorder, started time.Time, s engine.State, outcome models.Outcome) {
	if rec == nil {
		return
	}
	run := models.Run{
		StartedAt:        started,
		EndedAt:          time.Now(),
		DurationSeconds:  s.DurationSeconds,
		RemainingSeconds: s.RemainingSeconds,
		Outcome:          outcome,
	}
	_, err := rec.RecordRun(ctx, run)
	util.LogError("record run", err)
}
