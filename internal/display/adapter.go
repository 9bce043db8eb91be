// Package display turns engine state into clock-face text and asks the
// renderer for a repaint.
package display

//go:generate mockgen -destination=mock_renderer_test.go -package=display github.com/akyairhashvil/sstimer/internal/display Renderer

import (
	"fmt"

	"github.com/akyairhashvil/sstimer/internal/config"
	"github.com/akyairhashvil/sstimer/internal/engine"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Renderer owns the visual surface. MarkDirty schedules a repaint on the
// next frame; it must not paint synchronously.
type Renderer interface {
	MarkDirty()
}

// Adapter caches the formatted face for the latest state. It implements
// engine.Display.
type Adapter struct {
	renderer Renderer
	minutes  string
	seconds  string
	ratio    float64
	paused   bool
	phase    engine.Phase
	blocks   *lru.Cache[string, string]
}

var _ engine.Display = (*Adapter)(nil)

func NewAdapter(r Renderer) *Adapter {
	a := &Adapter{renderer: r, minutes: "00", seconds: "00"}
	// lru.New only fails for a non-positive size.
	if cache, err := lru.New[string, string](config.DigitCacheSize); err == nil {
		a.blocks = cache
	}
	return a
}

// Format splits remaining seconds into zero-padded minute and second
// text. Minutes of 100 or more keep every digit.
func Format(remaining uint32) (minutes, seconds string) {
	return fmt.Sprintf("%02d", remaining/60), fmt.Sprintf("%02d", remaining%60)
}

// FillRatio is the share of the duration still remaining, in [0, 1].
// A zero duration yields an empty gauge.
func FillRatio(remaining, duration uint32) float64 {
	if duration == 0 {
		return 0
	}
	if remaining >= duration {
		return 1
	}
	return float64(remaining) / float64(duration)
}

// ShowPauseGlyph reports whether the two-bar pause overlay is drawn.
func ShowPauseGlyph(s engine.State) bool {
	return s.Paused && s.Running
}

// Refresh recomputes the cached face and requests a redraw.
func (a *Adapter) Refresh(s engine.State) {
	a.minutes, a.seconds = Format(s.RemainingSeconds)
	a.ratio = FillRatio(s.RemainingSeconds, s.DurationSeconds)
	a.paused = ShowPauseGlyph(s)
	a.phase = s.Phase()
	a.RequestRedraw()
}

func (a *Adapter) RequestRedraw() {
	if a.renderer != nil {
		a.renderer.MarkDirty()
	}
}

func (a *Adapter) Minutes() string     { return a.minutes }
func (a *Adapter) Seconds() string     { return a.seconds }
func (a *Adapter) Ratio() float64      { return a.ratio }
func (a *Adapter) Paused() bool        { return a.paused }
func (a *Adapter) Phase() engine.Phase { return a.phase }

// Clock is the compact "MM:SS" form.
func (a *Adapter) Clock() string {
	return a.minutes + ":" + a.seconds
}

// Block renders text in the large block font, reusing earlier renders.
func (a *Adapter) Block(text string) string {
	if a.blocks == nil {
		return renderBlock(text)
	}
	if out, ok := a.blocks.Get(text); ok {
		return out
	}
	out := renderBlock(text)
	a.blocks.Add(text, out)
	return out
}

// CachedBlocks reports how many rendered blocks are held.
func (a *Adapter) CachedBlocks() int {
	if a.blocks == nil {
		return 0
	}
	return a.blocks.Len()
}
