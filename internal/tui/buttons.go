package tui

import (
	"github.com/akyairhashvil/sstimer/internal/config"
	"github.com/akyairhashvil/sstimer/internal/engine"
)

// Button is one of the three physical buttons of the watch face.
type Button int

const (
	ButtonSelect Button = iota
	ButtonUp
	ButtonDown
)

func (b Button) String() string {
	switch b {
	case ButtonSelect:
		return "select"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	}
	return "unknown"
}

// Press applies a short or long press of b to the engine.
func Press(e *engine.Engine, b Button, long bool) {
	switch b {
	case ButtonSelect:
		if long {
			e.Restart()
		} else {
			e.TogglePause()
		}
	case ButtonUp:
		if long {
			e.AdjustMinutes(config.StepLarge)
		} else {
			e.AdjustMinutes(config.StepSmall)
		}
	case ButtonDown:
		if long {
			e.AdjustMinutes(-config.StepLarge)
		} else {
			e.AdjustMinutes(-config.StepSmall)
		}
	}
}
