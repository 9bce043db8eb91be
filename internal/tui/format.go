package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/sstimer/internal/config"
	"github.com/charmbracelet/x/ansi"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// formatClock renders remaining seconds as "MM:SS".
func formatClock(seconds uint32) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatPhase returns a human-readable timer status.
func FormatPhase(running, paused bool, remaining uint32) string {
	switch {
	case running && paused:
		return fmt.Sprintf("Paused - %s remaining", formatClock(remaining))
	case running:
		return fmt.Sprintf("Running - %s remaining", formatClock(remaining))
	case remaining > 0:
		return "Ready"
	default:
		return "Set a time"
	}
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
