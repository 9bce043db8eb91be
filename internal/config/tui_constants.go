package config

// Layout constants.
const (
	// GaugeWidth is the width of the vertical fill gauge on the left edge.
	GaugeWidth = 4

	// FaceMinWidth is the smallest face width before falling back to
	// plain digits.
	FaceMinWidth = 24

	// FaceMinHeight is the smallest face height before falling back to
	// plain digits.
	FaceMinHeight = 14

	// ProgressWidth is the default width of the horizontal progress bar.
	ProgressWidth = 30
)

// Display limits.
const (
	// DigitCacheSize bounds the number of rendered big-digit blocks kept.
	DigitCacheSize = 128

	// TruncationSuffix appended to truncated status lines.
	TruncationSuffix = "…"
)

// Pause glyph geometry, in terminal cells.
const (
	PauseBarWidth  = 2
	PauseBarHeight = 3
	PauseBarGap    = 2
)
