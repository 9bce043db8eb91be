package config

import "time"

// Timer behaviour.
const (
	// TickInterval is the delay of every one-shot countdown tick.
	TickInterval = 1000 * time.Millisecond

	// StepSmall and StepLarge are the minute magnitudes of a short and
	// long press on the up/down buttons.
	StepSmall = 1
	StepLarge = 5
)

// Application settings.
const (
	AppName        = "sstimer"
	DBFileName     = "history.db"
	ConfigFileName = "config.yaml"
	LogFileName    = "sstimer.log"
	ConfigEnvVar   = "SSTIMER_CONFIG"
)

// Setting keys stored in the history database.
const (
	SettingTheme = "theme"
)
