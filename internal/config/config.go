// Package config holds runtime settings, loaded from environment variables
// with sane local-first defaults.
package config

import "time"

type Config struct {
	// Addr is the listen address for the shell API.
	Addr string
	// DataDir holds the persisted state document and its backup copy.
	DataDir string
	// AppVersion is stamped into persisted metadata on every save.
	AppVersion string
	// SaveDebounce is the quiet period before a persist-worthy mutation is
	// written to disk.
	SaveDebounce time.Duration
	// TickInterval is the cadence of the countdown timer source. The engine
	// replays whole seconds regardless of how uneven this fires.
	TickInterval time.Duration
	// ScoreOnStrike awards a point when the live countdown strikes a task.
	ScoreOnStrike bool
	// ReviveOnAddTime moves a finished task back in progress when time is
	// added to it.
	ReviveOnAddTime bool
}

func Default() Config {
	return Config{
		Addr:            ":9173",
		DataDir:         "data",
		AppVersion:      "1.4.0",
		SaveDebounce:    500 * time.Millisecond,
		TickInterval:    250 * time.Millisecond,
		ScoreOnStrike:   false,
		ReviveOnAddTime: true,
	}
}
