package config

import (
	"os"
	"strconv"
	"time"
)

// FromEnv loads configuration from TASKBOUND_* environment variables,
// falling back to defaults for anything unset.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("TASKBOUND_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TASKBOUND_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TASKBOUND_APP_VERSION"); v != "" {
		cfg.AppVersion = v
	}
	if d := getEnvDuration("TASKBOUND_SAVE_DEBOUNCE"); d > 0 {
		cfg.SaveDebounce = d
	}
	if d := getEnvDuration("TASKBOUND_TICK_INTERVAL"); d > 0 {
		cfg.TickInterval = d
	}
	if v, ok := getEnvBool("TASKBOUND_SCORE_ON_STRIKE"); ok {
		cfg.ScoreOnStrike = v
	}
	if v, ok := getEnvBool("TASKBOUND_REVIVE_ON_ADD_TIME"); ok {
		cfg.ReviveOnAddTime = v
	}

	return cfg
}

func getEnvBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}
	return b, true
}

func getEnvDuration(key string) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0
	}
	return d
}
