package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":9173", cfg.Addr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.False(t, cfg.ScoreOnStrike)
	assert.True(t, cfg.ReviveOnAddTime)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("TASKBOUND_ADDR", ":8099")
	t.Setenv("TASKBOUND_DATA_DIR", "/tmp/tb")
	t.Setenv("TASKBOUND_SAVE_DEBOUNCE", "2s")
	t.Setenv("TASKBOUND_SCORE_ON_STRIKE", "true")
	t.Setenv("TASKBOUND_REVIVE_ON_ADD_TIME", "false")

	cfg := FromEnv()

	assert.Equal(t, ":8099", cfg.Addr)
	assert.Equal(t, "/tmp/tb", cfg.DataDir)
	assert.Equal(t, 2*time.Second, cfg.SaveDebounce)
	assert.True(t, cfg.ScoreOnStrike)
	assert.False(t, cfg.ReviveOnAddTime)
}

func TestFromEnv_IgnoresGarbage(t *testing.T) {
	t.Setenv("TASKBOUND_SAVE_DEBOUNCE", "soon")
	t.Setenv("TASKBOUND_SCORE_ON_STRIKE", "sure")

	cfg := FromEnv()

	assert.Equal(t, Default().SaveDebounce, cfg.SaveDebounce)
	assert.False(t, cfg.ScoreOnStrike)
}
