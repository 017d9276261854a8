package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskbound/internal/model"
)

const version = "1.4.0"

func TestRehydrate_NilDocumentYieldsFreshState(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	st := Rehydrate(nil, version, now)

	assert.Equal(t, 0, st.Score)
	assert.Empty(t, st.Tasks)
	assert.Equal(t, model.Stats{}, st.Stats)
	assert.True(t, st.Preferences.AlwaysOnTop)
	assert.Equal(t, now, st.Meta.LastSavedAt)
	assert.Equal(t, version, st.Meta.AppVersion)
}

func TestRehydrate_CatchesUpElapsedTime(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	saved := now.Add(-25 * time.Second)
	doc := &model.Document{
		Tasks: []model.Task{timed("a", 10, model.StatusInProgress)},
		Meta:  &model.DocMeta{LastSavedAt: &saved, AppVersion: "1.3.9"},
	}

	st := Rehydrate(doc, version, now)

	require.Len(t, st.Tasks, 1)
	got := st.Tasks[0]
	assert.Equal(t, model.StatusStruck, got.Status)
	assert.Equal(t, 0, *got.RemainingSeconds)
	require.Len(t, got.History, 1)
	assert.Equal(t, model.HistoryAutoComplete, got.History[0].Kind)
	assert.Equal(t, 10, got.History[0].AmountSeconds)
	assert.Equal(t, 1, st.Stats.TotalCompleted)
	assert.Equal(t, version, st.Meta.AppVersion)
	assert.Equal(t, now, st.Meta.LastSavedAt)
}

func TestRehydrate_TwoTaskCatchUpScenario(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	saved := now.Add(-8 * time.Second)
	doc := &model.Document{
		Tasks: []model.Task{
			timed("a", 5, model.StatusInProgress),
			{ID: "b", Title: "b", TimeAssignedSeconds: intp(20), Status: model.StatusPending},
		},
		Meta: &model.DocMeta{LastSavedAt: &saved},
	}

	st := Rehydrate(doc, version, now)

	assert.Equal(t, model.StatusStruck, st.Tasks[0].Status)
	assert.Equal(t, 5, st.Tasks[0].History[0].AmountSeconds)
	assert.Equal(t, model.StatusInProgress, st.Tasks[1].Status)
	assert.Equal(t, 17, *st.Tasks[1].RemainingSeconds)
}

func TestRehydrate_FutureLastSavedAtIsZeroElapsed(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	saved := now.Add(90 * time.Second)
	doc := &model.Document{
		Tasks: []model.Task{timed("a", 10, model.StatusInProgress)},
		Meta:  &model.DocMeta{LastSavedAt: &saved},
	}

	st := Rehydrate(doc, version, now)

	assert.Equal(t, 10, *st.Tasks[0].RemainingSeconds)
	assert.Equal(t, model.StatusInProgress, st.Tasks[0].Status)
	assert.Empty(t, st.Tasks[0].History)
}

func TestRehydrate_MissingMetaMeansZeroElapsed(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	doc := &model.Document{Tasks: []model.Task{timed("a", 10, model.StatusPending)}}

	st := Rehydrate(doc, version, now)

	assert.Equal(t, 10, *st.Tasks[0].RemainingSeconds)
	assert.Equal(t, model.StatusInProgress, st.Tasks[0].Status)
}

func TestRehydrate_RepairsInconsistentStatuses(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	saved := now
	doc := &model.Document{
		Tasks: []model.Task{
			timed("a", 10, model.StatusInProgress),
			timed("b", 10, model.StatusInProgress),
			timed("c", 10, model.StatusInProgress),
		},
		Meta: &model.DocMeta{LastSavedAt: &saved},
	}

	st := Rehydrate(doc, version, now)

	assert.Equal(t, model.StatusInProgress, st.Tasks[0].Status)
	assert.Equal(t, model.StatusPending, st.Tasks[1].Status)
	assert.Equal(t, model.StatusPending, st.Tasks[2].Status)
}

func TestRehydrate_KeepsPersistedSections(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	saved := now
	score := 12
	doc := &model.Document{
		Score:       &score,
		Stats:       &model.Stats{TotalCompleted: 9, TodayCompleted: 2, LastCompletionDate: "2026-04-30"},
		Preferences: &model.Preferences{AlwaysOnTop: false},
		Meta:        &model.DocMeta{LastSavedAt: &saved},
	}

	st := Rehydrate(doc, version, now)

	assert.Equal(t, 12, st.Score)
	assert.Equal(t, 9, st.Stats.TotalCompleted)
	assert.False(t, st.Preferences.AlwaysOnTop)
}

func TestRehydrate_PureGivenSameInputs(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	saved := now.Add(-42 * time.Second)
	doc := &model.Document{
		Tasks: []model.Task{timed("a", 30, model.StatusInProgress), timed("b", 60, model.StatusPending)},
		Meta:  &model.DocMeta{LastSavedAt: &saved},
	}

	first := Rehydrate(doc, version, now)
	second := Rehydrate(doc, version, now)

	assert.Equal(t, first, second)
}
