package engine

import (
	"time"

	"taskbound/internal/model"
)

// Rehydrate turns a raw persisted document (possibly nil, possibly written by
// an older schema) into a consistent AppState, replaying the countdown across
// the wall-clock time that passed while the app was closed. Pure: the same
// inputs always produce the same state.
func Rehydrate(doc *model.Document, appVersion string, now time.Time) model.AppState {
	st := model.AppState{
		Preferences: model.Preferences{AlwaysOnTop: true},
	}

	lastSavedAt := now
	if doc != nil {
		if doc.Score != nil {
			st.Score = *doc.Score
		}
		for _, t := range doc.Tasks {
			st.Tasks = append(st.Tasks, model.NormalizeTask(t))
		}
		if doc.Stats != nil {
			st.Stats = *doc.Stats
		}
		if doc.Preferences != nil {
			st.Preferences = *doc.Preferences
		}
		if doc.Meta != nil && doc.Meta.LastSavedAt != nil {
			lastSavedAt = *doc.Meta.LastSavedAt
		}
	}

	// A clock set backward across a save yields negative elapsed time;
	// clamp so the countdown never advances.
	elapsed := int(now.Sub(lastSavedAt) / time.Second)
	if elapsed > 0 {
		res := Advance(st.Tasks, st.Stats, elapsed, now)
		st.Tasks = res.Tasks
		st.Stats = res.Stats
	}

	// Persisted state may predate the invariant; realign unconditionally.
	Realign(st.Tasks)

	st.Meta = model.Meta{LastSavedAt: now, AppVersion: appVersion}
	return st
}
