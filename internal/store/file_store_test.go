package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskbound/internal/engine"
	"taskbound/internal/model"
)

func intp(v int) *int { return &v }

func sampleState() model.AppState {
	r, a := 30, 60
	return model.AppState{
		Score: 3,
		Tasks: []model.Task{{
			ID:                  "t1",
			Title:               "pack boxes",
			Status:              model.StatusInProgress,
			TimeAssignedSeconds: &a,
			RemainingSeconds:    &r,
		}},
		Stats:       model.Stats{TotalCompleted: 2, TodayCompleted: 1, LastCompletionDate: "2026-05-01"},
		Preferences: model.Preferences{AlwaysOnTop: true},
	}
}

func TestFileStore_SaveThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs, err := New(dir, "1.4.0")
	require.NoError(t, err)

	meta, err := fs.Save(sampleState())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", meta.AppVersion)
	assert.False(t, meta.LastSavedAt.IsZero())

	doc := fs.Load()
	require.NotNil(t, doc)
	require.NotNil(t, doc.Score)
	assert.Equal(t, 3, *doc.Score)
	require.Len(t, doc.Tasks, 1)
	assert.Equal(t, "pack boxes", doc.Tasks[0].Title)
	assert.Equal(t, 30, *doc.Tasks[0].RemainingSeconds)
	require.NotNil(t, doc.Meta)
	require.NotNil(t, doc.Meta.LastSavedAt)
	assert.Equal(t, "1.4.0", doc.Meta.AppVersion)
}

func TestFileStore_LoadAbsentReturnsNil(t *testing.T) {
	fs, err := New(t.TempDir(), "1.4.0")
	require.NoError(t, err)

	assert.Nil(t, fs.Load())
}

func TestFileStore_CorruptPrimaryFallsBackToBackup(t *testing.T) {
	dir := t.TempDir()
	fs, err := New(dir, "1.4.0")
	require.NoError(t, err)

	_, err = fs.Save(sampleState())
	require.NoError(t, err)

	// Corrupt the primary; the backup copy must still load.
	require.NoError(t, os.WriteFile(filepath.Join(dir, primaryName), []byte("{not json"), 0o644))

	doc := fs.Load()
	require.NotNil(t, doc)
	assert.Equal(t, "pack boxes", doc.Tasks[0].Title)
}

func TestFileStore_BothCopiesCorruptStartsFresh(t *testing.T) {
	dir := t.TempDir()
	fs, err := New(dir, "1.4.0")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, primaryName), []byte("oops"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, backupName), []byte("also oops"), 0o644))

	assert.Nil(t, fs.Load())
}

func TestFileStore_SaveWritesDocumentShape(t *testing.T) {
	dir := t.TempDir()
	fs, err := New(dir, "1.4.0")
	require.NoError(t, err)

	_, err = fs.Save(model.AppState{})
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, primaryName))
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	for _, key := range []string{"score", "tasks", "stats", "meta", "preferences"} {
		assert.Contains(t, raw, key)
	}
}

func TestSaver_DebouncesAndSyncsMeta(t *testing.T) {
	dir := t.TempDir()
	fs, err := New(dir, "1.4.0")
	require.NoError(t, err)

	st := engine.NewStore(model.AppState{}, engine.DefaultPolicy())
	saver := NewSaver(fs, st, 20*time.Millisecond)
	st.Subscribe(saver.Notify)

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	st.Dispatch(engine.AddTask("one", intp(10), now))
	st.Dispatch(engine.AddTask("two", nil, now))

	require.Eventually(t, func() bool {
		doc := fs.Load()
		return doc != nil && len(doc.Tasks) == 2
	}, 2*time.Second, 10*time.Millisecond)

	// The save confirmation flows back into state meta.
	require.Eventually(t, func() bool {
		return !st.State().Meta.LastSavedAt.IsZero()
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "1.4.0", st.State().Meta.AppVersion)
}

func TestSaver_FlushWritesPendingImmediately(t *testing.T) {
	dir := t.TempDir()
	fs, err := New(dir, "1.4.0")
	require.NoError(t, err)

	st := engine.NewStore(model.AppState{}, engine.DefaultPolicy())
	saver := NewSaver(fs, st, time.Hour)
	st.Subscribe(saver.Notify)

	st.Dispatch(engine.AddTask("one", intp(10), time.Now()))
	require.Nil(t, fs.Load())

	saver.Flush()

	doc := fs.Load()
	require.NotNil(t, doc)
	assert.Len(t, doc.Tasks, 1)
}
