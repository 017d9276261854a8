package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestNormalizeTask_DefaultsStatusAndRemaining(t *testing.T) {
	in := Task{ID: "t1", Title: "write report", TimeAssignedSeconds: intp(90)}

	out := NormalizeTask(in)

	assert.Equal(t, StatusPending, out.Status)
	require.NotNil(t, out.RemainingSeconds)
	assert.Equal(t, 90, *out.RemainingSeconds)
}

func TestNormalizeTask_ClampsNegatives(t *testing.T) {
	in := Task{ID: "t1", TimeAssignedSeconds: intp(-5), RemainingSeconds: intp(-10)}

	out := NormalizeTask(in)

	assert.Equal(t, 0, *out.TimeAssignedSeconds)
	assert.Equal(t, 0, *out.RemainingSeconds)
}

func TestNormalizeTask_Idempotent(t *testing.T) {
	in := Task{
		ID:                  "t1",
		Title:               "mow lawn",
		TimeAssignedSeconds: intp(120),
		Status:              "not_a_status",
		History: []HistoryEntry{
			{Kind: HistoryAddTime, AmountSeconds: 60, At: time.Unix(1700000000, 0)},
		},
	}

	once := NormalizeTask(in)
	twice := NormalizeTask(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeTask_CopiesHistory(t *testing.T) {
	in := Task{ID: "t1", History: []HistoryEntry{{Kind: HistoryAddTime, AmountSeconds: 30}}}

	out := NormalizeTask(in)
	out.History[0].AmountSeconds = 999

	assert.Equal(t, 30, in.History[0].AmountSeconds)
}

func TestNormalizeTask_UntimedStaysUntimed(t *testing.T) {
	out := NormalizeTask(Task{ID: "t1", Title: "no timer"})

	assert.Nil(t, out.TimeAssignedSeconds)
	assert.Nil(t, out.RemainingSeconds)
	assert.False(t, out.HasTimer())
	assert.Equal(t, 0, out.Remaining())
}

func TestStats_RecordCompletion_SameDayIncrements(t *testing.T) {
	day := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	s := Stats{}
	s = s.RecordCompletion(day)
	s = s.RecordCompletion(day.Add(2 * time.Hour))

	assert.Equal(t, 2, s.TotalCompleted)
	assert.Equal(t, 2, s.TodayCompleted)
	assert.Equal(t, "2026-03-04", s.LastCompletionDate)
}

func TestStats_RecordCompletion_DayRolloverResets(t *testing.T) {
	s := Stats{TotalCompleted: 7, TodayCompleted: 3, LastCompletionDate: "2026-03-04"}

	s = s.RecordCompletion(time.Date(2026, 3, 5, 0, 30, 0, 0, time.UTC))

	assert.Equal(t, 8, s.TotalCompleted)
	assert.Equal(t, 1, s.TodayCompleted)
	assert.Equal(t, "2026-03-05", s.LastCompletionDate)
}

func TestAppState_CloneIsDeep(t *testing.T) {
	st := AppState{
		Score: 2,
		Tasks: []Task{{ID: "a", RemainingSeconds: intp(10), History: []HistoryEntry{{Kind: HistoryAddTime}}}},
	}

	cp := st.Clone()
	*cp.Tasks[0].RemainingSeconds = 0
	cp.Tasks[0].History[0].Kind = HistoryManualComplete

	assert.Equal(t, 10, *st.Tasks[0].RemainingSeconds)
	assert.Equal(t, HistoryAddTime, st.Tasks[0].History[0].Kind)
}
