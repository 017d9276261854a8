package engine

import (
	"time"

	"taskbound/internal/model"
)

// AdvanceResult is the outcome of replaying elapsed countdown time in bulk.
type AdvanceResult struct {
	Tasks  []model.Task
	Stats  model.Stats
	Struck int
}

// Advance deterministically replays elapsed seconds of countdown across the
// queue: the active task's budget is consumed first and, when it runs out,
// the task is struck and the leftover budget flows into the next task. The
// loop stops when the elapsed budget is spent, no active task remains, or
// the active task is untimed or paused (an untimed task is never silently
// completed). Statistics are updated per strike using the reference
// timestamp's day; score is never touched here.
//
// The input need not be normalized; the result always satisfies the
// single-active-task invariant.
func Advance(tasks []model.Task, stats model.Stats, elapsedSeconds int, ref time.Time) AdvanceResult {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = model.NormalizeTask(t)
	}

	remaining := max(0, elapsedSeconds)
	struck := 0
	for remaining > 0 {
		i := ActiveIndex(out)
		if i < 0 {
			break
		}
		t := &out[i]
		if t.Paused || t.Remaining() <= 0 {
			break
		}

		budget := t.Remaining()
		if remaining < budget {
			r := budget - remaining
			t.RemainingSeconds = &r
			t.Status = model.StatusInProgress
			t.UpdatedAt = ref
			remaining = 0
			break
		}

		remaining -= budget
		strike(t, budget, ref)
		stats = stats.RecordCompletion(ref)
		struck++
	}

	Realign(out)
	return AdvanceResult{Tasks: out, Stats: stats, Struck: struck}
}

// strike retires a task whose countdown ran out, recording how many seconds
// this transition consumed from it.
func strike(t *model.Task, consumed int, at time.Time) {
	zero := 0
	t.RemainingSeconds = &zero
	t.Status = model.StatusStruck
	done := at
	t.CompletedAt = &done
	t.UpdatedAt = at
	t.History = append(t.History, model.HistoryEntry{
		Kind:          model.HistoryAutoComplete,
		AmountSeconds: consumed,
		At:            at,
	})
}
