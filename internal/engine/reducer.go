package engine

import (
	"taskbound/internal/model"
)

// Policy pins down the behaviors that varied across releases of the original
// application. Both knobs are surfaced through configuration rather than
// silently blended.
type Policy struct {
	// ScoreOnAutoStrike awards +1 when the live countdown strikes a task.
	// Bulk catch-up strikes never award score either way.
	ScoreOnAutoStrike bool
	// ReviveOnAddTime moves a finished task back to in_progress when time
	// is added to it, clearing its completion timestamp.
	ReviveOnAddTime bool
}

func DefaultPolicy() Policy {
	return Policy{ScoreOnAutoStrike: false, ReviveOnAddTime: true}
}

// Reduce applies one action to a state snapshot and returns the next
// snapshot plus whether the transition is persist-worthy. It is a total
// function: unknown task ids and unsatisfied preconditions are no-ops, never
// errors. The input snapshot is never mutated.
func Reduce(st model.AppState, a Action, pol Policy) (model.AppState, bool) {
	next := st.Clone()

	switch a.Kind {
	case ActionTick:
		return reduceTick(next, a, pol)

	case ActionAddTask:
		next.Tasks = append(next.Tasks, model.NewTask(a.Title, a.Seconds, a.Now))

	case ActionManualComplete:
		i := ActiveIndex(next.Tasks)
		if i < 0 {
			return st, false
		}
		t := &next.Tasks[i]
		amount := t.Remaining()
		zero := 0
		t.RemainingSeconds = &zero
		t.Status = model.StatusCompleted
		done := a.Now
		t.CompletedAt = &done
		t.UpdatedAt = a.Now
		t.History = append(t.History, model.HistoryEntry{
			Kind:          model.HistoryManualComplete,
			AmountSeconds: amount,
			At:            a.Now,
		})
		next.Stats = next.Stats.RecordCompletion(a.Now)
		next.Score++

	case ActionAddTime:
		i := indexByID(next.Tasks, a.TaskID)
		if i < 0 {
			return st, false
		}
		t := &next.Tasks[i]
		amount := max(0, a.Amount)
		hadBudget := t.TimeAssignedSeconds != nil && *t.TimeAssignedSeconds > 0
		assigned := amount
		if t.TimeAssignedSeconds != nil {
			assigned += *t.TimeAssignedSeconds
		}
		remaining := t.Remaining() + amount
		t.TimeAssignedSeconds = &assigned
		t.RemainingSeconds = &remaining
		t.UpdatedAt = a.Now
		t.History = append(t.History, model.HistoryEntry{
			Kind:          model.HistoryAddTime,
			AmountSeconds: amount,
			At:            a.Now,
		})
		if t.Status.Terminal() && pol.ReviveOnAddTime && remaining > 0 {
			t.Status = model.StatusInProgress
			t.CompletedAt = nil
		}
		if hadBudget {
			next.Score--
		}

	case ActionUpdateTask:
		i := indexByID(next.Tasks, a.TaskID)
		if i < 0 {
			return st, false
		}
		t := &next.Tasks[i]
		t.Title = a.Title
		prevAssigned := 0
		if t.TimeAssignedSeconds != nil {
			prevAssigned = *t.TimeAssignedSeconds
		}
		if a.Seconds == nil {
			t.TimeAssignedSeconds = nil
			t.RemainingSeconds = nil
		} else {
			assigned := max(0, *a.Seconds)
			remaining := max(0, t.Remaining()+assigned-prevAssigned)
			t.TimeAssignedSeconds = &assigned
			t.RemainingSeconds = &remaining
			if assigned > prevAssigned && prevAssigned > 0 {
				next.Score--
			}
		}
		if !t.Status.Terminal() {
			if t.Remaining() > 0 {
				t.Status = model.StatusInProgress
			} else {
				t.Status = model.StatusPending
			}
		}
		t.UpdatedAt = a.Now

	case ActionDeleteTask:
		i := indexByID(next.Tasks, a.TaskID)
		if i < 0 {
			return st, false
		}
		next.Tasks = append(next.Tasks[:i], next.Tasks[i+1:]...)

	case ActionReorderTasks:
		next.Tasks = reorder(next.Tasks, a.IDs)

	case ActionPauseTask, ActionResumeTask:
		i := indexByID(next.Tasks, a.TaskID)
		if i < 0 {
			return st, false
		}
		next.Tasks[i].Paused = a.Kind == ActionPauseTask
		next.Tasks[i].UpdatedAt = a.Now

	case ActionSetAlwaysOnTop:
		next.Preferences.AlwaysOnTop = a.Enabled

	case ActionSyncMeta:
		next.Meta = a.Meta
		return next, false

	default:
		return st, false
	}

	Realign(next.Tasks)
	return next, true
}

func reduceTick(next model.AppState, a Action, pol Policy) (model.AppState, bool) {
	i := ActiveIndex(next.Tasks)
	if i < 0 {
		return next, false
	}
	t := &next.Tasks[i]
	if t.Paused || t.Remaining() <= 0 {
		return next, false
	}

	r := t.Remaining() - 1
	t.RemainingSeconds = &r
	t.UpdatedAt = a.Now
	if r > 0 {
		t.Status = model.StatusInProgress
		return next, false
	}

	// The final second expired: strike the task the same way catch-up does.
	strike(t, 1, a.Now)
	next.Stats = next.Stats.RecordCompletion(a.Now)
	if pol.ScoreOnAutoStrike {
		next.Score++
	}
	Realign(next.Tasks)
	return next, true
}

func indexByID(tasks []model.Task, id string) int {
	if id == "" {
		return -1
	}
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// reorder moves the named tasks to the front of the queue in the requested
// order; every task not named keeps its relative position after them.
// Unknown and duplicate ids are ignored.
func reorder(tasks []model.Task, orderedIDs []string) []model.Task {
	picked := make(map[string]bool, len(orderedIDs))
	out := make([]model.Task, 0, len(tasks))
	for _, id := range orderedIDs {
		i := indexByID(tasks, id)
		if i < 0 || picked[id] {
			continue
		}
		picked[id] = true
		out = append(out, tasks[i])
	}
	for _, t := range tasks {
		if !picked[t.ID] {
			out = append(out, t)
		}
	}
	return out
}
