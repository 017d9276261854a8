package engine

import (
	"time"

	"taskbound/internal/model"
)

type ActionKind string

const (
	ActionTick           ActionKind = "tick"
	ActionAddTask        ActionKind = "add_task"
	ActionManualComplete ActionKind = "manual_complete"
	ActionAddTime        ActionKind = "add_time"
	ActionUpdateTask     ActionKind = "update_task"
	ActionDeleteTask     ActionKind = "delete_task"
	ActionReorderTasks   ActionKind = "reorder_tasks"
	ActionPauseTask      ActionKind = "pause_task"
	ActionResumeTask     ActionKind = "resume_task"
	ActionSetAlwaysOnTop ActionKind = "set_always_on_top"
	ActionSyncMeta       ActionKind = "sync_meta"
)

// Action is one discrete reducer event. Fields beyond Kind and Now are
// populated per kind by the constructors below.
type Action struct {
	Kind    ActionKind
	Now     time.Time
	TaskID  string
	Title   string
	Seconds *int
	Amount  int
	IDs     []string
	Enabled bool
	Meta    model.Meta
}

func Tick(now time.Time) Action {
	return Action{Kind: ActionTick, Now: now}
}

func AddTask(title string, seconds *int, now time.Time) Action {
	return Action{Kind: ActionAddTask, Title: title, Seconds: seconds, Now: now}
}

func ManualComplete(now time.Time) Action {
	return Action{Kind: ActionManualComplete, Now: now}
}

func AddTime(taskID string, seconds int, now time.Time) Action {
	return Action{Kind: ActionAddTime, TaskID: taskID, Amount: seconds, Now: now}
}

func UpdateTask(taskID, title string, seconds *int, now time.Time) Action {
	return Action{Kind: ActionUpdateTask, TaskID: taskID, Title: title, Seconds: seconds, Now: now}
}

func DeleteTask(taskID string, now time.Time) Action {
	return Action{Kind: ActionDeleteTask, TaskID: taskID, Now: now}
}

func ReorderTasks(orderedIDs []string, now time.Time) Action {
	return Action{Kind: ActionReorderTasks, IDs: orderedIDs, Now: now}
}

func PauseTask(taskID string, now time.Time) Action {
	return Action{Kind: ActionPauseTask, TaskID: taskID, Now: now}
}

func ResumeTask(taskID string, now time.Time) Action {
	return Action{Kind: ActionResumeTask, TaskID: taskID, Now: now}
}

func SetAlwaysOnTop(enabled bool, now time.Time) Action {
	return Action{Kind: ActionSetAlwaysOnTop, Enabled: enabled, Now: now}
}

// SyncMeta folds a save confirmation back into the state without marking the
// transition persist-worthy.
func SyncMeta(meta model.Meta) Action {
	return Action{Kind: ActionSyncMeta, Meta: meta}
}
