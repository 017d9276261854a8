package model

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusStruck     Status = "struck"
)

// Terminal reports whether the status is an end state. Only an explicit
// add-time action may move a task back out of a terminal status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusStruck
}

type HistoryKind string

const (
	HistoryManualComplete HistoryKind = "manual_complete"
	HistoryAutoComplete   HistoryKind = "auto_complete"
	HistoryAddTime        HistoryKind = "add_time"
)

// HistoryEntry is one record in a task's append-only event log.
type HistoryEntry struct {
	Kind          HistoryKind `json:"type"`
	AmountSeconds int         `json:"amountSeconds,omitempty"`
	At            time.Time   `json:"at"`
}

type Task struct {
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
	CompletedAt         *time.Time     `json:"completedAt,omitempty"`
	TimeAssignedSeconds *int           `json:"timeAssignedSeconds,omitempty"`
	RemainingSeconds    *int           `json:"remainingSeconds,omitempty"`
	Status              Status         `json:"status,omitempty"`
	Paused              bool           `json:"isPaused,omitempty"`
	History             []HistoryEntry `json:"history,omitempty"`
}

func NewTask(title string, assignedSeconds *int, now time.Time) Task {
	t := Task{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
		Status:    StatusPending,
	}
	if assignedSeconds != nil {
		a := max(0, *assignedSeconds)
		r := a
		t.TimeAssignedSeconds = &a
		t.RemainingSeconds = &r
	}
	return t
}

// Remaining is the countdown seconds left: the remaining field when present,
// otherwise the assigned budget, otherwise 0.
func (t Task) Remaining() int {
	if t.RemainingSeconds != nil {
		return *t.RemainingSeconds
	}
	if t.TimeAssignedSeconds != nil {
		return *t.TimeAssignedSeconds
	}
	return 0
}

// HasTimer reports whether the task carries a time budget at all.
func (t Task) HasTimer() bool {
	return t.TimeAssignedSeconds != nil || t.RemainingSeconds != nil
}

// Clone returns a deep copy; history is never shared between snapshots.
func (t Task) Clone() Task {
	out := t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		out.CompletedAt = &at
	}
	if t.TimeAssignedSeconds != nil {
		v := *t.TimeAssignedSeconds
		out.TimeAssignedSeconds = &v
	}
	if t.RemainingSeconds != nil {
		v := *t.RemainingSeconds
		out.RemainingSeconds = &v
	}
	if t.History != nil {
		out.History = append([]HistoryEntry(nil), t.History...)
	}
	return out
}

// NormalizeTask fills in fields an older on-disk schema may have omitted:
// status defaults to pending, remaining is derived from the assigned budget,
// negative durations clamp to zero. Idempotent, and the result never shares
// history or duration storage with the input.
func NormalizeTask(t Task) Task {
	out := t.Clone()
	switch out.Status {
	case StatusPending, StatusInProgress, StatusCompleted, StatusStruck:
	default:
		out.Status = StatusPending
	}
	if out.TimeAssignedSeconds != nil && *out.TimeAssignedSeconds < 0 {
		*out.TimeAssignedSeconds = 0
	}
	if out.RemainingSeconds == nil && out.TimeAssignedSeconds != nil {
		r := *out.TimeAssignedSeconds
		out.RemainingSeconds = &r
	}
	if out.RemainingSeconds != nil && *out.RemainingSeconds < 0 {
		*out.RemainingSeconds = 0
	}
	return out
}
