package model

import "time"

// DateKey is the UTC calendar-day bucket used for daily completion stats.
func DateKey(at time.Time) string {
	return at.UTC().Format("2006-01-02")
}

type Stats struct {
	TotalCompleted     int    `json:"totalCompleted"`
	TodayCompleted     int    `json:"todayCompleted"`
	LastCompletionDate string `json:"lastCompletionDate,omitempty"`
}

// RecordCompletion bumps the monotonic counter and the per-day counter,
// resetting the latter when the completion day rolls over.
func (s Stats) RecordCompletion(at time.Time) Stats {
	key := DateKey(at)
	s.TotalCompleted++
	if s.LastCompletionDate == key {
		s.TodayCompleted++
	} else {
		s.TodayCompleted = 1
		s.LastCompletionDate = key
	}
	return s
}

type Meta struct {
	LastSavedAt time.Time `json:"lastSavedAt"`
	AppVersion  string    `json:"appVersion"`
}

type Preferences struct {
	AlwaysOnTop bool `json:"alwaysOnTop"`
}

// AppState is the aggregate root. Snapshots are immutable by convention:
// every transition produces a new value via Clone.
type AppState struct {
	Score       int         `json:"score"`
	Tasks       []Task      `json:"tasks"`
	Stats       Stats       `json:"stats"`
	Meta        Meta        `json:"meta"`
	Preferences Preferences `json:"preferences"`
}

func (s AppState) Clone() AppState {
	out := s
	out.Tasks = CloneTasks(s.Tasks)
	return out
}

func CloneTasks(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// Document is the raw persisted shape. Top-level sections are pointers so a
// missing section in an older file is distinguishable from a zero value;
// rehydration fills the gaps.
type Document struct {
	Score       *int         `json:"score,omitempty"`
	Tasks       []Task       `json:"tasks,omitempty"`
	Stats       *Stats       `json:"stats,omitempty"`
	Meta        *DocMeta     `json:"meta,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

type DocMeta struct {
	LastSavedAt *time.Time `json:"lastSavedAt,omitempty"`
	AppVersion  string     `json:"appVersion,omitempty"`
}
