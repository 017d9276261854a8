package telemetry

import (
	"taskbound/internal/model"
	"taskbound/internal/timeutil"
)

// Report summarizes completion activity. Task history is already the
// persisted event log, so the report is a pure fold over it.
type Report struct {
	TotalCompleted   int            `json:"total_completed"`
	TodayCompleted   int            `json:"today_completed"`
	ManualCompleted  int            `json:"manual_completed"`
	AutoCompleted    int            `json:"auto_completed"`
	TimeAddedSeconds int            `json:"time_added_seconds"`
	TimeAddedDisplay string         `json:"time_added_display"`
	CompletionsByDay map[string]int `json:"completions_by_day"`
}

// BuildReport computes activity stats from the current state.
func BuildReport(st model.AppState) Report {
	report := Report{
		TotalCompleted:   st.Stats.TotalCompleted,
		TodayCompleted:   st.Stats.TodayCompleted,
		CompletionsByDay: make(map[string]int),
	}

	for _, t := range st.Tasks {
		for _, entry := range t.History {
			switch entry.Kind {
			case model.HistoryManualComplete:
				report.ManualCompleted++
				report.CompletionsByDay[model.DateKey(entry.At)]++
			case model.HistoryAutoComplete:
				report.AutoCompleted++
				report.CompletionsByDay[model.DateKey(entry.At)]++
			case model.HistoryAddTime:
				report.TimeAddedSeconds += entry.AmountSeconds
			}
		}
	}

	report.TimeAddedDisplay = timeutil.SecondsToDisplay(&report.TimeAddedSeconds)
	return report
}
