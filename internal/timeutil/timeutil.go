// Package timeutil converts between second counts and the human-facing
// breakdowns the countdown UI renders.
package timeutil

import "fmt"

// DisplayPlaceholder is shown when no duration is known.
const DisplayPlaceholder = "--:--"

// ClockParts is a minutes/seconds breakdown of a duration.
type ClockParts struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// HourParts is an hours/minutes breakdown of a duration.
type HourParts struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// SecondsToDisplay renders a countdown as zero-padded MM:SS. Minutes are
// unbounded. A nil input yields the placeholder.
func SecondsToDisplay(seconds *int) string {
	if seconds == nil {
		return DisplayPlaceholder
	}
	total := max(0, *seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func SecondsToClock(seconds *int) ClockParts {
	if seconds == nil {
		return ClockParts{}
	}
	total := max(0, *seconds)
	return ClockParts{Minutes: total / 60, Seconds: total % 60}
}

func SecondsToHourParts(seconds *int) HourParts {
	if seconds == nil {
		return HourParts{}
	}
	total := max(0, *seconds)
	return HourParts{Hours: total / 3600, Minutes: (total % 3600) / 60}
}

// PartsToSeconds is the inverse of SecondsToHourParts. Negative components
// count as zero and the result is never negative.
func PartsToSeconds(hours, minutes int) int {
	return max(0, hours)*3600 + max(0, minutes)*60
}
