package server

import (
	"strconv"
	"strings"
)

// ImportedTask is one line of a plain-text task list.
type ImportedTask struct {
	Title   string
	Seconds *int
}

// ParseTaskList parses uploaded text: one task per line, with an optional
// trailing "~MM:SS" (or "~SS") duration marker. Blank lines are skipped and
// lines with an unparseable marker keep it as part of the title.
func ParseTaskList(text string) []ImportedTask {
	var out []ImportedTask
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		title := line
		var seconds *int
		if i := strings.LastIndex(line, "~"); i >= 0 {
			if secs, ok := parseDurationMarker(line[i+1:]); ok {
				trimmed := strings.TrimSpace(line[:i])
				if trimmed != "" {
					title = trimmed
					seconds = &secs
				}
			}
		}
		out = append(out, ImportedTask{Title: title, Seconds: seconds})
	}
	return out
}

func parseDurationMarker(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		secs, err := strconv.Atoi(parts[0])
		if err != nil || secs < 0 {
			return 0, false
		}
		return secs, true
	case 2:
		mins, err1 := strconv.Atoi(parts[0])
		secs, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || mins < 0 || secs < 0 || secs > 59 {
			return 0, false
		}
		return mins*60 + secs, true
	default:
		return 0, false
	}
}
