package engine

import "taskbound/internal/model"

// ActiveIndex returns the position of the first task in queue order whose
// status is not terminal, or -1. Queue order is authoritative; there is no
// secondary sort.
func ActiveIndex(tasks []model.Task) int {
	for i, t := range tasks {
		if !t.Status.Terminal() {
			return i
		}
	}
	return -1
}

// Realign enforces the single-active-task invariant in place: the first
// non-terminal task becomes in_progress when it has countdown time left
// (pending otherwise), and every later non-terminal task is forced back to
// pending. Runs after every structural mutation.
func Realign(tasks []model.Task) {
	seenActive := false
	for i := range tasks {
		if tasks[i].Status.Terminal() {
			continue
		}
		if !seenActive {
			seenActive = true
			if tasks[i].Remaining() > 0 {
				tasks[i].Status = model.StatusInProgress
			} else {
				tasks[i].Status = model.StatusPending
			}
			continue
		}
		tasks[i].Status = model.StatusPending
	}
}
