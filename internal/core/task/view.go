package task

import "sort"

// Filtered returns the tasks matching the given filter, newest first.
// Ordering by creation time descending is a fixed contract regardless of
// filter. The input slice is never modified.
func Filtered(tasks []Task, filter StatusFilter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		switch filter {
		case FilterActive:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

// Tally computes aggregate counters from the unfiltered collection, so the
// numbers stay stable while the user switches filter tabs.
func Tally(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		} else {
			s.Active++
		}
	}
	return s
}
