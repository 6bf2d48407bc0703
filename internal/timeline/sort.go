package timeline

import (
	"sort"

	"github.com/jonathan/resume-timeline/internal/types"
)

// Less reports whether a belongs before b on the timeline: later start
// first, then later end (ongoing counts as latest). YYYY-MM keys are fixed
// width, so string comparison is chronological.
func Less(a, b types.TimelineEntry) bool {
	if a.SortStart != b.SortStart {
		return a.SortStart > b.SortStart
	}
	return a.SortEnd > b.SortEnd
}

// Sort returns a new slice ordered for display. Entries with identical keys
// keep their input order. The input is not modified.
func Sort(entries []types.TimelineEntry) []types.TimelineEntry {
	sorted := make([]types.TimelineEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j])
	})
	return sorted
}

// IsSorted reports whether entries are already in display order.
func IsSorted(entries []types.TimelineEntry) bool {
	for i := 1; i < len(entries); i++ {
		if Less(entries[i], entries[i-1]) {
			return false
		}
	}
	return true
}
