// Package timeline turns employment and education records into sorted,
// display-ready timeline entries.
package timeline

import (
	"fmt"

	"github.com/jonathan/resume-timeline/internal/types"
)

// NormalizeEmployment maps employment records to timeline entries in input order.
func NormalizeEmployment(items []types.EmploymentRecord) []types.TimelineEntry {
	entries := make([]types.TimelineEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, types.TimelineEntry{
			Title:      item.Title,
			Subtitle:   item.Company,
			DateRange:  FormatDateRange(item.Start, item.End),
			Highlights: copyHighlights(item.Highlights),
			LogoURL:    item.LogoURL,
			SortStart:  sortKey(item.Start),
			SortEnd:    sortEnd(item.End),
		})
	}
	return entries
}

// NormalizeEducation maps education records to timeline entries in input order.
// The focus text becomes the entry details.
func NormalizeEducation(items []types.EducationRecord) []types.TimelineEntry {
	entries := make([]types.TimelineEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, types.TimelineEntry{
			Title:     item.Degree,
			Subtitle:  item.Institution,
			DateRange: FormatDateRange(item.Start, item.End),
			Details:   item.Focus,
			LogoURL:   item.LogoURL,
			SortStart: sortKey(item.Start),
			SortEnd:   sortEnd(item.End),
		})
	}
	return entries
}

func sortEnd(end string) string {
	if end == "" {
		return types.OngoingSentinel
	}
	return sortKey(end)
}

// sortKey zero-pads the month of a parseable YYYY-M value so keys compare
// chronologically as strings. Other values pass through unchanged.
func sortKey(value string) string {
	year, month, ok := ParseYearMonth(value)
	if !ok {
		return value
	}
	return fmt.Sprintf("%s-%02d", year, month)
}

// copyHighlights keeps entries from aliasing the source document.
func copyHighlights(src []types.Highlight) []types.Highlight {
	if len(src) == 0 {
		return nil
	}
	out := make([]types.Highlight, len(src))
	for i, h := range src {
		out[i] = h
		if h.SubHighlights != nil {
			out[i].SubHighlights = append([]string(nil), h.SubHighlights...)
		}
	}
	return out
}
