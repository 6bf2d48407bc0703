//nolint:revive // types is a standard Go package name pattern
package types

// OngoingSentinel is the sort key used for records without an end date.
// It compares greater than every real YYYY-MM value.
const OngoingSentinel = "9999-99"

// TimelineEntry is a display-ready record derived from an employment or
// education record. SortStart and SortEnd are ordering keys only.
type TimelineEntry struct {
	Title      string      `json:"title"`
	Subtitle   string      `json:"subtitle"`
	DateRange  string      `json:"dateRange"`
	Details    string      `json:"details,omitempty"`
	Highlights []Highlight `json:"highlights,omitempty"`
	LogoURL    string      `json:"logoUrl,omitempty"`
	SortStart  string      `json:"sortStart"`
	SortEnd    string      `json:"sortEnd"`
}

// Ongoing reports whether the entry has no end date.
func (e TimelineEntry) Ongoing() bool {
	return e.SortEnd == OngoingSentinel
}
