package timeline

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-timeline/internal/types"
)

// PresentLabel is shown in place of a missing end date.
const PresentLabel = "Present"

// rangeSeparator is an en dash surrounded by spaces.
const rangeSeparator = " – "

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FormatDateRange renders "Mar 2020 – Present" style ranges.
// Formatting never fails: an unparseable start yields the raw start value,
// an unparseable end is shown raw on the right-hand side.
func FormatDateRange(start, end string) string {
	startLabel, ok := formatMonth(start)
	if !ok {
		return start
	}
	endLabel := PresentLabel
	if end != "" {
		endLabel = FormatMonth(end)
	}
	return startLabel + rangeSeparator + endLabel
}

// FormatMonth renders a YYYY-MM value as "Mon YYYY", or returns it unchanged
// when it cannot be parsed.
func FormatMonth(value string) string {
	label, ok := formatMonth(value)
	if !ok {
		return value
	}
	return label
}

func formatMonth(value string) (string, bool) {
	year, month, ok := ParseYearMonth(value)
	if !ok {
		return "", false
	}
	return monthNames[month-1] + " " + year, true
}

// ParseYearMonth splits a YYYY-MM value. The year must be four digits and the
// month a number between 1 and 12.
func ParseYearMonth(value string) (year string, month int, ok bool) {
	yearPart, monthPart, found := strings.Cut(strings.TrimSpace(value), "-")
	if !found || len(yearPart) != 4 || monthPart == "" || len(monthPart) > 2 {
		return "", 0, false
	}
	if !isDigits(yearPart) || !isDigits(monthPart) {
		return "", 0, false
	}
	m, err := strconv.Atoi(monthPart)
	if err != nil || m < 1 || m > 12 {
		return "", 0, false
	}
	return yearPart, m, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatCourse renders "Provider · Mon YYYY", or just the provider when the
// course has no date.
func FormatCourse(course types.Course) string {
	if course.Date == "" {
		return course.Provider
	}
	if course.Provider == "" {
		return FormatMonth(course.Date)
	}
	return course.Provider + " · " + FormatMonth(course.Date)
}

// CourseExpiry renders the expiry date of a course, or "" when it has none.
func CourseExpiry(course types.Course) string {
	if course.ExpiryDate == "" {
		return ""
	}
	return FormatMonth(course.ExpiryDate)
}
