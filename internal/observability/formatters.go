// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-timeline/internal/resume"
	"github.com/jonathan/resume-timeline/internal/timeline"
	"github.com/jonathan/resume-timeline/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", inner, truncate(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", inner, truncate(line, inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, ending in "..." when cut.
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// PrintDocumentSummary outputs the hero section and section counts of a document.
func (p *Printer) PrintDocumentSummary(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", doc.Basics.Name))
	sb.WriteString(fmt.Sprintf("Headline:  %s\n", doc.Basics.Headline))
	if doc.Basics.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", doc.Basics.Location))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Employment: %d   Education: %d\n", len(doc.Employment), len(doc.Education)))
	sb.WriteString(fmt.Sprintf("Skills:     %d   Languages: %d\n", len(doc.Skills), len(doc.Languages)))
	sb.WriteString(fmt.Sprintf("Courses:    %d", len(doc.Courses)))

	p.printBox("RESUME DOCUMENT", sb.String())
}

// PrintTimeline outputs the first entries of one sorted timeline.
func (p *Printer) PrintTimeline(section string, entries []types.TimelineEntry) {
	title := strings.ToUpper(section) + " TIMELINE"
	if len(entries) == 0 {
		p.printBox(title, "No entries")
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		marker := " "
		if e.Ongoing() {
			marker = "●"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, e.DateRange))
		sb.WriteString(fmt.Sprintf("  %s, %s\n", e.Title, e.Subtitle))
		if n := len(e.Highlights); n > 0 {
			sb.WriteString(fmt.Sprintf("  %d highlight(s)\n", n))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(entries)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintView outputs both timelines of a view.
func (p *Printer) PrintView(view *timeline.View) {
	if view == nil {
		return
	}
	p.PrintTimeline(timeline.SectionEmployment, view.Employment)
	p.PrintTimeline(timeline.SectionEducation, view.Education)
}

// PrintWarnings outputs the defaults substituted while parsing.
func (p *Printer) PrintWarnings(warnings []resume.Warning) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issue(s):\n\n", len(warnings)))
	for _, w := range warnings {
		sb.WriteString(fmt.Sprintf("✗ %s\n", w.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", w.Message))
	}

	p.printBox("PARSE WARNINGS", strings.TrimSuffix(sb.String(), "\n"))
}
