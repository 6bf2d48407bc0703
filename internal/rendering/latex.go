package rendering

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/resume-timeline/internal/timeline"
	"github.com/jonathan/resume-timeline/internal/types"
)

//go:embed templates/resume.tex.tmpl
var defaultLaTeXTemplate string

// TemplateData represents the data structure passed to the LaTeX template.
// All strings are already escaped.
type TemplateData struct {
	Name       string
	Headline   string
	Email      string
	Phone      string
	Location   string
	Links      []LinkSection
	Profile    string
	Employment []EntrySection
	Education  []EntrySection
	Skills     []string
	Languages  []string
	Courses    []string
}

// LinkSection is a labeled link. URL is escaped with EscapeLaTeXURL.
type LinkSection struct {
	Label string
	URL   string
}

// EntrySection is one timeline entry
type EntrySection struct {
	Title      string
	Subtitle   string
	DateRange  string
	Details    string
	Highlights []HighlightSection
}

// HighlightSection is a highlight with its nested items
type HighlightSection struct {
	Text string
	Sub  []string
}

// RenderLaTeX renders the resume as LaTeX source. An empty templatePath uses
// the built-in template. When view is nil it is built from doc.
func RenderLaTeX(doc *types.ResumeDocument, view *timeline.View, templatePath string) (string, error) {
	if doc == nil {
		return "", &RenderError{Format: FormatLaTeX, Message: "document is nil"}
	}

	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}

	if view == nil {
		view = timeline.Build(doc)
	}
	data := buildTemplateData(doc, view)

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseTemplate reads and parses a LaTeX template file, or the built-in one
// when templatePath is empty. Templates use [[ ]] delimiters so LaTeX braces
// stay readable.
func parseTemplate(templatePath string) (*template.Template, error) {
	content := defaultLaTeXTemplate
	if templatePath != "" {
		raw, err := os.ReadFile(templatePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{
					Message: fmt.Sprintf("template file not found: %s", templatePath),
					Cause:   err,
				}
			}
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", templatePath),
				Cause:   err,
			}
		}
		content = string(raw)
	}

	tmpl, err := template.New("resume").Delims("[[", "]]").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}

// buildTemplateData escapes every displayed field of doc and view
func buildTemplateData(doc *types.ResumeDocument, view *timeline.View) *TemplateData {
	data := &TemplateData{
		Name:       EscapeLaTeX(doc.Basics.Name),
		Headline:   EscapeLaTeX(doc.Basics.Headline),
		Email:      EscapeLaTeX(doc.Basics.Email),
		Phone:      EscapeLaTeX(doc.Basics.Phone),
		Location:   EscapeLaTeX(doc.Basics.Location),
		Profile:    EscapeLaTeX(doc.Profile),
		Employment: entrySections(view.Employment),
		Education:  entrySections(view.Education),
	}

	for _, link := range doc.Basics.Links {
		data.Links = append(data.Links, LinkSection{Label: EscapeLaTeX(link.Label), URL: EscapeLaTeXURL(link.URL)})
	}
	for _, skill := range doc.Skills {
		line := EscapeLaTeX(skill.Name)
		if skill.Subline != "" {
			line += " (" + EscapeLaTeX(skill.Subline) + ")"
		}
		data.Skills = append(data.Skills, line)
	}
	for _, lang := range doc.Languages {
		line := EscapeLaTeX(lang.Name)
		if level := types.ClampLevel(lang.Level); level > 0 {
			line += fmt.Sprintf(" (%d/%d)", level, types.MaxLevel)
		}
		data.Languages = append(data.Languages, line)
	}
	for _, course := range doc.Courses {
		line := EscapeLaTeX(course.Name)
		if detail := timeline.FormatCourse(course); detail != "" {
			line += ", " + EscapeLaTeX(detail)
		}
		data.Courses = append(data.Courses, line)
	}

	return data
}

func entrySections(entries []types.TimelineEntry) []EntrySection {
	sections := make([]EntrySection, 0, len(entries))
	for _, e := range entries {
		section := EntrySection{
			Title:     EscapeLaTeX(e.Title),
			Subtitle:  EscapeLaTeX(e.Subtitle),
			DateRange: EscapeLaTeX(e.DateRange),
			Details:   EscapeLaTeX(e.Details),
		}
		for _, h := range e.Highlights {
			hs := HighlightSection{Text: EscapeLaTeX(h.Text)}
			for _, sub := range h.SubHighlights {
				hs.Sub = append(hs.Sub, EscapeLaTeX(sub))
			}
			section.Highlights = append(section.Highlights, hs)
		}
		sections = append(sections, section)
	}
	return sections
}
