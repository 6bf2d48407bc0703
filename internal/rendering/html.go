package rendering

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"
	"strings"

	"github.com/jonathan/resume-timeline/internal/timeline"
	"github.com/jonathan/resume-timeline/internal/types"
)

//go:embed templates/page.html.tmpl
var pageTemplateSource string

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"stars":  RenderStars,
	"course": timeline.FormatCourse,
	"expiry": timeline.CourseExpiry,
}).Parse(pageTemplateSource))

// PageData is the value passed to the HTML page template.
type PageData struct {
	Basics     types.Basics
	Profile    string
	Skills     []types.Skill
	Languages  []types.Language
	Employment []types.TimelineEntry
	Education  []types.TimelineEntry
	Courses    []types.Course
}

// RenderHTML writes the resume page. When view is nil it is built from doc.
// The first entry of each timeline is rendered expanded.
func RenderHTML(w io.Writer, doc *types.ResumeDocument, view *timeline.View) error {
	if doc == nil {
		return &RenderError{Format: FormatHTML, Message: "document is nil"}
	}
	if view == nil {
		view = timeline.Build(doc)
	}

	data := PageData{
		Basics:     doc.Basics,
		Profile:    doc.Profile,
		Skills:     doc.Skills,
		Languages:  doc.Languages,
		Employment: view.Employment,
		Education:  view.Education,
		Courses:    doc.Courses,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return &TemplateError{Message: "failed to execute page template", Cause: err}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &RenderError{Format: FormatHTML, Message: "failed to write page", Cause: err}
	}
	return nil
}

// RenderStars draws a level as filled and empty stars out of types.MaxLevel.
// Levels go through types.ClampLevel first; zero yields an empty string.
func RenderStars(level int) string {
	level = types.ClampLevel(level)
	if level == 0 {
		return ""
	}
	return strings.Repeat("★", level) + strings.Repeat("☆", types.MaxLevel-level)
}
