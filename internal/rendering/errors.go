// Package rendering renders the resume document as an HTML page, LaTeX source or PDF.
package rendering

import "fmt"

// Output formats produced by this package.
const (
	FormatHTML  = "html"
	FormatLaTeX = "latex"
	FormatPDF   = "pdf"
)

// TemplateError represents an error reading, parsing or executing a template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError is a failure producing one output format.
type RenderError struct {
	Format  string // FormatHTML, FormatLaTeX or FormatPDF
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	prefix := "render error"
	if e.Format != "" {
		prefix = fmt.Sprintf("%s render error", e.Format)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
