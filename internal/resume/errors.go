// Package resume loads the resume document and caches it for the lifetime of the process.
package resume

import "fmt"

// LoadError records why a source could not produce a document.
// The Store keeps serving the placeholder document when this happens.
type LoadError struct {
	Source string
	Cause  error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load resume from %s: %v", e.Source, e.Cause)
	}
	return fmt.Sprintf("failed to load resume from %s", e.Source)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Warning describes one default substituted while parsing a document.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}
