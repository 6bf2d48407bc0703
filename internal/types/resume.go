// Package types provides type definitions for structured data used throughout the resume-timeline system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResumeDocument is the root value describing a person's career.
// Once loaded it is treated as immutable.
type ResumeDocument struct {
	Basics     Basics             `json:"basics"`
	Profile    string             `json:"profile"`
	Skills     []Skill            `json:"skills"`
	Languages  []Language         `json:"languages"`
	Employment []EmploymentRecord `json:"employment"`
	Education  []EducationRecord  `json:"education"`
	Courses    []Course           `json:"courses"`
}

// Basics holds the hero section of the resume.
type Basics struct {
	Name     string `json:"name" validate:"required"`
	Headline string `json:"headline" validate:"required"`
	Location string `json:"location,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

// Link is a labeled external reference. URL may be empty.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

// MaxLevel is the highest proficiency level of a skill or language.
const MaxLevel = 5

// ClampLevel limits a proficiency level to 0..MaxLevel. Zero means no level.
func ClampLevel(level int) int {
	return max(0, min(level, MaxLevel))
}

// Skill is a named skill with an optional subline and proficiency level.
type Skill struct {
	Name    string `json:"name" validate:"required"`
	Subline string `json:"subline,omitempty"`
	Level   int    `json:"level,omitempty"`
}

// UnmarshalJSON accepts either a bare string or an object.
func (s *Skill) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*s = Skill{Name: name}
		return nil
	}
	type plain Skill
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Skill(p)
	return nil
}

// Language is a spoken language with an optional proficiency level (1-5).
type Language struct {
	Name  string `json:"name" validate:"required"`
	Level int    `json:"level,omitempty"`
}

// EmploymentRecord is a single job. Start and End use the YYYY-MM format;
// an empty End means the job is ongoing.
type EmploymentRecord struct {
	Title      string      `json:"title"`
	Company    string      `json:"company"`
	Location   string      `json:"location,omitempty"`
	Start      string      `json:"start"`
	End        string      `json:"end,omitempty"`
	Highlights []Highlight `json:"highlights,omitempty"`
	LogoURL    string      `json:"logoUrl,omitempty"`
}

// EducationRecord is a single degree or program.
type EducationRecord struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end,omitempty"`
	Focus       string `json:"focus,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
}

// Course is a completed course or certification.
type Course struct {
	Name       string `json:"name"`
	Provider   string `json:"provider"`
	Date       string `json:"date,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	LogoURL    string `json:"logoUrl,omitempty"`
}

// HighlightKind discriminates the two highlight shapes.
type HighlightKind int

const (
	// HighlightPlain is a single line of text.
	HighlightPlain HighlightKind = iota
	// HighlightStructured is a main line with optional sub items.
	HighlightStructured
)

// Highlight is an employment highlight, either plain text or a main line
// with nested sub-highlights.
type Highlight struct {
	Kind          HighlightKind
	Text          string
	SubHighlights []string
}

// PlainHighlight builds a plain text highlight.
func PlainHighlight(text string) Highlight {
	return Highlight{Kind: HighlightPlain, Text: text}
}

// StructuredHighlight builds a highlight with sub items.
func StructuredHighlight(main string, sub ...string) Highlight {
	return Highlight{Kind: HighlightStructured, Text: main, SubHighlights: sub}
}

// IsZero reports whether the highlight has no content.
func (h Highlight) IsZero() bool {
	return h.Text == "" && len(h.SubHighlights) == 0
}

// IsStructured reports whether the highlight carries sub items.
func (h Highlight) IsStructured() bool {
	return h.Kind == HighlightStructured
}

type structuredHighlightJSON struct {
	MainHighlight string   `json:"mainHighlight"`
	SubHighlights []string `json:"subHighlights,omitempty"`
}

// UnmarshalJSON decodes a JSON string as a plain highlight and a JSON object
// as a structured highlight. null leaves h unchanged. Anything else is an error.
func (h *Highlight) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("highlight: empty value")
	}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("highlight: %w", err)
		}
		*h = PlainHighlight(text)
		return nil
	case '{':
		var s structuredHighlightJSON
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("highlight: %w", err)
		}
		*h = StructuredHighlight(s.MainHighlight, s.SubHighlights...)
		return nil
	default:
		return fmt.Errorf("highlight: expected string or object, got %s", data)
	}
}

// MarshalJSON writes the highlight back in the shape it was read from.
func (h Highlight) MarshalJSON() ([]byte, error) {
	if h.Kind == HighlightStructured {
		return json.Marshal(structuredHighlightJSON{
			MainHighlight: h.Text,
			SubHighlights: h.SubHighlights,
		})
	}
	return json.Marshal(h.Text)
}
