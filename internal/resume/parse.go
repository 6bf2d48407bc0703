package resume

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-timeline/internal/types"
)

// Placeholder basics shown when the document has no usable hero section.
const (
	PlaceholderName     = "Resume"
	PlaceholderHeadline = "Professional"
)

// Empty returns the placeholder document served when nothing could be loaded.
func Empty() *types.ResumeDocument {
	return &types.ResumeDocument{
		Basics: types.Basics{
			Name:     PlaceholderName,
			Headline: PlaceholderHeadline,
		},
		Skills:     []types.Skill{},
		Languages:  []types.Language{},
		Employment: []types.EmploymentRecord{},
		Education:  []types.EducationRecord{},
		Courses:    []types.Course{},
	}
}

// Parse decodes data into a fully populated document. It never fails:
// every field that is missing or has the wrong shape is replaced by a default
// and reported as a Warning. Missing list fields become empty silently.
func Parse(data []byte) (*types.ResumeDocument, []Warning) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		msg := "document is not a JSON object"
		if err != nil {
			msg = fmt.Sprintf("%s: %v", msg, err)
		}
		return Empty(), []Warning{{Field: "document", Message: msg}}
	}

	doc := Empty()
	var warnings []Warning
	warn := func(field, format string, args ...any) {
		warnings = append(warnings, Warning{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if raw, ok := fields["basics"]; !ok || isNull(raw) {
		warn("basics", "missing, using placeholder")
	} else {
		var basics types.Basics
		if err := json.Unmarshal(raw, &basics); err != nil {
			warn("basics", "invalid, using placeholder: %v", err)
		} else if err := basics.Validate(); err != nil {
			warn("basics", "invalid, using placeholder: %v", err)
		} else {
			doc.Basics = basics
		}
	}

	if raw, ok := fields["profile"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &doc.Profile); err != nil {
			warn("profile", "not a string, using empty profile")
		}
	}

	decodeList(fields, "skills", &doc.Skills, warn, func(s *types.Skill, key string) {
		s.Level = clampLevel(s.Level, key, warn)
	})
	decodeList(fields, "languages", &doc.Languages, warn, func(l *types.Language, key string) {
		l.Level = clampLevel(l.Level, key, warn)
	})
	decodeList(fields, "employment", &doc.Employment, warn, func(rec *types.EmploymentRecord, key string) {
		rec.Highlights = dropEmptyHighlights(rec.Highlights, key, warn)
	})
	decodeList(fields, "education", &doc.Education, warn, nil)
	decodeList(fields, "courses", &doc.Courses, warn, nil)

	return doc, warnings
}

type validatable interface {
	Validate() error
}

// decodeList decodes each element of the named array on its own. Elements
// that are null, malformed or fail validation are dropped with a warning
// keyed by their source index; the rest are kept in order and passed to clean
// when it is non-nil.
func decodeList[T any](fields map[string]json.RawMessage, field string, dst *[]T, warn func(string, string, ...any), clean func(*T, string)) {
	raw, ok := fields[field]
	if !ok || isNull(raw) {
		return
	}
	var elems []json.RawMessage
	if !isArray(raw) || json.Unmarshal(raw, &elems) != nil {
		warn(field, "not a list, using empty list")
		return
	}

	items := make([]T, 0, len(elems))
	for i, elem := range elems {
		key := fmt.Sprintf("%s[%d]", field, i)
		if isNull(elem) {
			warn(key, "dropped: null entry")
			continue
		}
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			warn(key, "dropped: %v", err)
			continue
		}
		if v, ok := any(&item).(validatable); ok {
			if err := v.Validate(); err != nil {
				warn(key, "dropped: %v", err)
				continue
			}
		}
		if clean != nil {
			clean(&item, key)
		}
		items = append(items, item)
	}
	*dst = items
}

func clampLevel(level int, field string, warn func(string, string, ...any)) int {
	clamped := types.ClampLevel(level)
	if clamped != level {
		warn(field, "level %d clamped to %d", level, clamped)
	}
	return clamped
}

func dropEmptyHighlights(highlights []types.Highlight, field string, warn func(string, string, ...any)) []types.Highlight {
	if len(highlights) == 0 {
		return highlights
	}
	kept := make([]types.Highlight, 0, len(highlights))
	for j, h := range highlights {
		if h.IsZero() {
			warn(fmt.Sprintf("%s.highlights[%d]", field, j), "dropped: empty highlight")
			continue
		}
		kept = append(kept, h)
	}
	return kept
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
