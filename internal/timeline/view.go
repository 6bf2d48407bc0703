package timeline

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-timeline/internal/types"
)

// Section names accepted by View.Section.
const (
	SectionEmployment = "employment"
	SectionEducation  = "education"
)

// ErrUnknownSection is returned for section names other than employment and education.
var ErrUnknownSection = errors.New("unknown timeline section")

// View holds both sorted timelines derived from one document.
type View struct {
	Employment []types.TimelineEntry `json:"employment"`
	Education  []types.TimelineEntry `json:"education"`
}

// Build normalizes and sorts both sections of doc. A nil document yields
// empty timelines.
func Build(doc *types.ResumeDocument) *View {
	if doc == nil {
		return &View{
			Employment: []types.TimelineEntry{},
			Education:  []types.TimelineEntry{},
		}
	}
	return &View{
		Employment: Sort(NormalizeEmployment(doc.Employment)),
		Education:  Sort(NormalizeEducation(doc.Education)),
	}
}

// Section returns the named timeline.
func (v *View) Section(name string) ([]types.TimelineEntry, error) {
	switch name {
	case SectionEmployment:
		return v.Employment, nil
	case SectionEducation:
		return v.Education, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
}
