package timeline

import (
	"testing"

	"github.com/jonathan/resume-timeline/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_SortsBothSections(t *testing.T) {
	doc := &types.ResumeDocument{
		Employment: []types.EmploymentRecord{
			{Title: "Old", Company: "A", Start: "2015-01", End: "2016-01"},
			{Title: "Current", Company: "B", Start: "2022-04"},
		},
		Education: []types.EducationRecord{
			{Degree: "BSc", Institution: "Uni", Start: "2010-09", End: "2013-07"},
			{Degree: "MSc", Institution: "Uni", Start: "2013-10", End: "2015-09", Focus: "ML"},
		},
	}

	view := Build(doc)

	assert.Equal(t, []string{"Current", "Old"}, titles(view.Employment))
	assert.Equal(t, []string{"MSc", "BSc"}, titles(view.Education))
	assert.Equal(t, "ML", view.Education[0].Details)
}

func TestBuild_DoesNotMutateDocument(t *testing.T) {
	doc := &types.ResumeDocument{
		Employment: []types.EmploymentRecord{
			{Title: "Old", Start: "2015-01", End: "2016-01"},
			{Title: "New", Start: "2022-04"},
		},
	}

	_ = Build(doc)
	assert.Equal(t, "Old", doc.Employment[0].Title)
	assert.Equal(t, "New", doc.Employment[1].Title)
}

func TestBuild_EmptySections(t *testing.T) {
	view := Build(&types.ResumeDocument{})
	assert.NotNil(t, view.Employment)
	assert.NotNil(t, view.Education)
	assert.Empty(t, view.Employment)
	assert.Empty(t, view.Education)

	nilView := Build(nil)
	assert.Empty(t, nilView.Employment)
	assert.Empty(t, nilView.Education)
}

func TestView_Section(t *testing.T) {
	view := Build(&types.ResumeDocument{
		Employment: []types.EmploymentRecord{{Title: "Job", Start: "2020-01"}},
		Education:  []types.EducationRecord{{Degree: "Degree", Start: "2010-01"}},
	})

	emp, err := view.Section(SectionEmployment)
	require.NoError(t, err)
	assert.Equal(t, []string{"Job"}, titles(emp))

	edu, err := view.Section(SectionEducation)
	require.NoError(t, err)
	assert.Equal(t, []string{"Degree"}, titles(edu))

	_, err = view.Section("hobbies")
	assert.ErrorIs(t, err, ErrUnknownSection)
	assert.Contains(t, err.Error(), "hobbies")
}
