package resume

import (
	"testing"

	"github.com/jonathan/resume-timeline/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
	"basics": {
		"name": "Jane Doe",
		"headline": "Platform Engineer",
		"email": "jane@example.com",
		"links": [{"label": "GitHub", "url": "https://github.com/jane"}]
	},
	"profile": "Builds reliable systems.",
	"skills": ["Go", {"name": "Kubernetes", "subline": "CKA", "level": 4}],
	"languages": [{"name": "English", "level": 5}],
	"employment": [
		{"title": "Engineer", "company": "Acme", "start": "2021-01",
		 "highlights": ["Shipped things", {"mainHighlight": "Led migration", "subHighlights": ["Zero downtime"]}]}
	],
	"education": [{"degree": "BSc", "institution": "Uni", "start": "2014-09", "end": "2018-06", "focus": "Systems"}],
	"courses": [{"name": "CKA", "provider": "CNCF", "date": "2022-03"}]
}`

func TestParse_ValidDocument(t *testing.T) {
	doc, warnings := Parse([]byte(sampleDocument))

	assert.Empty(t, warnings)
	assert.Equal(t, "Jane Doe", doc.Basics.Name)
	assert.Equal(t, "Builds reliable systems.", doc.Profile)
	require.Len(t, doc.Skills, 2)
	assert.Equal(t, types.Skill{Name: "Go"}, doc.Skills[0])
	assert.Equal(t, 4, doc.Skills[1].Level)
	require.Len(t, doc.Employment, 1)
	require.Len(t, doc.Employment[0].Highlights, 2)
	assert.True(t, doc.Employment[0].Highlights[1].IsStructured())
	assert.Equal(t, "Systems", doc.Education[0].Focus)
	assert.Len(t, doc.Courses, 1)
}

func TestParse_InvalidJSONGivesPlaceholder(t *testing.T) {
	inputs := map[string]string{
		"garbage": `{not json`,
		"array":   `[1, 2, 3]`,
		"string":  `"resume"`,
		"null":    `null`,
		"empty":   ``,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			doc, warnings := Parse([]byte(input))
			assert.Equal(t, Empty(), doc)
			require.Len(t, warnings, 1)
			assert.Equal(t, "document", warnings[0].Field)
		})
	}
}

func TestParse_BasicsFallback(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing", `{"profile": "x"}`},
		{"missing name", `{"basics": {"headline": "Engineer"}}`},
		{"missing headline", `{"basics": {"name": "Jane"}}`},
		{"wrong type", `{"basics": "Jane"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, warnings := Parse([]byte(tt.input))
			assert.Equal(t, PlaceholderName, doc.Basics.Name)
			assert.Equal(t, PlaceholderHeadline, doc.Basics.Headline)
			require.NotEmpty(t, warnings)
			assert.Equal(t, "basics", warnings[0].Field)
		})
	}
}

func TestParse_ListFallbacks(t *testing.T) {
	doc, warnings := Parse([]byte(`{
		"basics": {"name": "Jane", "headline": "Engineer"},
		"skills": "x",
		"employment": [{"title": 5}],
		"education": null
	}`))

	assert.NotNil(t, doc.Skills)
	assert.Empty(t, doc.Skills)
	assert.NotNil(t, doc.Employment)
	assert.Empty(t, doc.Employment)
	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Languages)
	assert.NotNil(t, doc.Courses)

	fields := make([]string, 0, len(warnings))
	for _, w := range warnings {
		fields = append(fields, w.Field)
	}
	assert.ElementsMatch(t, []string{"skills", "employment[0]"}, fields)
}

func TestParse_KeepsValidRecordsNextToInvalidOnes(t *testing.T) {
	doc, warnings := Parse([]byte(`{
		"basics": {"name": "Jane", "headline": "Engineer"},
		"employment": [
			{"title": "Good1", "company": "A", "start": "2019-01"},
			{"title": "Good2", "company": "B", "start": "2020-01", "highlights": ["ok", 42]},
			null,
			{"title": "Good3", "company": "C", "start": "2021-01", "highlights": ["kept", null]}
		],
		"education": [{"degree": 1}, {"degree": "BSc", "institution": "Uni", "start": "2014-09"}]
	}`))

	require.Len(t, doc.Employment, 2)
	assert.Equal(t, "Good1", doc.Employment[0].Title)
	assert.Equal(t, "Good3", doc.Employment[1].Title)
	assert.Equal(t, []types.Highlight{types.PlainHighlight("kept")}, doc.Employment[1].Highlights)
	require.Len(t, doc.Education, 1)
	assert.Equal(t, "BSc", doc.Education[0].Degree)

	fields := make([]string, 0, len(warnings))
	for _, w := range warnings {
		fields = append(fields, w.Field)
	}
	assert.Equal(t, []string{
		"employment[1]",
		"employment[2]",
		"employment[3].highlights[1]",
		"education[0]",
	}, fields)
	assert.Contains(t, warnings[0].Message, "expected string or object, got 42")
}

func TestParse_DropsUnnamedSkillsAndLanguages(t *testing.T) {
	doc, warnings := Parse([]byte(`{
		"basics": {"name": "Jane", "headline": "Engineer"},
		"skills": [{"subline": "no name"}, {"name": "SQL"}],
		"languages": [{"name": ""}, {"name": "German", "level": 3}]
	}`))

	assert.Equal(t, []types.Skill{{Name: "SQL"}}, doc.Skills)
	assert.Equal(t, []types.Language{{Name: "German", Level: 3}}, doc.Languages)
	require.Len(t, warnings, 2)
	assert.Equal(t, "skills[0]", warnings[0].Field)
	assert.Equal(t, "languages[0]", warnings[1].Field)
}

func TestParse_ClampsLevels(t *testing.T) {
	doc, warnings := Parse([]byte(`{
		"basics": {"name": "Jane", "headline": "Engineer"},
		"skills": [{"name": "Go", "level": 9}, {"name": "SQL", "level": 4}],
		"languages": [{"name": "German", "level": -2}]
	}`))

	assert.Equal(t, []types.Skill{{Name: "Go", Level: 5}, {Name: "SQL", Level: 4}}, doc.Skills)
	assert.Equal(t, []types.Language{{Name: "German", Level: 0}}, doc.Languages)
	require.Len(t, warnings, 2)
	assert.Equal(t, "skills[0]: level 9 clamped to 5", warnings[0].String())
	assert.Equal(t, "languages[0]: level -2 clamped to 0", warnings[1].String())
}

func TestParse_ProfileWrongType(t *testing.T) {
	doc, warnings := Parse([]byte(`{"basics": {"name": "Jane", "headline": "Engineer"}, "profile": 42}`))
	assert.Equal(t, "", doc.Profile)
	require.Len(t, warnings, 1)
	assert.Equal(t, "profile: not a string, using empty profile", warnings[0].String())
}

func TestEmpty_ReturnsFreshValue(t *testing.T) {
	a := Empty()
	a.Basics.Name = "changed"
	assert.Equal(t, PlaceholderName, Empty().Basics.Name)
}
