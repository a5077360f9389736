package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCV = `Jane Doe
PROFESSIONAL SUMMARY
Backend engineer focused on distributed systems.
SKILLS
Python, Go, Kubernetes
WORK EXPERIENCE
Senior Engineer | Acme Corp
Led migration of 40 services to Kubernetes.
EDUCATION
BSc Computer Science`

func sectionTypes(sections []Section) []SectionType {
	types := make([]SectionType, 0, len(sections))
	for _, s := range sections {
		types = append(types, s.Type)
	}
	return types
}

func TestDetectSectionsCV(t *testing.T) {
	t.Parallel()

	sections := DetectSections(sampleCV, KindCV)

	require.Equal(t, []SectionType{
		SectionUnknown, SectionSummary, SectionSkills, SectionExperience, SectionEducation,
	}, sectionTypes(sections))

	lead := sections[0]
	assert.Equal(t, "Jane Doe", lead.Title)
	assert.Equal(t, 0, lead.StartLine)
	assert.Equal(t, 0, lead.EndLine)

	summary := sections[1]
	assert.Equal(t, "PROFESSIONAL SUMMARY", summary.Title)
	assert.Equal(t, "Backend engineer focused on distributed systems.", summary.Content)
	assert.Equal(t, 1, summary.StartLine)
	assert.Equal(t, 2, summary.EndLine)

	experience := sections[3]
	assert.Equal(t, 5, experience.StartLine)
	assert.Equal(t, 7, experience.EndLine)
	assert.Contains(t, experience.Content, "Senior Engineer | Acme Corp")

	assert.Equal(t, 9, sections[4].EndLine)
}

func TestDetectSectionsIgnoresUnknownHeaders(t *testing.T) {
	t.Parallel()

	text := "EXPERIENCE\nACME CORPORATION\nBuilt billing systems\nGLOBEX INC\nRan the data team"
	sections := DetectSections(text, KindCV)

	require.Len(t, sections, 1)
	assert.Equal(t, SectionExperience, sections[0].Type)
	assert.Contains(t, sections[0].Content, "ACME CORPORATION")
	assert.Contains(t, sections[0].Content, "GLOBEX INC")
	assert.Equal(t, 4, sections[0].EndLine)
}

func TestDetectSectionsWithoutHeaders(t *testing.T) {
	t.Parallel()

	text := "I have been writing Python services for a very long time."
	sections := DetectSections(text, KindCV)

	require.Len(t, sections, 1)
	assert.Equal(t, SectionUnknown, sections[0].Type)
	assert.Equal(t, text, sections[0].Content)
}

func TestDetectSectionsJD(t *testing.T) {
	t.Parallel()

	text := "About the role:\nWe build payment rails.\nRequirements:\n- Python\n- AWS\nNice to have:\n- Docker\nBenefits\nHealth insurance"
	sections := DetectSections(text, KindJD)

	assert.Equal(t, []SectionType{
		SectionOverview, SectionRequirements, SectionPreferred, SectionBenefits,
	}, sectionTypes(sections))
}

func TestDetectSectionsPanicsOnUnknownKind(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { DetectSections("text", Kind(42)) })
}

func TestIsHeaderLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{line: "", want: false},
		{line: "   ", want: false},
		{line: "WORK EXPERIENCE", want: true},
		{line: "Work Experience", want: true},
		{line: "What you will need:", want: true},
		{line: "1. Skills", want: true},
		{line: "• Projects", want: true},
		{line: "my technical skills", want: true},
		{line: "Senior Engineer At A Big Company", want: false},
		{line: "this line has far too many words to be a header", want: false},
		{line: "we like people", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsHeaderLine(tt.line))
		})
	}
}
