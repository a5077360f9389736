package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findEntity(t *testing.T, entities []Entity, text string, typ EntityType) Entity {
	t.Helper()

	for _, e := range entities {
		if e.Key() == (EntityKey{Text: text, Type: typ}) {
			return e
		}
	}
	t.Fatalf("entity %q (%s) not found in %v", text, typ, entities)
	return Entity{}
}

func keys(entities []Entity) []string {
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.Key().Text)
	}
	return out
}

func TestExtractEvidenceStrength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		section SectionType
		entity  string
		typ     EntityType
		want    float64
	}{
		{
			name:    "listed skill without context",
			text:    "Python, Docker, Kubernetes",
			section: SectionSkills,
			entity:  "python",
			typ:     EntityHardSkill,
			want:    1.0,
		},
		{
			name:    "experience with metric and action verb",
			text:    "Reduced cloud costs by 30% using Terraform",
			section: SectionExperience,
			entity:  "terraform",
			typ:     EntityHardSkill,
			want:    1.5,
		},
		{
			name:    "summary bonus only",
			text:    "Engineer who enjoys Kubernetes",
			section: SectionSummary,
			entity:  "kubernetes",
			typ:     EntityHardSkill,
			want:    1.1,
		},
		{
			name:    "certification is fixed",
			text:    "AWS Certified Solutions Architect",
			section: SectionCertifications,
			entity:  "aws certified",
			typ:     EntityCertification,
			want:    1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := findEntity(t, Extract(tt.text, tt.section), tt.entity, tt.typ)
			assert.InDelta(t, tt.want, e.EvidenceStrength, 1e-9)
			assert.Equal(t, tt.section, e.Section)
			assert.LessOrEqual(t, e.EvidenceStrength, maxStrength)
		})
	}
}

func TestExtractKeepsFirstOccurrence(t *testing.T) {
	t.Parallel()

	entities := Extract("Python python PYTHON", "")

	var count int
	for _, e := range entities {
		if e.Key() == (EntityKey{Text: "python", Type: EntityHardSkill}) {
			count++
			assert.Equal(t, "Python", e.Text)
		}
	}
	assert.Equal(t, 1, count)
}

func TestYearsExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want *int
	}{
		{text: "5-7 years of experience", want: intPtr(7)},
		{text: "minimum 3 years in a similar role", want: intPtr(3)},
		{text: "over 10 years in industry", want: intPtr(10)},
		{text: "2 years required, ideally 4 years of experience", want: intPtr(4)},
		{text: "Worked with Python for 6 years.", want: intPtr(6)},
		{text: "no numbers here", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, YearsExperience(tt.text))
		})
	}
}

func TestJobTitles(t *testing.T) {
	t.Parallel()

	titles := JobTitles("Senior Software Engineer at Acme. Previously a software engineer.")

	require.NotEmpty(t, titles)
	assert.Equal(t, "Senior Software Engineer", titles[0])

	seen := make(map[string]bool)
	for _, title := range titles {
		key := strings.ToLower(title)
		assert.False(t, seen[key], "duplicate title %q", title)
		seen[key] = true
	}
}

func TestParseCVDedupesAcrossSections(t *testing.T) {
	t.Parallel()

	cv := ParseCV("SKILLS\nPython\nEXPERIENCE\nBuilt APIs in Python serving 2000 users")

	var pythons []Entity
	for _, e := range cv.Entities {
		if e.Key() == (EntityKey{Text: "python", Type: EntityHardSkill}) {
			pythons = append(pythons, e)
		}
	}
	require.Len(t, pythons, 1)
	assert.Equal(t, SectionSkills, pythons[0].Section)

	require.Len(t, cv.Sections, 2)
	inExperience := findEntity(t, cv.Sections[1].Entities, "python", EntityHardSkill)
	assert.InDelta(t, 1.5, inExperience.EvidenceStrength, 1e-9)
}

func TestParseCVIsDeterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ParseCV(sampleCV), ParseCV(sampleCV))
}

func TestParseCVWithoutHeaders(t *testing.T) {
	t.Parallel()

	cv := ParseCV("I have 7 years of experience building Python services on AWS with Docker.")

	require.Len(t, cv.Sections, 1)
	assert.Equal(t, SectionUnknown, cv.Sections[0].Type)
	require.NotNil(t, cv.YearsExperience)
	assert.Equal(t, 7, *cv.YearsExperience)
	assert.Subset(t, cv.HardSkills(), []string{"python", "aws", "docker"})
}

func TestParseJDClassifiesUnlabelledSentences(t *testing.T) {
	t.Parallel()

	jd := ParseJD("5+ years experience with Python and AWS required. Nice to have: Docker.")

	require.NotNil(t, jd.YearsRequired)
	assert.Equal(t, 5, *jd.YearsRequired)
	assert.Subset(t, keys(jd.RequiredEntities), []string{"python", "aws"})
	assert.Equal(t, []string{"docker"}, keys(jd.PreferredEntities))
	assert.NotContains(t, keys(jd.RequiredEntities), "docker")
}

func TestParseJDNeededCue(t *testing.T) {
	t.Parallel()

	jd := ParseJD("Hands-on AWS work is needed for this team. Python would be a plus.")

	require.Len(t, jd.Sections, 1)
	assert.Contains(t, keys(jd.RequiredEntities), "aws")
	assert.NotContains(t, keys(jd.RequiredEntities), "python")
	assert.Contains(t, keys(jd.PreferredEntities), "python")
}

func TestParseJDLabelledSections(t *testing.T) {
	t.Parallel()

	jd := ParseJD("About the role:\nWe build payment rails.\nRequirements:\n- Python\n- AWS\nNice to have:\n- Docker\nBenefits\nHealth insurance")

	assert.Equal(t, []string{"python", "aws"}, keys(jd.RequiredEntities))
	assert.Equal(t, []string{"docker"}, keys(jd.PreferredEntities))
	assert.Subset(t, keys(jd.Entities), []string{"python", "aws", "docker"})
}

func TestParseCVScenarioYears(t *testing.T) {
	t.Parallel()

	cv := ParseCV("Worked with Python for 6 years. AWS certified.")

	require.NotNil(t, cv.YearsExperience)
	assert.Equal(t, 6, *cv.YearsExperience)
	findEntity(t, cv.Entities, "aws certified", EntityCertification)
	findEntity(t, cv.Entities, "python", EntityHardSkill)
}

func TestSectionTypeTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Experience", SectionExperience.Title())
	assert.Equal(t, "", SectionType("").Title())
}

func intPtr(v int) *int { return &v }
