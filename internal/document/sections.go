package document

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxHeaderRunes = 80
	maxHeaderWords = 6
)

type sectionPatterns struct {
	section  SectionType
	patterns []*regexp.Regexp
}

// Tables are ordered: the first section whose pattern matches a header wins.
var cvSectionPatterns = []sectionPatterns{
	{SectionSummary, compile(
		`\b(professional\s+)?summary\b`,
		`\bprofile\b`,
		`\bobjective\b`,
		`\babout\s*me\b`,
		`\bpersonal\s+statement\b`,
		`\bcareer\s+summary\b`,
		`\bexecutive\s+summary\b`,
	)},
	{SectionSkills, compile(
		`\b(core\s+|technical\s+|key\s+)?skills\b`,
		`\bcompetencies\b`,
		`\bexpertise\b`,
		`\btechnical\s+proficiencies\b`,
		`\bproficiencies\b`,
		`\btechnologies\b`,
		`\btools?\s*(&|and)\s*technologies\b`,
	)},
	{SectionExperience, compile(
		`\b(work\s+|professional\s+)?experience\b`,
		`\bemployment(\s+history)?\b`,
		`\bcareer\s+history\b`,
		`\bwork\s+history\b`,
		`\bprofessional\s+background\b`,
	)},
	{SectionEducation, compile(
		`\beducation(al)?\s*(background)?\b`,
		`\bacademic\s+(background|qualifications)\b`,
		`\bdegrees?\b`,
		`\bqualifications\b`,
	)},
	{SectionCertifications, compile(
		`\bcertifications?\b`,
		`\bcredentials\b`,
		`\bprofessional\s+certifications?\b`,
		`\blicenses?\s*(&|and)?\s*certifications?\b`,
		`\baccreditations?\b`,
	)},
	{SectionProjects, compile(
		`\bprojects?\b`,
		`\bportfolio\b`,
		`\bachievements?\b`,
		`\bkey\s+projects?\b`,
		`\bselected\s+projects?\b`,
		`\bnotable\s+projects?\b`,
	)},
	{SectionContact, compile(
		`\bcontact(\s+information)?\b`,
		`\bpersonal\s+information\b`,
		`\bcontact\s+details\b`,
	)},
}

var jdSectionPatterns = []sectionPatterns{
	{SectionOverview, compile(
		`\b(job\s+|role\s+)?overview\b`,
		`\b(job\s+|role\s+)?description\b`,
		`\babout\s+the\s+(role|position|job)\b`,
		`\bthe\s+role\b`,
		`\bposition\s+summary\b`,
	)},
	{SectionResponsibilities, compile(
		`\bresponsibilities\b`,
		`\bduties\b`,
		`\bwhat\s+you('ll| will)\s+do\b`,
		`\byour\s+role\b`,
		`\bkey\s+responsibilities\b`,
		`\bjob\s+duties\b`,
		`\bday\s+to\s+day\b`,
	)},
	{SectionRequirements, compile(
		`\brequirements?\b`,
		`\bmust\s+have\b`,
		`\brequired\s+(skills?|qualifications?|experience)\b`,
		`\bessential\s+(skills?|qualifications?|criteria)\b`,
		`\bwhat\s+you('ll)?\s+need\b`,
		`\bwhat\s+we('re)?\s+looking\s+for\b`,
		`\byou\s+should\s+have\b`,
	)},
	{SectionPreferred, compile(
		`\bnice\s+to\s+have\b`,
		`\bpreferred\s*(skills?|qualifications?)?\b`,
		`\bbonus\s*(points?|skills?)?\b`,
		`\bdesirable\b`,
		`\bplus\s+points?\b`,
		`\badditional\s+(skills?|qualifications?)\b`,
		`\bideal(ly)?\b`,
	)},
	{SectionQualifications, compile(
		`\bqualifications?\b`,
		`\beducation(al)?\s*(requirements?)?\b`,
		`\bexperience\s+required\b`,
		`\bminimum\s+qualifications?\b`,
	)},
	{SectionBenefits, compile(
		`\bbenefits?\b`,
		`\bperks?\b`,
		`\bcompensation\b`,
		`\bwhat\s+we\s+offer\b`,
		`\bwhy\s+join\s+us\b`,
	)},
	{SectionAbout, compile(
		`\babout\s+(us|the\s+company|our\s+company)\b`,
		`\bcompany\s+(overview|description|background)\b`,
		`\bwho\s+we\s+are\b`,
		`\bour\s+(mission|story|culture)\b`,
	)},
}

var sectionIndicators = []string{
	"summary", "experience", "education", "skills",
	"responsibilities", "requirements", "qualifications",
}

// DetectSections splits text into labelled sections. Only a header-like line
// that matches a known section pattern starts a new section; other header-like
// lines stay in the running section's content. Content before the first
// recognised header becomes a SectionUnknown section.
func DetectSections(text string, kind Kind) []Section {
	table := patternsFor(kind)
	lines := strings.Split(text, "\n")

	var (
		sections []Section
		current  SectionType
		content  []string
		start    int
	)

	flush := func(end int) {
		t := current
		if t == "" {
			t = SectionUnknown
		}
		sections = append(sections, Section{
			Type:      t,
			Title:     strings.TrimSpace(lines[start]),
			Content:   strings.Join(content, "\n"),
			StartLine: start,
			EndLine:   end,
		})
	}

	for i, line := range lines {
		if !IsHeaderLine(line) {
			content = append(content, line)
			continue
		}

		t, ok := matchSection(line, table)
		if !ok {
			content = append(content, line)
			continue
		}

		if current != "" || len(content) > 0 {
			flush(i - 1)
		}
		current = t
		content = nil
		start = i
	}

	if current != "" || len(content) > 0 {
		flush(len(lines) - 1)
	}

	return sections
}

// IsHeaderLine reports whether a line is shaped like a section header.
func IsHeaderLine(line string) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" || utf8.RuneCountInString(stripped) > maxHeaderRunes {
		return false
	}

	words := len(strings.Fields(stripped))
	if words > maxHeaderWords {
		return false
	}

	switch {
	case isUpper(stripped):
		return true
	case isTitle(stripped) && words <= 4:
		return true
	case strings.HasSuffix(stripped, ":"):
		return true
	case strings.ContainsAny(stripped[:1], "0123456789.-*") || strings.HasPrefix(stripped, "•"):
		if words <= 3 {
			return true
		}
	}

	lower := strings.ToLower(stripped)
	for _, indicator := range sectionIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}

	return false
}

func matchSection(line string, table []sectionPatterns) (SectionType, bool) {
	for _, entry := range table {
		for _, re := range entry.patterns {
			if re.MatchString(line) {
				return entry.section, true
			}
		}
	}
	return "", false
}

func patternsFor(kind Kind) []sectionPatterns {
	switch kind {
	case KindCV:
		return cvSectionPatterns
	case KindJD:
		return jdSectionPatterns
	default:
		panic(fmt.Sprintf("document: unsupported kind %d", int(kind)))
	}
}

// isUpper requires at least one cased rune and no lowercase ones.
func isUpper(s string) bool {
	return strings.ToUpper(s) == s && strings.ToLower(s) != s
}

// isTitle requires every word to start upper-case with the rest lower-case.
// A Caser is stateful, so one is built per call.
func isTitle(s string) bool {
	if strings.ToLower(s) == s && strings.ToUpper(s) == s {
		return false
	}
	return cases.Title(language.English).String(s) == s
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}
