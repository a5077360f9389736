package document

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spigell/ats-matcher/internal/taxonomy"
)

const (
	baseStrength          = 1.0
	maxStrength           = 2.0
	certificationStrength = 1.5
	metricBonus           = 0.2
	actionVerbBonus       = 0.1

	evidenceWindow = 100
	contextWindow  = 50
)

var sectionBonus = map[SectionType]float64{
	SectionExperience: 0.2,
	SectionProjects:   0.15,
	SectionSummary:    0.1,
}

type termGroup struct {
	entity   EntityType
	terms    []taxonomy.Term
	strength func(text string, section SectionType, span taxonomy.Span) float64
}

// Extraction order matters: the first group to claim a key keeps it.
var termGroups = []termGroup{
	{EntityHardSkill, taxonomy.HardSkillTerms, contextualStrength},
	{EntitySoftSkill, taxonomy.SoftSkillTerms, contextualStrength},
	{EntityCertification, taxonomy.CertificationTerms, fixedStrength(certificationStrength)},
	{EntityMethodology, taxonomy.MethodologyTerms, fixedStrength(baseStrength)},
	{EntityDomain, taxonomy.DomainTerms, fixedStrength(baseStrength)},
}

// Extract returns one entity per (term, type) found in text. Each entity keeps
// the first occurrence of its term and is tagged with section, which may be empty.
func Extract(text string, section SectionType) []Entity {
	var entities []Entity
	seen := make(map[EntityKey]bool)

	for _, group := range termGroups {
		for _, term := range group.terms {
			key := EntityKey{Text: strings.ToLower(term.Name), Type: group.entity}
			if seen[key] {
				continue
			}

			span, ok := term.Find(text)
			if !ok {
				continue
			}
			seen[key] = true

			entities = append(entities, Entity{
				Text:             text[span.Start:span.End],
				Type:             group.entity,
				Section:          section,
				EvidenceStrength: group.strength(text, section, span),
				Context:          window(text, span, contextWindow),
			})
		}
	}

	return entities
}

// JobTitles returns the unique job titles in text, compared case-insensitively,
// in the order the title patterns find them.
func JobTitles(text string) []string {
	var titles []string
	seen := make(map[string]bool)

	for _, re := range taxonomy.JobTitlePatterns {
		for _, m := range re.FindAllString(text, -1) {
			title := strings.TrimSpace(m)
			key := strings.ToLower(title)
			if title == "" || seen[key] {
				continue
			}
			seen[key] = true
			titles = append(titles, title)
		}
	}

	return titles
}

// YearsExperience returns the largest year count claimed anywhere in text,
// or nil when there is none.
func YearsExperience(text string) *int {
	var best *int

	for _, re := range taxonomy.YearsPatterns {
		for _, groups := range re.FindAllStringSubmatch(text, -1) {
			for _, g := range groups[1:] {
				years, err := strconv.Atoi(g)
				if err != nil {
					continue
				}
				if best == nil || years > *best {
					v := years
					best = &v
				}
			}
		}
	}

	return best
}

func contextualStrength(text string, section SectionType, span taxonomy.Span) float64 {
	strength := baseStrength + sectionBonus[section]

	around := window(text, span, evidenceWindow)
	if taxonomy.HasMetric(around) {
		strength += metricBonus
	}
	if taxonomy.ActionVerbPattern.MatchString(around) {
		strength += actionVerbBonus
	}

	return round2(math.Min(strength, maxStrength))
}

func fixedStrength(v float64) func(string, SectionType, taxonomy.Span) float64 {
	return func(string, SectionType, taxonomy.Span) float64 { return v }
}

// window returns the span widened by n runes on each side, clipped to text.
func window(text string, span taxonomy.Span, n int) string {
	from := span.Start
	for i := 0; i < n && from > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:from])
		from -= size
	}

	to := span.End
	for i := 0; i < n && to < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[to:])
		to += size
	}

	return text[from:to]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
