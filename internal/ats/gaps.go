package ats

import (
	"fmt"
	"strings"

	"github.com/spigell/ats-matcher/internal/document"
	"github.com/spigell/ats-matcher/internal/semantic"
)

const (
	missingPerCategory   = 5
	maxSuggestions       = 10
	unmatchedSectionSim  = 50.0
	fallbackSectionScore = 100.0
)

// Suggestion recommends where to add a missing keyword.
type Suggestion struct {
	Skill              string               `json:"skill"`
	Priority           string               `json:"priority"`
	RecommendedSection document.SectionType `json:"recommended_section"`
	SectionScore       float64              `json:"section_score"`
	Reason             string               `json:"reason"`
}

// ExperienceGap compares required and claimed years. Gap treats a missing
// value as zero.
type ExperienceGap struct {
	CVYears *int `json:"cv_years"`
	JDYears *int `json:"jd_years"`
	Gap     int  `json:"gap"`
}

// GapAnalysis lists what keeps the CV from a better score.
type GapAnalysis struct {
	MissingCritical    []string      `json:"missing_critical_keywords"`
	MissingRequired    []string      `json:"missing_required_skills"`
	WeakEvidenceSkills []string      `json:"weak_evidence_skills"`
	SemanticGaps       []string      `json:"missing_concepts"`
	Experience         ExperienceGap `json:"experience_gaps"`
	Suggestions        []Suggestion  `json:"actionable_suggestions"`
}

var suggestionPriorities = []struct {
	category Category
	priority string
}{
	{CategoryCritical, "critical"},
	{CategoryRequired, "required"},
	{CategoryHardSkills, "hard_skills"},
	{CategoryPreferred, "preferred"},
}

// Candidate sections for new keywords, in tie-break order.
var suggestionSections = []document.SectionType{
	document.SectionExperience, document.SectionProjects, document.SectionSkills,
}

// suggest turns the top missing keywords into section recommendations. Every
// suggestion targets the CV section with the lowest semantic similarity.
func suggest(results map[Category]*categoryResult, notFound []string, sem semantic.Result) []Suggestion {
	type candidate struct{ skill, priority string }

	var candidates []candidate
	for _, p := range suggestionPriorities {
		missing := results[p.category].missing
		for _, skill := range missing[:min(missingPerCategory, len(missing))] {
			candidates = append(candidates, candidate{skill, p.priority})
		}
	}
	for _, skill := range notFound[:min(missingPerCategory, len(notFound))] {
		listed := false
		for _, c := range candidates {
			if strings.EqualFold(c.skill, skill) {
				listed = true
				break
			}
		}
		if !listed {
			candidates = append(candidates, candidate{skill, "required"})
		}
	}
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	section, score := document.SectionSkills, fallbackSectionScore
	for _, s := range suggestionSections {
		sim, ok := sem.CVSectionSimilarities[s]
		if !ok {
			sim = unmatchedSectionSim
		}
		if sim < score {
			section, score = s, sim
		}
	}

	suggestions := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, Suggestion{
			Skill:              c.skill,
			Priority:           c.priority,
			RecommendedSection: section,
			SectionScore:       round(score, 1),
			Reason:             fmt.Sprintf("Add to %s section to improve alignment", section.Title()),
		})
	}
	return suggestions
}

func experienceGap(cv *document.ParsedCV, jd *document.ParsedJD) ExperienceGap {
	gap := ExperienceGap{CVYears: cv.YearsExperience, JDYears: jd.YearsRequired}
	if jd.YearsRequired != nil {
		gap.Gap += *jd.YearsRequired
	}
	if cv.YearsExperience != nil {
		gap.Gap -= *cv.YearsExperience
	}
	return gap
}
