package ats

import (
	"strings"

	"github.com/spigell/ats-matcher/internal/document"
	"github.com/spigell/ats-matcher/internal/semantic"
)

// Report is the complete result of one CV/JD comparison.
type Report struct {
	Score           float64  `json:"score"`
	Matched         int      `json:"matched"`
	Total           int      `json:"total"`
	MissingKeywords []string `json:"missing_keywords"`
	MatchedKeywords []string `json:"matched_keywords"`
	TopJobKeywords  []string `json:"top_job_keywords"`

	Categories     map[Category]CategorySummary `json:"scores_by_category"`
	MatchedPhrases []string                     `json:"matched_phrases"`
	MissingPhrases []string                     `json:"missing_phrases"`

	Sections SectionAnalysis  `json:"section_analysis"`
	Evidence EvidenceAnalysis `json:"evidence_analysis"`
	Entities EntitySummary    `json:"parsed_entities"`
	Hybrid   HybridScore      `json:"hybrid_scoring"`
	Semantic semantic.Result  `json:"semantic_analysis"`
	Gaps     GapAnalysis      `json:"gap_analysis"`

	Company      string       `json:"company,omitempty"`
	Requirements Requirements `json:"requirements"`
}

// CategorySummary counts one bucket and samples its first items.
type CategorySummary struct {
	Weight       float64  `json:"weight"`
	Matched      int      `json:"matched"`
	Missing      int      `json:"missing"`
	ItemsMatched []string `json:"items_matched"`
	ItemsMissing []string `json:"items_missing"`
}

// SectionAnalysis shows where the CV demonstrates the JD's required and
// preferred skills.
type SectionAnalysis struct {
	ExperienceMatches []string `json:"experience_matches"`
	SkillsMatches     []string `json:"skills_matches"`
	ProjectsMatches   []string `json:"projects_matches"`
	OtherMatches      []string `json:"other_matches"`
	NotFoundInCV      []string `json:"not_found_in_cv"`
	CVSections        int      `json:"cv_sections_detected"`
	JDSections        int      `json:"jd_sections_detected"`
}

// EvidenceAnalysis summarises how strongly matched skills are demonstrated.
type EvidenceAnalysis struct {
	StrongCount     int      `json:"strong_evidence_count"`
	ModerateCount   int      `json:"moderate_evidence_count"`
	WeakCount       int      `json:"weak_evidence_count"`
	AverageStrength float64  `json:"average_strength"`
	TotalStrength   float64  `json:"total_weighted_score"`
	StrongSkills    []string `json:"strong_skills"`
	WeakSkills      []string `json:"weak_skills"`
}

// EntitySummary samples the parsed entities of both documents.
type EntitySummary struct {
	CVHardSkills      []string `json:"cv_hard_skills"`
	CVSoftSkills      []string `json:"cv_soft_skills"`
	JDRequiredSkills  []string `json:"jd_required_skills"`
	JDPreferredSkills []string `json:"jd_preferred_skills"`
	CVYears           *int     `json:"cv_years_experience"`
	JDYears           *int     `json:"jd_years_required"`
	JDJobTitle        string   `json:"jd_job_title,omitempty"`
	CVJobTitles       []string `json:"cv_job_titles,omitempty"`
}

// categoryResult is the matched/missing split of one bucket.
type categoryResult struct {
	matched []string
	missing []string
}

func (c *categoryResult) size() int {
	return len(c.matched) + len(c.missing)
}

func (c *categoryResult) tracks(keyword string) bool {
	for _, list := range [][]string{c.matched, c.missing} {
		for _, k := range list {
			if strings.EqualFold(k, keyword) {
				return true
			}
		}
	}
	return false
}

func summarizeSections(m sectionMatches, cv *document.ParsedCV, jd *document.ParsedJD) SectionAnalysis {
	return SectionAnalysis{
		ExperienceMatches: head(m.experience, 10),
		SkillsMatches:     head(m.skills, 10),
		ProjectsMatches:   head(m.projects, 5),
		OtherMatches:      head(m.other, 10),
		NotFoundInCV:      head(m.notFound, 10),
		CVSections:        len(cv.Sections),
		JDSections:        len(jd.Sections),
	}
}

func summarizeEvidence(ev evidence) EvidenceAnalysis {
	return EvidenceAnalysis{
		StrongCount:     len(ev.strong),
		ModerateCount:   len(ev.moderate),
		WeakCount:       len(ev.weak),
		AverageStrength: ev.average,
		TotalStrength:   ev.total,
		StrongSkills:    head(skillNames(ev.strong), 5),
		WeakSkills:      head(skillNames(ev.weak), 5),
	}
}

func summarizeEntities(cv *document.ParsedCV, jd *document.ParsedJD) EntitySummary {
	return EntitySummary{
		CVHardSkills:      head(cv.HardSkills(), 15),
		CVSoftSkills:      head(cv.SoftSkills(), 10),
		JDRequiredSkills:  head(jd.RequiredSkills(), 15),
		JDPreferredSkills: head(jd.PreferredSkills(), 10),
		CVYears:           cv.YearsExperience,
		JDYears:           jd.YearsRequired,
		JDJobTitle:        jd.JobTitle,
		CVJobTitles:       head(cv.JobTitles, 5),
	}
}

func skillNames(items []EvidenceItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Skill)
	}
	return out
}

// uniqueFold drops case-insensitive duplicates, keeping the first spelling.
func uniqueFold(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		k := strings.ToLower(it)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, it)
	}
	return out
}

// head returns at most n leading items and never nil.
func head(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}

func clone(items []string) []string {
	return head(items, len(items))
}
