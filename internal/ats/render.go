package ats

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Recommendation returns the verdict shown for a final score.
func Recommendation(score float64) string {
	switch {
	case score >= 80:
		return "Excellent match"
	case score >= 60:
		return "Good match"
	case score >= 40:
		return "Fair match"
	default:
		return "Weak match"
	}
}

// printer remembers the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) list(label string, items []string) {
	if len(items) == 0 {
		return
	}
	p.printf("%s: %s\n", label, strings.Join(items, ", "))
}

// Render writes a human-readable version of the report.
func Render(w io.Writer, r *Report) error {
	p := &printer{w: w}

	p.printf("ATS score: %.1f/100 (%s)\n", r.Score, Recommendation(r.Score))
	p.printf("Keywords matched: %d of %d\n", r.Matched, r.Total)
	if r.Company != "" {
		p.printf("Employer: %s\n", r.Company)
	}

	h := r.Hybrid
	p.printf("\nScore breakdown\n")
	p.printf("  lexical   %5.1f x %.2f = %5.1f\n", h.LexicalScore, h.LexicalWeight, h.LexicalContribution)
	if h.SemanticAvailable {
		p.printf("  semantic  %5.1f x %.2f = %5.1f\n", h.SemanticScore, h.SemanticWeight, h.SemanticContribution)
	} else {
		p.printf("  semantic  unavailable, weight moved to lexical\n")
	}
	p.printf("  evidence  %5.1f x %.2f = %5.1f\n", h.EvidenceScore, h.EvidenceWeight, h.EvidenceContribution)

	if p.err == nil {
		p.printf("\nCategories\n")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		tp := &printer{w: tw}
		tp.printf("  category\tweight\tmatched\tmissing\n")
		for _, c := range Categories {
			s, ok := r.Categories[c]
			if !ok || s.Matched+s.Missing == 0 {
				continue
			}
			tp.printf("  %s\t%.1f\t%d\t%d\n", c, s.Weight, s.Matched, s.Missing)
		}
		if tp.err == nil {
			tp.err = tw.Flush()
		}
		p.err = tp.err
	}

	p.printf("\n")
	p.list("Matched keywords", r.MatchedKeywords)
	p.list("Missing keywords", r.MissingKeywords)
	p.list("Matched phrases", r.MatchedPhrases)
	p.list("Missing phrases", r.MissingPhrases)

	e := r.Evidence
	p.printf("\nEvidence: %d strong, %d moderate, %d weak (average %.2f)\n",
		e.StrongCount, e.ModerateCount, e.WeakCount, e.AverageStrength)
	p.list("  strong", e.StrongSkills)
	p.list("  weak", e.WeakSkills)

	if len(r.Semantic.TopMatches) > 0 {
		p.printf("\nSection similarity\n")
		for _, m := range r.Semantic.TopMatches {
			p.printf("  %s -> %s: %.1f\n", m.JDSection, m.CVSection, m.Similarity)
		}
	}

	g := r.Gaps
	if g.Experience.JDYears != nil {
		cvYears := 0
		if g.Experience.CVYears != nil {
			cvYears = *g.Experience.CVYears
		}
		p.printf("\nExperience: %d years required, %d found\n", *g.Experience.JDYears, cvYears)
	}
	p.list("Semantic gaps", g.SemanticGaps)

	if len(g.Suggestions) > 0 {
		p.printf("\nSuggestions\n")
		for i, s := range g.Suggestions {
			p.printf("  %2d. [%s] %s: %s\n", i+1, s.Priority, s.Skill, s.Reason)
		}
	}

	return p.err
}
