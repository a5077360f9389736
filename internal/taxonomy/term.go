package taxonomy

import (
	"regexp"
	"strings"
)

// Term is a taxonomy entry compiled into a case-insensitive whole-word matcher.
// Boundaries are any rune that is not a letter, digit or underscore, so terms
// ending in punctuation such as "c++" or starting with it such as ".net" still match.
type Term struct {
	Name string
	re   *regexp.Regexp
}

// Span is a byte range inside the searched text.
type Span struct {
	Start int
	End   int
}

// NewTerm compiles a single taxonomy entry.
func NewTerm(name string) Term {
	pattern := `(?i)(?:^|[^\pL\pN_])(` + regexp.QuoteMeta(name) + `)(?:$|[^\pL\pN_])`
	return Term{Name: name, re: regexp.MustCompile(pattern)}
}

// Find returns the span of the first occurrence of the term in text.
func (t Term) Find(text string) (Span, bool) {
	loc := t.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return Span{}, false
	}
	return Span{Start: loc[2], End: loc[3]}, true
}

// Compiled matchers for each category, in table order.
var (
	HardSkillTerms     = compileTerms(HardSkills)
	SoftSkillTerms     = compileTerms(SoftSkills)
	CertificationTerms = compileTerms(Certifications)
	MethodologyTerms   = compileTerms(Methodologies)
	DomainTerms        = compileTerms(Domains)
)

func compileTerms(names []string) []Term {
	terms := make([]Term, 0, len(names))
	for _, name := range names {
		terms = append(terms, NewTerm(name))
	}
	return terms
}

func joinQuoted(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	return strings.Join(quoted, "|")
}
