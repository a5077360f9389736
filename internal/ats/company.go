package ats

import (
	"regexp"
	"strings"

	"github.com/spigell/ats-matcher/internal/taxonomy"
)

const maxCompanyWords = 4

// Anchored patterns come first. The free-text ones need a real capital so
// phrases like "at pace in" are not taken for a name.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:company|organization|employer):\s*([A-Z][A-Za-z\s&]+?)(?:\n|\.|,)`),
	regexp.MustCompile(`(?m)^\s*(?i:about)\s*:?\s+([A-Z][A-Za-z&]*(?:[ \t]+[A-Z][A-Za-z&]*){0,3})\s*$`),
	regexp.MustCompile(`(?im)\b(?:join|at)\s+((?-i:[A-Z])[A-Za-z\s&]+?)\s+(?:as|in|for)\b`),
	regexp.MustCompile(`(?im)^((?-i:[A-Z])[A-Za-z\s&]+?)\s+is\s+(?:seeking|looking|hiring)`),
}

var genericCompanyNames = map[string]bool{
	"us":           true,
	"the company":  true,
	"our company":  true,
	"the role":     true,
	"the team":     true,
	"you":          true,
	"the position": true,
	"the job":      true,
}

// detectCompany returns the employer named in a job description, or "".
func detectCompany(jd string) string {
	for _, re := range companyPatterns {
		for _, m := range re.FindAllStringSubmatch(jd, -1) {
			name := strings.Join(strings.Fields(m[1]), " ")
			if name == "" || len(strings.Fields(name)) > maxCompanyWords {
				continue
			}
			if genericCompanyNames[strings.ToLower(name)] {
				continue
			}
			return name
		}
	}
	return ""
}

// companyStopwords returns the name, its longer words and the common legal
// suffixes, all lowercase. An empty name yields no stopwords.
func companyStopwords(name string) stopSet {
	set := stopSet{}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return set
	}

	set[name] = struct{}{}
	for _, w := range strings.Fields(name) {
		if len(w) > 2 {
			set[w] = struct{}{}
		}
	}
	for _, s := range taxonomy.CompanySuffixes {
		set[s] = struct{}{}
	}
	return set
}
