package ats

import (
	"strings"

	"github.com/spigell/ats-matcher/internal/taxonomy"
)

// expansions returns the abbreviation forms, reverse abbreviations and role
// variants of a lowercase keyword. Phrases also get one variant per word that
// has role variants.
func expansions(keyword string) []string {
	var out []string
	out = append(out, taxonomy.AbbreviationForms(keyword)...)
	out = append(out, taxonomy.AbbreviationsOf(keyword)...)
	out = append(out, taxonomy.RoleVariants(keyword)...)

	words := strings.Fields(keyword)
	if len(words) > 1 {
		for i, w := range words {
			for _, v := range taxonomy.RoleVariants(w) {
				variant := make([]string, len(words))
				copy(variant, words)
				variant[i] = v
				out = append(out, strings.Join(variant, " "))
			}
		}
	}
	return out
}

// expandSet returns the keys together with all their expansions.
func expandSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	for _, k := range keys {
		for _, e := range expansions(strings.ToLower(k)) {
			set[e] = true
		}
	}
	return set
}

// cvIndex answers whether a CV covers a keyword.
type cvIndex struct {
	text     string
	unigrams map[string]bool
	bigrams  *counter
}

func newCVIndex(cvText string, kw keywordSet) cvIndex {
	return cvIndex{
		text:     normalizeText(cvText),
		unigrams: expandSet(kw.unigrams.order),
		bigrams:  kw.bigrams,
	}
}

func (ix cvIndex) contains(term string) bool {
	return term != "" && (strings.Contains(ix.text, term) || ix.unigrams[term])
}

// matches reports whether the keyword, its normalized form or any of their
// expansions appears in the CV text or expanded unigram set.
func (ix cvIndex) matches(keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	norm := strings.Join(strings.Fields(normalizeText(kw)), " ")

	candidates := []string{kw, norm}
	candidates = append(candidates, expansions(kw)...)
	if norm != kw {
		candidates = append(candidates, expansions(norm)...)
	}

	for _, c := range candidates {
		if ix.contains(c) {
			return true
		}
	}
	return false
}

func (ix cvIndex) hasPhrase(phrase string) bool {
	return ix.bigrams.has(phrase) || strings.Contains(ix.text, phrase)
}
