package ats

import (
	"regexp"
	"sort"
	"strings"

	"github.com/spigell/ats-matcher/internal/taxonomy"
)

type replacement struct {
	re   *regexp.Regexp
	with string
}

// Multi-character tech tokens are collapsed before punctuation is stripped.
var normalizers = []replacement{
	{regexp.MustCompile(`\.js\b`), "js"},
	{regexp.MustCompile(`\.net\b`), "dotnet"},
	{regexp.MustCompile(`\bci/cd\b`), "cicd"},
	{regexp.MustCompile(`\bc\+\+`), "cpp"},
	{regexp.MustCompile(`\bc#`), "csharp"},
	{regexp.MustCompile(`\bf#`), "fsharp"},
	{regexp.MustCompile(`[^\pL\pN_\s\-]`), " "},
}

var unigramPattern = regexp.MustCompile(`\b[a-z][a-z0-9\-]{1,}\b`)

func normalizeText(text string) string {
	text = strings.ToLower(text)
	for _, n := range normalizers {
		text = n.re.ReplaceAllString(text, n.with)
	}
	return text
}

// counter counts keys and remembers the order they were first seen in.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) has(key string) bool {
	_, ok := c.counts[key]
	return ok
}

// mostCommon returns up to n keys by descending count. Ties keep first-seen order.
func (c *counter) mostCommon(n int) []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	if n >= 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// stopSet combines the static stopword tiers with request-scoped extras such
// as the employer's name.
type stopSet map[string]struct{}

func (s stopSet) has(word string) bool {
	if taxonomy.IsStopword(word) {
		return true
	}
	_, ok := s[word]
	return ok
}

func (s stopSet) meaningful(word string) bool {
	return len(word) >= 2 && !s.has(word)
}

type keywordSet struct {
	unigrams *counter
	bigrams  *counter
	trigrams *counter
}

// extractKeywords counts unigrams, bigrams and trigrams of normalized text.
// Bigrams need one meaningful word and trigrams need two.
func extractKeywords(text string, stop stopSet) keywordSet {
	normalized := normalizeText(text)
	ks := keywordSet{unigrams: newCounter(), bigrams: newCounter(), trigrams: newCounter()}

	for _, w := range unigramPattern.FindAllString(normalized, -1) {
		if stop.meaningful(w) {
			ks.unigrams.add(w)
		}
	}

	words := strings.Fields(normalized)
	for i := 0; i+1 < len(words); i++ {
		pair := words[i : i+2]
		if countMeaningful(pair, stop) >= 1 && !(stop.has(pair[0]) && stop.has(pair[1])) {
			ks.bigrams.add(strings.Join(pair, " "))
		}
	}
	for i := 0; i+2 < len(words); i++ {
		triple := words[i : i+3]
		if countMeaningful(triple, stop) >= 2 {
			ks.trigrams.add(strings.Join(triple, " "))
		}
	}

	return ks
}

func countMeaningful(words []string, stop stopSet) int {
	n := 0
	for _, w := range words {
		if stop.meaningful(w) {
			n++
		}
	}
	return n
}
