package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	got := strings.Fields(normalizeText("React.js, .NET, CI/CD, C++ and C#"))
	assert.Equal(t, []string{"reactjs", "dotnet", "cicd", "cpp", "and", "csharp"}, got)
}

func TestExtractKeywordsUnigrams(t *testing.T) {
	t.Parallel()

	ks := extractKeywords("Go and Rust. We use Go, Rust and Kafka with the team.", stopSet{})

	assert.Equal(t, []string{"go", "rust", "kafka"}, ks.unigrams.mostCommon(-1))
	assert.Equal(t, []string{"go"}, ks.unigrams.mostCommon(1))
}

func TestExtractKeywordsPhrases(t *testing.T) {
	t.Parallel()

	ks := extractKeywords("the python developer of the python team", stopSet{})

	assert.True(t, ks.bigrams.has("the python"))
	assert.True(t, ks.bigrams.has("python developer"))
	assert.False(t, ks.bigrams.has("of the"))

	assert.True(t, ks.trigrams.has("the python developer"))
	assert.False(t, ks.trigrams.has("of the python"))
}

func TestExtractKeywordsHonoursExtraStopwords(t *testing.T) {
	t.Parallel()

	ks := extractKeywords("Acme engineers ship Acme products", companyStopwords("Acme"))

	assert.False(t, ks.unigrams.has("acme"))
	assert.True(t, ks.unigrams.has("engineers"))
}

func TestCounterTiesKeepFirstSeenOrder(t *testing.T) {
	t.Parallel()

	c := newCounter()
	for _, k := range []string{"b", "a", "c", "a", "b"} {
		c.add(k)
	}
	assert.Equal(t, []string{"b", "a", "c"}, c.mostCommon(-1))
}
