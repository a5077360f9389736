package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCompany(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		jd   string
		want string
	}{
		{name: "label", jd: "Company: Acme Corp\nWe ship rockets.", want: "Acme Corp"},
		{name: "join as", jd: "Join Globex as a senior engineer.", want: "Globex"},
		{name: "is seeking", jd: "Initech is seeking a backend engineer.", want: "Initech"},
		{name: "about line", jd: "About Citi Belfast\nWe build trading platforms.", want: "Citi Belfast"},
		{
			name: "about line before free text",
			jd:   "About Citi Belfast\nYou will work at pace in a small team building Java services.",
			want: "Citi Belfast",
		},
		{name: "lowercase after at", jd: "You will work at pace in a small team.", want: ""},
		{name: "about us", jd: "About us\nWe build trading platforms.", want: ""},
		{name: "generic name", jd: "Join us as a developer.", want: ""},
		{name: "too many words", jd: "Company: The Very Long Company Name Here Ltd.", want: ""},
		{name: "nothing", jd: "Python developer wanted.", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, detectCompany(tt.jd))
		})
	}
}

func TestCompanyStopwords(t *testing.T) {
	t.Parallel()

	set := companyStopwords("Citi Belfast")
	for _, w := range []string{"citi belfast", "citi", "belfast", "ltd", "inc", "group"} {
		assert.True(t, set.has(w), w)
	}

	short := companyStopwords("HP Co")
	assert.True(t, short.has("hp co"))
	assert.False(t, short.has("hp"), "words of two letters or less are kept")

	assert.Empty(t, companyStopwords("  "))
}
