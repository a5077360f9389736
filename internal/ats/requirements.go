package ats

import "strings"

// Requirements holds the keyword buckets of a structured requirements answer:
//
//	HARD SKILLS: kw1, kw2
//	SOFT SKILLS: kw1, kw2
//	QUALIFICATIONS: req1, req2
//	CRITICAL KEYWORDS: kw1, kw2
//	REQUIRED: kw1, kw2
//	PREFERRED: kw1, kw2
type Requirements struct {
	HardSkills       []string `json:"hard_skills"`
	SoftSkills       []string `json:"soft_skills"`
	Qualifications   []string `json:"qualifications"`
	CriticalKeywords []string `json:"critical_keywords"`
	Required         []string `json:"required"`
	Preferred        []string `json:"preferred"`
}

// Items returns the bucket scored under category.
func (r Requirements) Items(c Category) []string {
	switch c {
	case CategoryCritical:
		return r.CriticalKeywords
	case CategoryHardSkills:
		return r.HardSkills
	case CategoryRequired:
		return r.Required
	case CategorySoftSkills:
		return r.SoftSkills
	case CategoryPreferred:
		return r.Preferred
	default:
		return nil
	}
}

// Empty reports whether no bucket has items.
func (r Requirements) Empty() bool {
	return len(r.HardSkills)+len(r.SoftSkills)+len(r.Qualifications)+
		len(r.CriticalKeywords)+len(r.Required)+len(r.Preferred) == 0
}

type requirementHeader struct {
	prefix string
	bucket func(*Requirements) *[]string
}

// Checked in order; prefixes are lowercase.
var requirementHeaders = []requirementHeader{
	{"hard skills:", func(r *Requirements) *[]string { return &r.HardSkills }},
	{"soft skills:", func(r *Requirements) *[]string { return &r.SoftSkills }},
	{"qualifications:", func(r *Requirements) *[]string { return &r.Qualifications }},
	{"required qualifications:", func(r *Requirements) *[]string { return &r.Qualifications }},
	{"critical keywords:", func(r *Requirements) *[]string { return &r.CriticalKeywords }},
	{"required:", func(r *Requirements) *[]string { return &r.Required }},
	{"must have:", func(r *Requirements) *[]string { return &r.Required }},
	{"preferred:", func(r *Requirements) *[]string { return &r.Preferred }},
	{"nice to have:", func(r *Requirements) *[]string { return &r.Preferred }},
}

// Lines starting with one of these open the structured block.
var captureHeaders = []string{
	"HARD SKILLS:", "SOFT SKILLS:", "QUALIFICATIONS:", "CRITICAL KEYWORDS:", "REQUIRED:", "PREFERRED:",
}

// Phrases that mark commentary appended after the structured block.
var commentaryPhrases = []string{
	"however,", "upon re-reading", "i realized", "i found", "let me", "note that",
	"additionally,", "note:", "here is the", "i have", "based on",
}

// ParseRequirements parses a structured requirements answer. Preamble and
// trailing commentary are dropped, lines before the first header are ignored
// and headerless lines continue the current bucket. Malformed input yields
// empty buckets.
func ParseRequirements(text string) Requirements {
	var (
		req     Requirements
		current *[]string
	)

	for _, line := range strings.Split(cleanRequirements(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		content := line
		lower := strings.ToLower(line)
		for _, h := range requirementHeaders {
			if strings.HasPrefix(lower, h.prefix) {
				current = h.bucket(&req)
				content = strings.TrimSpace(line[strings.Index(line, ":")+1:])
				break
			}
		}

		if current == nil || content == "" {
			continue
		}
		for _, item := range strings.Split(content, ",") {
			if item = strings.TrimSpace(item); item != "" {
				*current = append(*current, item)
			}
		}
	}

	return req
}

// cleanRequirements keeps the lines from the first structured header up to the
// first line of commentary. Text without any header is returned unchanged.
func cleanRequirements(text string) string {
	var kept []string
	started := false

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		trimmed := strings.TrimSpace(line)
		header := isCaptureHeader(trimmed)
		if header {
			started = true
		}
		if !started {
			continue
		}

		if !header && containsAny(strings.ToLower(trimmed), commentaryPhrases) {
			break
		}
		kept = append(kept, line)
	}

	if len(kept) == 0 {
		return text
	}
	return strings.Join(kept, "\n")
}

func isCaptureHeader(line string) bool {
	upper := strings.ToUpper(line)
	for _, h := range captureHeaders {
		if strings.HasPrefix(upper, h) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
