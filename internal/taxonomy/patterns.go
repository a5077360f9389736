package taxonomy

import "regexp"

// JobTitlePatterns recognise role titles: seniority and discipline combined with a
// role noun, management titles, director/VP/C-level titles and a generic
// seniority-prefixed fallback. Order determines first-seen order of titles.
var JobTitlePatterns = compileAll([]string{
	`\b(senior|junior|lead|principal|staff|distinguished)?\s*(software|backend|frontend|full[- ]?stack|devops|data|ml|machine learning|platform|infrastructure|site reliability|sre|qa|test|mobile|ios|android|embedded|systems?|security|cloud|solutions?)\s*(engineer|developer|architect|specialist)\b`,
	`\b(engineering|product|project|program|technical|delivery|development|it|software)\s*manager\b`,
	`\b(senior|junior|associate)?\s*(product|project|program|technical)\s*(manager|lead|director)\b`,
	`\b(director|head|vp|vice president|chief)\s*(of\s+)?(engineering|technology|product|data|analytics|information|digital|operations)\b`,
	`\b(cto|cio|cpo|cdo|ciso)\b`,
	`\b(data|business|product|marketing|financial)?\s*(analyst|scientist|engineer|architect)\b`,
	`\b(senior|junior|lead)?\s*(ui|ux|ui/ux|product|visual|graphic|interaction)\s*designer\b`,
	`\b(technical|it|management|business|strategy)?\s*(consultant|specialist|advisor)\b`,
	`\b(intern|trainee|associate|junior|mid[- ]?level|senior|lead|principal|staff|distinguished)\s+\w+\b`,
})

// YearsPatterns capture years-of-experience claims. Every numeric group of
// every match is a candidate; the largest wins.
var YearsPatterns = compileAll([]string{
	`(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s+)?(?:experience|exp)\b`,
	`(?:minimum|min|at least)\s*(\d+)\s*(?:years?|yrs?)`,
	`(\d+)\s*[-–to]+\s*(\d+)\s*(?:years?|yrs?)`,
	`(\d+)\s*(?:years?|yrs?)\s*(?:experience|exp)?\s*(?:required|needed|necessary)`,
	`(?:over|more than)\s*(\d+)\s*(?:years?|yrs?)`,
	`\bfor\s+(\d+)\+?\s*(?:years?|yrs?)\b`,
})

// MetricPatterns recognise quantified outcomes near a skill mention.
var MetricPatterns = compileAll([]string{
	`\d+%`,
	`\$[\d,]+[KMB]?`,
	`[\d,]+\s*(?:users?|customers?|clients?)`,
	`[\d,]+\s*(?:team members?|engineers?|developers?)`,
	`\d+x\b`,
	`#\d+\b`,
	`\d+\s*(?:projects?|applications?|systems?)`,
})

// ActionVerbs are achievement verbs that signal demonstrated rather than listed skills.
var ActionVerbs = []string{
	"led", "managed", "directed", "supervised", "coordinated", "oversaw", "headed", "spearheaded",
	"orchestrated", "mentored", "coached", "achieved", "accomplished", "delivered", "completed",
	"exceeded", "attained", "earned", "won", "secured", "built", "created", "developed", "designed",
	"architected", "established", "founded", "launched", "implemented", "deployed", "engineered",
	"constructed", "formulated", "improved", "enhanced", "optimized", "streamlined", "modernized",
	"transformed", "revamped", "upgraded", "accelerated", "boosted", "increased", "reduced",
	"decreased", "minimized", "eliminated", "analyzed", "researched", "investigated", "evaluated",
	"assessed", "identified", "discovered", "diagnosed", "resolved", "presented", "communicated",
	"negotiated", "collaborated", "partnered", "facilitated", "influenced", "persuaded", "drove",
	"executed", "performed", "conducted", "maintained", "supported", "contributed", "participated",
	"assisted",
}

// ActionVerbPattern matches any action verb as a whole word.
var ActionVerbPattern = regexp.MustCompile(`(?i)\b(` + joinQuoted(ActionVerbs) + `)\b`)

// HasMetric reports whether text contains a quantified outcome.
func HasMetric(text string) bool {
	for _, re := range MetricPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func compileAll(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
	}
	return compiled
}
