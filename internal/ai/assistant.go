package ai

import "context"

// RequirementsExtractor turns a job description into structured requirements
// text with HARD SKILLS:, SOFT SKILLS:, QUALIFICATIONS:, CRITICAL KEYWORDS:,
// REQUIRED: and PREFERRED: lines.
type RequirementsExtractor interface {
	ExtractRequirements(ctx context.Context, jobDescription string) (string, error)
}
