package gemini

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/ats-matcher/internal/logger"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

// RequirementsExtractor asks Gemini for the structured requirements text
// consumed by ats.ParseRequirements.
type RequirementsExtractor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed requirements_prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200

	systemInstruction = `You extract keywords from job descriptions. Output ONLY the structured format requested. DO NOT add any preamble, explanation, or commentary. Start your response directly with "HARD SKILLS:" - no other text before it.`
)

func NewRequirementsExtractor(generator contentGenerator, log *zap.Logger, maxLogLength int) *RequirementsExtractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &RequirementsExtractor{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// ExtractRequirements returns the model's answer with code fences removed.
// Preamble and trailing commentary are left for ats.ParseRequirements to drop.
func (r *RequirementsExtractor) ExtractRequirements(ctx context.Context, jobDescription string) (string, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return "", errors.New("job description is required")
	}

	prompt := buildPrompt(jobDescription)

	r.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, r.maxLogLen)),
	)

	raw, err := r.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return "", err
	}

	r.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, r.maxLogLen)),
	)

	return stripFences(raw), nil
}

func buildPrompt(jobDescription string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Job description:\n{{JOB_DESCRIPTION}}\n\nHARD SKILLS:"
	}
	return strings.ReplaceAll(template, "{{JOB_DESCRIPTION}}", strings.TrimSpace(jobDescription))
}

func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```text")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
