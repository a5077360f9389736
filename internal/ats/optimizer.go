package ats

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/ats-matcher/internal/document"
	"github.com/spigell/ats-matcher/internal/semantic"
)

const (
	frequencyKeywords = 20
	phraseCandidates  = 15
	reportedPhrases   = 10
	reportedKeywords  = 15
)

// Optimizer scores CVs against job descriptions. An Optimizer is not meant to
// serve concurrent calls because its semantic scorer is not; use one per
// worker.
type Optimizer struct {
	semantic *semantic.Scorer
	weights  Weights
	company  string
	logger   *zap.Logger
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithSemantic sets the semantic scorer. Without one the hybrid score falls
// back to lexical and evidence components.
func WithSemantic(s *semantic.Scorer) Option {
	return func(o *Optimizer) { o.semantic = s }
}

// WithWeights overrides DefaultWeights.
func WithWeights(w Weights) Option {
	return func(o *Optimizer) { o.weights = w }
}

// WithCompany names the employer instead of detecting it from the JD.
func WithCompany(name string) Option {
	return func(o *Optimizer) { o.company = strings.TrimSpace(name) }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Optimizer) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an Optimizer. It fails only on invalid weights.
func New(opts ...Option) (*Optimizer, error) {
	o := &Optimizer{
		weights: DefaultWeights(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := o.weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}
	if o.semantic == nil {
		o.semantic = semantic.NewScorer(nil)
	}

	return o, nil
}

// SemanticAvailable reports whether the semantic component can contribute.
func (o *Optimizer) SemanticAvailable() bool {
	return o.semantic.Available()
}

// Score compares a CV with a job description. requirements is an optional
// structured requirements answer; see ParseRequirements. Score always returns
// a complete report: malformed requirements leave their buckets empty and an
// unavailable semantic backend shifts its weight to the lexical score.
func (o *Optimizer) Score(ctx context.Context, cvText, jdText, requirements string) *Report {
	req := ParseRequirements(requirements)
	cv := document.ParseCV(cvText)
	jd := document.ParseJD(jdText)

	sections := matchSections(cv, jd)
	ev := weighEvidence(cv, jd)
	sem := o.semantic.Score(ctx, cv, jd)

	company := o.company
	if company == "" {
		company = detectCompany(jdText)
	}
	stop := companyStopwords(company)

	jobKeywords := extractKeywords(jdText, stop)
	cvKeywords := extractKeywords(cvText, stop)
	index := newCVIndex(cvText, cvKeywords)

	results := make(map[Category]*categoryResult, len(Categories))
	for _, c := range Categories {
		results[c] = &categoryResult{}
	}

	for _, c := range Categories {
		for _, kw := range req.Items(c) {
			r := results[c]
			if index.matches(kw) {
				r.matched = append(r.matched, kw)
			} else {
				r.missing = append(r.missing, kw)
			}
		}
	}

	topUnigrams := jobKeywords.unigrams.mostCommon(frequencyKeywords)
	freq := results[CategoryFrequency]
	for _, kw := range topUnigrams {
		if index.unigrams[kw] {
			freq.matched = append(freq.matched, kw)
			continue
		}
		if !trackedElsewhere(results, kw) {
			freq.missing = append(freq.missing, kw)
		}
	}

	var matchedPhrases, missingPhrases []string
	for _, phrase := range jobKeywords.bigrams.mostCommon(phraseCandidates) {
		if index.hasPhrase(phrase) {
			matchedPhrases = append(matchedPhrases, phrase)
		} else {
			missingPhrases = append(missingPhrases, phrase)
		}
	}

	lexical := o.lexicalScore(results)
	hybrid := o.weights.blend(lexical, sem, ev.average)

	var allMatched, allMissing []string
	summaries := make(map[Category]CategorySummary, len(Categories))
	for _, c := range Categories {
		r := results[c]
		allMatched = append(allMatched, r.matched...)
		allMissing = append(allMissing, r.missing...)
		summaries[c] = CategorySummary{
			Weight:       o.weights.Categories[c],
			Matched:      len(r.matched),
			Missing:      len(r.missing),
			ItemsMatched: head(r.matched, 5),
			ItemsMissing: head(r.missing, 5),
		}
	}
	allMatched = uniqueFold(allMatched)
	allMissing = uniqueFold(allMissing)

	report := &Report{
		Score:           hybrid.FinalScore,
		Matched:         len(allMatched),
		Total:           len(allMatched) + len(allMissing),
		MissingKeywords: head(allMissing, reportedKeywords),
		MatchedKeywords: head(allMatched, reportedKeywords),
		TopJobKeywords:  head(topUnigrams, reportedKeywords),
		Categories:      summaries,
		MatchedPhrases:  head(matchedPhrases, reportedPhrases),
		MissingPhrases:  head(missingPhrases, reportedPhrases),
		Sections:        summarizeSections(sections, cv, jd),
		Evidence:        summarizeEvidence(ev),
		Entities:        summarizeEntities(cv, jd),
		Hybrid:          hybrid,
		Semantic:        sem,
		Gaps: GapAnalysis{
			MissingCritical:    clone(results[CategoryCritical].missing),
			MissingRequired:    clone(results[CategoryRequired].missing),
			WeakEvidenceSkills: skillNames(ev.weak),
			SemanticGaps:       sem.Gaps,
			Experience:         experienceGap(cv, jd),
			Suggestions:        suggest(results, sections.notFound, sem),
		},
		Company:      company,
		Requirements: req,
	}

	o.logger.Debug("scored cv against job description",
		zap.Float64("score", report.Score),
		zap.Float64("lexical", hybrid.LexicalScore),
		zap.Float64("semantic", hybrid.SemanticScore),
		zap.Float64("evidence", hybrid.EvidenceScore),
		zap.Bool("semantic_available", hybrid.SemanticAvailable),
		zap.String("company", company),
		zap.Int("matched", report.Matched),
		zap.Int("total", report.Total),
	)

	return report
}

// lexicalScore weights each category's match ratio by its weight and size.
func (o *Optimizer) lexicalScore(results map[Category]*categoryResult) float64 {
	var weighted, total float64
	for _, c := range Categories {
		r := results[c]
		n := float64(r.size())
		if n == 0 {
			continue
		}
		w := o.weights.Categories[c]
		weighted += float64(len(r.matched)) / n * w * n
		total += w * n
	}
	if total == 0 {
		return 0
	}
	return weighted / total * 100
}

func trackedElsewhere(results map[Category]*categoryResult, keyword string) bool {
	for _, c := range Categories {
		if c == CategoryFrequency {
			continue
		}
		if results[c].tracks(keyword) {
			return true
		}
	}
	return false
}
