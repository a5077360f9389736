package semantic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spigell/ats-matcher/internal/document"
	"github.com/spigell/ats-matcher/internal/logger"
)

const (
	minSectionRunes = 20
	previewRunes    = 50
	logPreviewRunes = 60
	highValueWeight = 1.5
	topMatchCount   = 5
)

type sectionMapping struct {
	jd document.SectionType
	cv []document.SectionType
}

// JD sections and the CV sections they are compared against, in scoring order.
var sectionMappings = []sectionMapping{
	{document.SectionRequirements, []document.SectionType{document.SectionSkills, document.SectionExperience}},
	{document.SectionResponsibilities, []document.SectionType{document.SectionExperience, document.SectionProjects}},
	{document.SectionPreferred, []document.SectionType{document.SectionSkills, document.SectionProjects}},
	{document.SectionQualifications, []document.SectionType{
		document.SectionSkills, document.SectionExperience, document.SectionEducation, document.SectionCertifications,
	}},
	{document.SectionOverview, []document.SectionType{document.SectionSummary, document.SectionExperience, document.SectionSkills}},
	{document.SectionAbout, []document.SectionType{document.SectionSummary}},
}

var highValueSections = map[document.SectionType]bool{
	document.SectionExperience: true,
	document.SectionProjects:   true,
}

// Scorer compares CV and JD sections by embedding similarity. The embedder is
// loaded on the first Score call; a failed load or a failed embedding request
// disables the scorer for the rest of its life. A Scorer serves one request at
// a time.
type Scorer struct {
	load      Loader
	logger    *zap.Logger
	cacheSize int
	redis     *redis.Client
	cache     *Cache

	mu       sync.Mutex
	loaded   bool
	embedder Embedder
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLogger sets the logger used for load and embedding failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scorer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCacheSize bounds the in-memory embedding cache.
func WithCacheSize(size int) Option {
	return func(s *Scorer) { s.cacheSize = size }
}

// WithRedis enables the shared Redis tier of the embedding cache.
func WithRedis(client *redis.Client) Option {
	return func(s *Scorer) { s.redis = client }
}

// NewScorer returns a scorer that builds its embedder with load on first use.
// A nil load yields a scorer that is never available.
func NewScorer(load Loader, opts ...Option) *Scorer {
	s := &Scorer{
		load:      load,
		logger:    zap.NewNop(),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	cache, err := NewCache(s.cacheSize, s.redis, s.logger)
	if err != nil {
		s.logger.Warn("embedding cache disabled", zap.Error(err))
	}
	s.cache = cache

	return s
}

// Available reports whether semantic scoring can produce a signal. Before the
// first load attempt it only checks that a loader is configured.
func (s *Scorer) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.embedder != nil
	}
	return s.load != nil
}

// Score embeds the mapped section pairs and returns the rail-adjusted
// similarity score. It never fails: backend problems yield an unavailable
// result. A failed embedding request disables the scorer like a failed load,
// unless it was caused by ctx ending.
func (s *Scorer) Score(ctx context.Context, cv *document.ParsedCV, jd *document.ParsedJD) Result {
	embedder, err := s.ensure(ctx)
	if err != nil {
		return unavailable()
	}

	pairs := sectionPairs(cv, jd)
	vectors, err := s.vectors(ctx, embedder, pairs)
	if err != nil {
		if ctx.Err() == nil {
			s.disable(err)
		}
		return unavailable()
	}

	var matches []Match
	for _, p := range pairs {
		a, okA := vectors[normalize(p.jdText)]
		b, okB := vectors[normalize(p.cvText)]
		if !okA || !okB {
			continue
		}
		matches = append(matches, Match{
			JDSection:  p.jd,
			CVSection:  p.cv,
			Similarity: round(cosine(a, b)*100, 1),
			JDPreview:  preview(p.jdText),
			CVPreview:  preview(p.cvText),
			HighValue:  highValueSections[p.cv],
		})
	}

	result := Result{
		SectionSimilarities:   map[document.SectionType]float64{},
		CVSectionSimilarities: map[document.SectionType]float64{},
		Available:             true,
	}
	if len(matches) == 0 {
		result.Gaps = []string{"No matchable sections found"}
		return result
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	var weighted, weights float64
	for _, m := range matches {
		w := 1.0
		if m.HighValue {
			w = highValueWeight
			if m.Similarity > strongMatch {
				result.HighValueMatchCount++
			}
		}
		weighted += m.Similarity * w
		weights += w

		if best, ok := result.SectionSimilarities[m.JDSection]; !ok || m.Similarity > best {
			result.SectionSimilarities[m.JDSection] = m.Similarity
		}
		if best, ok := result.CVSectionSimilarities[m.CVSection]; !ok || m.Similarity > best {
			result.CVSectionSimilarities[m.CVSection] = m.Similarity
		}
	}
	raw := weighted / weights

	cvHard := document.CountHardEntities(cv.Entities)
	jdHard := document.CountHardEntities(jd.Entities)
	score, gaps := applyRails(raw, matches, cvHard, jdHard)

	if jdHard > 0 {
		result.EntitySupportRatio = round(float64(cvHard)/float64(jdHard), 2)
	}
	result.Score = round(score, 1)
	result.Gaps = gaps
	result.TopMatches = matches[:min(topMatchCount, len(matches))]

	s.logger.Debug("semantic score computed",
		zap.Float64("raw", round(raw, 1)),
		zap.Float64("score", result.Score),
		zap.Int("matches", len(matches)),
		zap.Strings("gaps", gaps),
	)

	return result
}

func (s *Scorer) ensure(ctx context.Context) (Embedder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.loaded = true
		if s.load == nil {
			return nil, ErrUnavailable
		}

		embedder, err := s.load(ctx)
		switch {
		case err != nil:
			s.logger.Error("embedding backend failed to load, semantic scoring disabled", zap.Error(err))
		case embedder == nil:
			s.logger.Error("embedding backend loader returned nothing, semantic scoring disabled")
		default:
			s.embedder = embedder
		}
	}

	if s.embedder == nil {
		return nil, ErrUnavailable
	}
	return s.embedder, nil
}

// disable drops the embedder for the rest of the scorer's life.
func (s *Scorer) disable(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.embedder == nil {
		return
	}
	s.embedder = nil
	s.logger.Error("embedding backend failed, semantic scoring disabled", zap.Error(err))
}

type sectionPair struct {
	jd, cv         document.SectionType
	jdText, cvText string
}

func sectionPairs(cv *document.ParsedCV, jd *document.ParsedJD) []sectionPair {
	var pairs []sectionPair
	for _, m := range sectionMappings {
		jdText := document.SectionText(jd.Sections, m.jd)
		if utf8.RuneCountInString(jdText) < minSectionRunes {
			continue
		}
		for _, cvType := range m.cv {
			cvText := document.SectionText(cv.Sections, cvType)
			if utf8.RuneCountInString(cvText) < minSectionRunes {
				continue
			}
			pairs = append(pairs, sectionPair{jd: m.jd, cv: cvType, jdText: jdText, cvText: cvText})
		}
	}
	return pairs
}

// vectors resolves an embedding for every distinct pair text, embedding cache
// misses in one batch. Any embedding failure fails the whole call.
func (s *Scorer) vectors(ctx context.Context, embedder Embedder, pairs []sectionPair) (map[string][]float32, error) {
	out := make(map[string][]float32)
	model := embedder.Model()

	var pending []string
	queued := make(map[string]bool)
	for _, p := range pairs {
		for _, text := range []string{p.jdText, p.cvText} {
			key := normalize(text)
			if _, ok := out[key]; ok || queued[key] {
				continue
			}
			if v, ok := s.cache.Get(ctx, model, text); ok {
				out[key] = v
				continue
			}
			queued[key] = true
			pending = append(pending, text)
		}
	}

	if len(pending) == 0 {
		return out, nil
	}

	embedded, err := embedder.Embed(ctx, pending)
	if err != nil {
		s.logger.Warn("embedding sections failed",
			zap.Int("texts", len(pending)),
			zap.String("first_text", logger.TruncateForLog(pending[0], logPreviewRunes)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("embed %d sections: %w", len(pending), err)
	}
	if len(embedded) != len(pending) {
		return nil, fmt.Errorf("%w: want %d vectors, got %d", errVectorCount, len(pending), len(embedded))
	}

	for i, text := range pending {
		out[normalize(text)] = embedded[i]
		s.cache.Add(ctx, model, text, embedded[i])
	}
	return out, nil
}

var errVectorCount = errors.New("embedding backend returned wrong number of vectors")

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func preview(text string) string {
	if utf8.RuneCountInString(text) <= previewRunes {
		return text
	}
	return string([]rune(text)[:previewRunes-3]) + "..."
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
