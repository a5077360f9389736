package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/spigell/ats-matcher/internal/semantic"
)

const (
	Provider = "gemini"

	DefaultModel             = "text-embedding-004"
	DefaultRequestsPerSecond = 5
	DefaultMaxRetries        = 3

	// Gemini accepts at most 100 contents per embedding request.
	maxBatchSize = 100
	taskType     = "SEMANTIC_SIMILARITY"
)

// embedModels is the part of genai.Models the embedder needs.
type embedModels interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Config configures the Gemini embedding backend.
type Config struct {
	APIKey            string
	Model             string
	RequestsPerSecond float64
	MaxRetries        int
	Logger            *zap.Logger
}

// Embedder produces embeddings through the Gemini API. Requests are rate
// limited and transient failures are retried with exponential backoff.
type Embedder struct {
	models     embedModels
	model      string
	limiter    *rate.Limiter
	maxTries   uint
	newBackOff func() backoff.BackOff
	logger     *zap.Logger
}

// NewEmbedder creates an Embedder configured for the Gemini API backend.
func NewEmbedder(ctx context.Context, cfg Config) (*Embedder, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newEmbedder(client.Models, cfg), nil
}

// Loader defers client creation until the semantic scorer first needs it.
func Loader(cfg Config) semantic.Loader {
	return func(ctx context.Context) (semantic.Embedder, error) {
		e, err := NewEmbedder(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

func newEmbedder(models embedModels, cfg Config) *Embedder {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}

	retries := cfg.MaxRetries
	if retries < 0 {
		retries = DefaultMaxRetries
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Embedder{
		models:     models,
		model:      model,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		maxTries:   uint(retries) + 1,
		newBackOff: defaultBackOff,
		logger:     logger,
	}
}

// Model returns the embedding model name.
func (e *Embedder) Model() string {
	if e == nil {
		return ""
	}
	return e.model
}

// Embed returns one vector per text, in order.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if e == nil || e.models == nil {
		return nil, errors.New("gemini embedder is not initialized")
	}

	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("text %d: %w", i, semantic.ErrEmptyText)
		}
	}

	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += maxBatchSize {
		end := min(start+maxBatchSize, len(texts))

		vectors, err := e.embedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, vectors...)
	}

	return out, nil
}

func (e *Embedder) embedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
	}
	config := &genai.EmbedContentConfig{TaskType: taskType}

	attempt := 0
	operation := func() ([][]float32, error) {
		attempt++
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, backoff.Permanent(fmt.Errorf("wait for rate limiter: %w", err))
		}

		resp, err := e.models.EmbedContent(ctx, e.model, contents, config)
		if err != nil {
			err = fmt.Errorf("embed content: %w", err)
			if !retryable(err) {
				return nil, backoff.Permanent(err)
			}
			e.logger.Warn("embedding request failed",
				zap.Int("attempt", attempt),
				zap.Int("texts", len(texts)),
				zap.Error(err),
			)
			return nil, err
		}

		if resp == nil || len(resp.Embeddings) != len(texts) {
			got := 0
			if resp != nil {
				got = len(resp.Embeddings)
			}
			return nil, backoff.Permanent(fmt.Errorf("gemini api returned %d embeddings for %d texts", got, len(texts)))
		}

		vectors := make([][]float32, 0, len(texts))
		for i, emb := range resp.Embeddings {
			if emb == nil || len(emb.Values) == 0 {
				return nil, backoff.Permanent(fmt.Errorf("gemini api returned empty embedding %d", i))
			}
			vectors = append(vectors, emb.Values)
		}
		return vectors, nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(e.newBackOff()),
		backoff.WithMaxTries(e.maxTries),
	)
}

// retryable treats rate limiting, server errors and non-API failures as
// transient. Other client errors will not succeed on retry.
func retryable(err error) bool {
	var (
		apiErr    genai.APIError
		apiErrPtr *genai.APIError
		code      int
	)
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		code = apiErrPtr.Code
	default:
		return true
	}
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func defaultBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 10 * time.Second
	return bo
}
