package gemini

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/spigell/ats-matcher/internal/semantic"
)

type fakeModels struct {
	mu      sync.Mutex
	errs    []error
	calls   int
	batches []int
	model   string
	config  *genai.EmbedContentConfig
}

func (f *fakeModels) EmbedContent(_ context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.model = model
	f.config = config
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}

	f.batches = append(f.batches, len(contents))
	resp := &genai.EmbedContentResponse{}
	for _, c := range contents {
		n := float32(len(c.Parts[0].Text))
		resp.Embeddings = append(resp.Embeddings, &genai.ContentEmbedding{Values: []float32{n, 1}})
	}
	return resp, nil
}

func testEmbedder(models embedModels, logger *zap.Logger) *Embedder {
	e := newEmbedder(models, Config{MaxRetries: 2, Logger: logger})
	e.limiter = rate.NewLimiter(rate.Inf, 1)
	e.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return e
}

func TestEmbedderReturnsVectorsInOrder(t *testing.T) {
	models := &fakeModels{}
	e := testEmbedder(models, nil)

	vectors, err := e.Embed(context.Background(), []string{"a", "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(vectors) != 2 || vectors[0][0] != 1 || vectors[1][0] != 3 {
		t.Fatalf("unexpected vectors: %v", vectors)
	}
	if models.model != DefaultModel {
		t.Fatalf("expected default model, got %q", models.model)
	}
	if models.config == nil || models.config.TaskType != taskType {
		t.Fatalf("expected task type %q, got %+v", taskType, models.config)
	}
}

func TestEmbedderRetriesTransientErrors(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	models := &fakeModels{errs: []error{
		genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"},
		genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"},
	}}
	e := testEmbedder(models, zap.New(core))

	if _, err := e.Embed(context.Background(), []string{"python developer"}); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}

	if models.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", models.calls)
	}
	if logs.Len() != 2 {
		t.Fatalf("expected 2 retry warnings, got %d", logs.Len())
	}
}

func TestEmbedderDoesNotRetryClientErrors(t *testing.T) {
	models := &fakeModels{errs: []error{
		genai.APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT"},
	}}
	e := testEmbedder(models, nil)

	_, err := e.Embed(context.Background(), []string{"python developer"})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusBadRequest {
		t.Fatalf("expected wrapped api error, got %v", err)
	}
	if models.calls != 1 {
		t.Fatalf("expected a single call, got %d", models.calls)
	}
}

func TestEmbedderGivesUpAfterMaxTries(t *testing.T) {
	temp := genai.APIError{Code: http.StatusServiceUnavailable, Status: "UNAVAILABLE"}
	models := &fakeModels{errs: []error{temp, temp, temp, temp}}
	e := testEmbedder(models, nil)

	if _, err := e.Embed(context.Background(), []string{"python developer"}); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if models.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", models.calls)
	}
}

func TestEmbedderSplitsLargeBatches(t *testing.T) {
	models := &fakeModels{}
	e := testEmbedder(models, nil)

	texts := make([]string, 150)
	for i := range texts {
		texts[i] = "text"
	}

	vectors, err := e.Embed(context.Background(), texts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 150 {
		t.Fatalf("expected 150 vectors, got %d", len(vectors))
	}
	if len(models.batches) != 2 || models.batches[0] != 100 || models.batches[1] != 50 {
		t.Fatalf("unexpected batches: %v", models.batches)
	}
}

func TestEmbedderRejectsBlankText(t *testing.T) {
	models := &fakeModels{}
	e := testEmbedder(models, nil)

	_, err := e.Embed(context.Background(), []string{"ok", "   "})
	if !errors.Is(err, semantic.ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if models.calls != 0 {
		t.Fatalf("expected no api calls, got %d", models.calls)
	}
}

func TestNewEmbedderRequiresAPIKey(t *testing.T) {
	if _, err := NewEmbedder(context.Background(), Config{APIKey: "  "}); err == nil {
		t.Fatal("expected error for empty api key")
	}

	if _, err := Loader(Config{})(context.Background()); err == nil {
		t.Fatal("expected loader to fail without api key")
	}
}

func TestEmbedderModel(t *testing.T) {
	e := newEmbedder(&fakeModels{}, Config{Model: " custom-embed "})
	if e.Model() != "custom-embed" {
		t.Fatalf("unexpected model %q", e.Model())
	}

	var nilEmbedder *Embedder
	if nilEmbedder.Model() != "" {
		t.Fatal("expected empty model for nil embedder")
	}
}
