package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/genai"
)

type fakeGenerateModels struct {
	mu      sync.Mutex
	errs    []error
	answers []string
	calls   int
	model   string
	config  *genai.GenerateContentConfig
	prompt  string
}

func (f *fakeGenerateModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.model = model
	f.config = config
	f.prompt = contents[0].Parts[0].Text

	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}

	resp := &genai.GenerateContentResponse{}
	if len(f.answers) > 0 {
		parts := make([]*genai.Part, 0, len(f.answers))
		for _, a := range f.answers {
			parts = append(parts, &genai.Part{Text: a})
		}
		resp.Candidates = []*genai.Candidate{{Content: &genai.Content{Parts: parts}}}
	}
	return resp, nil
}

func testGenerator(models generateModels, logger *zap.Logger) *Generator {
	g := newGenerator(models, "", 2, logger)
	g.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return g
}

func TestGeneratorSendsConfig(t *testing.T) {
	t.Parallel()

	models := &fakeGenerateModels{answers: []string{"  HARD SKILLS: go  ", "", "REQUIRED: grpc"}}
	g := testGenerator(models, nil)

	out, err := g.GenerateContent(context.Background(), "be terse", "  extract this  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "HARD SKILLS: go\nREQUIRED: grpc" {
		t.Fatalf("unexpected output %q", out)
	}
	if models.model != DefaultGenerationModel || g.Model() != DefaultGenerationModel {
		t.Fatalf("expected default model, got %q", models.model)
	}
	if models.prompt != "extract this" {
		t.Fatalf("expected trimmed prompt, got %q", models.prompt)
	}
	if models.config.Temperature == nil || *models.config.Temperature != float32(generationTemperature) {
		t.Fatalf("unexpected temperature: %v", models.config.Temperature)
	}
	if models.config.SystemInstruction == nil || models.config.SystemInstruction.Parts[0].Text != "be terse" {
		t.Fatalf("expected system instruction to be set")
	}
}

func TestGeneratorRetriesOnTemporaryError(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	models := &fakeGenerateModels{
		errs:    []error{genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}},
		answers: []string{"HARD SKILLS: go"},
	}

	out, err := testGenerator(models, zap.New(core)).GenerateContent(context.Background(), "", "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "HARD SKILLS: go" {
		t.Fatalf("unexpected output %q", out)
	}
	if models.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", models.calls)
	}
	if logs.FilterMessage("generation request failed").Len() != 1 {
		t.Fatalf("expected one retry warning")
	}
}

func TestGeneratorDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	models := &fakeGenerateModels{errs: []error{genai.APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT"}}}

	_, err := testGenerator(models, nil).GenerateContent(context.Background(), "", "prompt")
	if err == nil {
		t.Fatalf("expected error")
	}
	if models.calls != 1 {
		t.Fatalf("expected a single call, got %d", models.calls)
	}
}

func TestGeneratorEmptyResponse(t *testing.T) {
	t.Parallel()

	models := &fakeGenerateModels{}
	_, err := testGenerator(models, nil).GenerateContent(context.Background(), "", "prompt")
	if err == nil || !strings.Contains(err.Error(), "empty response") {
		t.Fatalf("expected empty response error, got %v", err)
	}
	if models.calls != 1 {
		t.Fatalf("empty responses must not be retried, got %d calls", models.calls)
	}
}

func TestGeneratorValidation(t *testing.T) {
	t.Parallel()

	if _, err := testGenerator(&fakeGenerateModels{}, nil).GenerateContent(context.Background(), "", "   "); err == nil {
		t.Fatalf("expected error for empty prompt")
	}

	var g *Generator
	if _, err := g.GenerateContent(context.Background(), "", "prompt"); err == nil {
		t.Fatalf("expected error for nil generator")
	}
	if g.Model() != "" {
		t.Fatalf("expected empty model for nil generator")
	}

	if _, err := NewGenerator(context.Background(), " ", "", 0, nil); err == nil {
		t.Fatalf("expected api key error")
	}
}

func TestRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{genai.APIError{Code: http.StatusTooManyRequests}, true},
		{&genai.APIError{Code: http.StatusServiceUnavailable}, true},
		{genai.APIError{Code: http.StatusForbidden}, false},
		{errors.New("connection reset"), true},
	}
	for _, tt := range tests {
		if got := retryable(tt.err); got != tt.want {
			t.Fatalf("retryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
