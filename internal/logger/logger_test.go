package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "Senior Go engineer",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "Go",
			limit:  10,
			expect: "Go",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "Senior Go engineer",
			limit:  6,
			expect: "Senior...",
		},
		{
			name:   "counts runes",
			input:  "Développeur Go",
			limit:  4,
			expect: "Déve...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  spaced  ",
			limit:  5,
			expect: "space...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, json := range []bool{false, true} {
		l, err := New(json, true)
		if err != nil {
			t.Fatalf("New(%v): %v", json, err)
		}
		if !l.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("expected debug level to be enabled")
		}
	}

	l, err := New(false, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be disabled")
	}
}

func TestForBackend(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	ForBackend(base, BackendEmbedding, " gemini ", "text-embedding-004").Info("embedding request failed")
	ForBackend(base, BackendGeneration, "gemini", "  ").Info("generation request failed")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	embed := entries[0].ContextMap()
	if embed["backend"] != "embedding" || embed["provider"] != "gemini" || embed["model"] != "text-embedding-004" {
		t.Fatalf("unexpected embedding fields: %v", embed)
	}

	gen := entries[1].ContextMap()
	if gen["backend"] != "generation" {
		t.Fatalf("unexpected generation fields: %v", gen)
	}
	if _, ok := gen["model"]; ok {
		t.Fatalf("blank model must be omitted, got %v", gen)
	}
}

func TestForBackendNilLogger(t *testing.T) {
	t.Parallel()

	l := ForBackend(nil, BackendEmbedding, "gemini", "text-embedding-004")
	if l == nil {
		t.Fatalf("expected a no-op logger")
	}
	l.Info("dropped")
}
