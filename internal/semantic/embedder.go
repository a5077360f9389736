package semantic

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable is returned when no embedding backend could be loaded.
	ErrUnavailable = errors.New("semantic: embedding backend unavailable")
	// ErrEmptyText is returned by embedders asked to embed blank input.
	ErrEmptyText = errors.New("semantic: empty text")
)

// Embedder turns texts into dense vectors, one vector per text in input order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Model() string
}

// Loader builds an Embedder. The scorer calls it at most once, on first use.
type Loader func(ctx context.Context) (Embedder, error)
