package store

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
)

// Embedder turns text into an embedding vector. The handle is constructed
// once at startup and shared read-only by every request, so implementations
// must be safe for concurrent use after construction.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

// LangChainEmbedder adapts a langchaingo embeddings.Embedder to the
// Embedder interface.
type LangChainEmbedder struct {
	embedder embeddings.Embedder
}

var _ Embedder = (*LangChainEmbedder)(nil)

// NewLangChainEmbedder wraps an existing langchaingo embedder.
func NewLangChainEmbedder(embedder embeddings.Embedder) *LangChainEmbedder {
	return &LangChainEmbedder{embedder: embedder}
}

// EmbedQuery embeds a single query string.
func (e *LangChainEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	embedding, err := e.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	return embedding, nil
}

// EmbedDocuments embeds a batch of documents.
func (e *LangChainEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed documents: %w", err)
	}
	return vectors, nil
}
