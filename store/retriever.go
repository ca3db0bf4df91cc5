package store

import (
	"context"
	"fmt"

	"github.com/smallnest/ragroute/route"
)

// Retriever combines an embedder and a vector store into a
// route.VectorSearcher: it embeds the question and runs a top-k
// similarity search.
type Retriever struct {
	store    VectorStore
	embedder Embedder
	topK     int
	name     string
}

var _ route.VectorSearcher = (*Retriever)(nil)

// RetrieverOption configures a Retriever.
type RetrieverOption func(*Retriever)

// WithTopK sets the number of hits to retrieve. Default 5.
func WithTopK(k int) RetrieverOption {
	return func(r *Retriever) {
		if k > 0 {
			r.topK = k
		}
	}
}

// WithName sets the backend identifier reported on outcomes.
func WithName(name string) RetrieverOption {
	return func(r *Retriever) {
		r.name = name
	}
}

// NewRetriever creates a retriever over the given store and embedder.
func NewRetriever(store VectorStore, embedder Embedder, opts ...RetrieverOption) (*Retriever, error) {
	if store == nil {
		return nil, fmt.Errorf("vector store is required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}

	r := &Retriever{
		store:    store,
		embedder: embedder,
		topK:     5,
		name:     "vector",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Name implements route.VectorSearcher.
func (r *Retriever) Name() string { return r.name }

// Search implements route.VectorSearcher.
func (r *Retriever) Search(ctx context.Context, question string) ([]route.VectorHit, error) {
	embedding, err := r.embedder.EmbedQuery(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	hits, err := r.store.Search(ctx, embedding, r.topK)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	return hits, nil
}

// Ingest splits, embeds and stores documents. It is the write path that
// feeds the retriever's store.
func (r *Retriever) Ingest(ctx context.Context, splitter *SimpleTextSplitter, docs []Document) (int, error) {
	if splitter == nil {
		splitter = NewSimpleTextSplitter(1000, 200)
	}

	chunks := splitter.SplitDocuments(docs)
	if len(chunks) == 0 {
		return 0, nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	vectors, err := r.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return 0, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	for i := range chunks {
		chunks[i].Embedding = vectors[i]
	}

	if err := r.store.Add(ctx, chunks); err != nil {
		return 0, fmt.Errorf("failed to store chunks: %w", err)
	}
	return len(chunks), nil
}
