package store

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/smallnest/ragroute/route"
)

// VectorStore stores embedded documents and retrieves them by similarity.
type VectorStore interface {
	Add(ctx context.Context, docs []Document) error
	Search(ctx context.Context, embedding []float32, k int) ([]route.VectorHit, error)
	Close() error
}

// MemoryVectorStore is an in-memory VectorStore, useful for tests and
// small corpora.
type MemoryVectorStore struct {
	docs []Document
}

var _ VectorStore = (*MemoryVectorStore)(nil)

// NewMemoryVectorStore creates an empty in-memory store.
func NewMemoryVectorStore() *MemoryVectorStore {
	return &MemoryVectorStore{}
}

// Add stores documents. Every document must already carry its embedding.
func (s *MemoryVectorStore) Add(ctx context.Context, docs []Document) error {
	for _, doc := range docs {
		if len(doc.Embedding) == 0 {
			return fmt.Errorf("document %s has no embedding", doc.ID)
		}
		s.docs = append(s.docs, doc)
	}
	return nil
}

// Search returns the k most similar documents by cosine similarity.
func (s *MemoryVectorStore) Search(ctx context.Context, embedding []float32, k int) ([]route.VectorHit, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive")
	}
	if len(s.docs) == 0 {
		return nil, nil
	}

	type scored struct {
		doc   Document
		score float64
	}

	scores := make([]scored, 0, len(s.docs))
	for _, doc := range s.docs {
		scores = append(scores, scored{doc: doc, score: cosineSimilarity(embedding, doc.Embedding)})
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	if k > len(scores) {
		k = len(scores)
	}

	hits := make([]route.VectorHit, k)
	for i := 0; i < k; i++ {
		hits[i] = route.VectorHit{
			Text:   scores[i].doc.Text,
			Score:  scores[i].score,
			Source: scores[i].doc.Source,
		}
	}
	return hits, nil
}

// Close clears the store.
func (s *MemoryVectorStore) Close() error {
	s.docs = nil
	return nil
}

// Len returns the number of stored documents.
func (s *MemoryVectorStore) Len() int { return len(s.docs) }

// cosineSimilarity calculates cosine similarity between two vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i] * b[i])
		normA += float64(a[i] * a[i])
		normB += float64(b[i] * b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
