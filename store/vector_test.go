package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryVectorStore(t *testing.T) {
	ctx := context.Background()

	docs := []Document{
		{ID: "a", Text: "vector databases store embeddings", Source: "a.md", Embedding: []float32{1, 0, 0}},
		{ID: "b", Text: "graph databases store relationships", Source: "b.md", Embedding: []float32{0, 1, 0}},
		{ID: "c", Text: "hybrid search combines both", Source: "c.md", Embedding: []float32{0.9, 0.1, 0}},
	}

	t.Run("search orders by cosine similarity", func(t *testing.T) {
		s := NewMemoryVectorStore()
		require.NoError(t, s.Add(ctx, docs))

		hits, err := s.Search(ctx, []float32{1, 0, 0}, 2)
		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "vector databases store embeddings", hits[0].Text)
		assert.Equal(t, "hybrid search combines both", hits[1].Text)
		assert.Greater(t, hits[0].Score, hits[1].Score)
		assert.Equal(t, "a.md", hits[0].Source)
	})

	t.Run("k larger than corpus is clamped", func(t *testing.T) {
		s := NewMemoryVectorStore()
		require.NoError(t, s.Add(ctx, docs))

		hits, err := s.Search(ctx, []float32{0, 1, 0}, 10)
		require.NoError(t, err)
		assert.Len(t, hits, 3)
	})

	t.Run("empty store returns no hits", func(t *testing.T) {
		s := NewMemoryVectorStore()
		hits, err := s.Search(ctx, []float32{1, 0, 0}, 5)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("non-positive k is rejected", func(t *testing.T) {
		s := NewMemoryVectorStore()
		_, err := s.Search(ctx, []float32{1, 0, 0}, 0)
		assert.Error(t, err)
	})

	t.Run("documents without embeddings are rejected", func(t *testing.T) {
		s := NewMemoryVectorStore()
		err := s.Add(ctx, []Document{{ID: "bad", Text: "no vector"}})
		assert.ErrorContains(t, err, "has no embedding")
	})

	t.Run("close clears the store", func(t *testing.T) {
		s := NewMemoryVectorStore()
		require.NoError(t, s.Add(ctx, docs))
		require.NoError(t, s.Close())
		assert.Equal(t, 0, s.Len())
	})
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	t.Run("mismatched lengths score zero", func(t *testing.T) {
		assert.Zero(t, cosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}))
	})

	t.Run("zero vector scores zero", func(t *testing.T) {
		assert.Zero(t, cosineSimilarity([]float32{0, 0}, []float32{1, 0}))
	})
}
