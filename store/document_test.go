package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTextSplitter(t *testing.T) {
	t.Run("short text stays in one chunk", func(t *testing.T) {
		splitter := NewSimpleTextSplitter(100, 20)
		chunks := splitter.SplitText("A short note about vector search.")
		assert.Equal(t, []string{"A short note about vector search."}, chunks)
	})

	t.Run("empty text yields no chunks", func(t *testing.T) {
		splitter := NewSimpleTextSplitter(100, 20)
		assert.Nil(t, splitter.SplitText("   \n  "))
	})

	t.Run("long text is split at sentence boundaries", func(t *testing.T) {
		splitter := NewSimpleTextSplitter(80, 10)
		text := strings.Repeat("Vector databases store embeddings for similarity search. ", 5)

		chunks := splitter.SplitText(text)
		require.Greater(t, len(chunks), 1)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk), 80)
			assert.NotEmpty(t, chunk)
		}
		assert.True(t, strings.HasSuffix(chunks[0], "."))
	})

	t.Run("high overlap still terminates", func(t *testing.T) {
		// An overlap close to the chunk size used to stall the window
		// when a cut landed inside the overlapped region.
		splitter := NewSimpleTextSplitter(10, 9)
		text := strings.TrimSpace(strings.Repeat("a ", 40))

		done := make(chan []string, 1)
		go func() { done <- splitter.SplitText(text) }()

		select {
		case chunks := <-done:
			require.NotEmpty(t, chunks)
			for _, chunk := range chunks {
				assert.LessOrEqual(t, len(chunk), 10)
				assert.NotEmpty(t, chunk)
			}
		case <-time.After(3 * time.Second):
			t.Fatal("SplitText did not terminate")
		}
	})

	t.Run("invalid sizes fall back to defaults", func(t *testing.T) {
		splitter := NewSimpleTextSplitter(0, -1)
		assert.Equal(t, 1000, splitter.chunkSize)
		assert.Equal(t, 200, splitter.chunkOverlap)
	})
}

func TestSplitDocuments(t *testing.T) {
	splitter := NewSimpleTextSplitter(60, 10)
	docs := []Document{
		{
			ID:       "doc-1",
			Text:     strings.Repeat("Knowledge graphs capture entity relationships. ", 4),
			Source:   "kg.md",
			Metadata: map[string]any{"topic": "graphs"},
		},
	}

	chunks := splitter.SplitDocuments(docs)
	require.Greater(t, len(chunks), 1)

	for i, chunk := range chunks {
		assert.NotEmpty(t, chunk.ID)
		assert.NotEqual(t, "doc-1", chunk.ID)
		assert.Equal(t, "kg.md", chunk.Source)
		assert.Equal(t, "graphs", chunk.Metadata["topic"])
		assert.Equal(t, i, chunk.Metadata["chunk_index"])
		assert.Equal(t, "doc-1", chunk.Metadata["parent_id"])
	}

	t.Run("chunk IDs are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, chunk := range chunks {
			assert.False(t, seen[chunk.ID])
			seen[chunk.ID] = true
		}
	})
}
