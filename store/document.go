package store

import (
	"strings"

	"github.com/google/uuid"
)

// Document is a unit of ingested text with its metadata and, once
// embedded, its vector.
type Document struct {
	ID        string
	Text      string
	Source    string
	Metadata  map[string]any
	Embedding []float32
}

// SimpleTextSplitter splits text into fixed-size chunks with overlap,
// preferring to break at paragraph and sentence boundaries.
type SimpleTextSplitter struct {
	chunkSize    int
	chunkOverlap int
}

// NewSimpleTextSplitter creates a splitter with the given chunk size and
// overlap in characters.
func NewSimpleTextSplitter(chunkSize, chunkOverlap int) *SimpleTextSplitter {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 5
	}
	return &SimpleTextSplitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

// SplitText splits the text into chunks.
func (s *SimpleTextSplitter) SplitText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= s.chunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + s.chunkSize
		if end >= len(text) {
			chunks = append(chunks, strings.TrimSpace(text[start:]))
			break
		}

		// Prefer a natural boundary near the end of the window.
		cut := end
		if idx := strings.LastIndex(text[start:end], "\n\n"); idx > s.chunkSize/2 {
			cut = start + idx
		} else if idx := strings.LastIndexAny(text[start:end], ".!?"); idx > s.chunkSize/2 {
			cut = start + idx + 1
		} else if idx := strings.LastIndex(text[start:end], " "); idx > s.chunkSize/2 {
			cut = start + idx
		}

		chunk := strings.TrimSpace(text[start:cut])
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		// The overlapped window must still move forward, or a cut landing
		// within the overlap would repeat the same chunk forever.
		next := cut - s.chunkOverlap
		if next <= start {
			next = cut
		}
		start = next
	}

	return chunks
}

// SplitDocuments splits each document into chunk documents, carrying over
// the source and metadata and assigning fresh chunk IDs.
func (s *SimpleTextSplitter) SplitDocuments(docs []Document) []Document {
	var out []Document
	for _, doc := range docs {
		for i, chunk := range s.SplitText(doc.Text) {
			metadata := make(map[string]any, len(doc.Metadata)+2)
			for k, v := range doc.Metadata {
				metadata[k] = v
			}
			metadata["chunk_index"] = i
			if doc.ID != "" {
				metadata["parent_id"] = doc.ID
			}

			out = append(out, Document{
				ID:       uuid.NewString(),
				Text:     chunk,
				Source:   doc.Source,
				Metadata: metadata,
			})
		}
	}
	return out
}
