package tool

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBraveSearch(t *testing.T) {
	t.Run("requires an api key", func(t *testing.T) {
		t.Setenv("BRAVE_API_KEY", "")
		_, err := NewBraveSearch("")
		assert.ErrorContains(t, err, "BRAVE_API_KEY")
	})

	t.Run("clamps count", func(t *testing.T) {
		s, err := NewBraveSearch("key", WithBraveCount(0))
		require.NoError(t, err)
		assert.Equal(t, 1, s.count)
	})
}

func TestBraveSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the response to a web result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "secret", r.Header.Get("X-Subscription-Token"))
			assert.Equal(t, "latest AI news", r.URL.Query().Get("q"))
			assert.Equal(t, "2", r.URL.Query().Get("count"))

			json.NewEncoder(w).Encode(map[string]any{
				"web": map[string]any{
					"results": []map[string]any{
						{"title": "AI roundup", "url": "https://example.com/ai", "description": "Weekly roundup"},
						{"title": "Another story", "url": "https://example.com/story", "description": "More news"},
					},
				},
			})
		}))
		defer srv.Close()

		s, err := NewBraveSearch("secret",
			WithBraveBaseURL(srv.URL), WithBraveCount(2))
		require.NoError(t, err)

		result, err := s.Search(ctx, "latest AI news")
		require.NoError(t, err)

		assert.Empty(t, result.Answer)
		require.Len(t, result.Hits, 2)
		assert.Equal(t, "AI roundup", result.Hits[0].Title)
		assert.Equal(t, "Weekly roundup", result.Hits[0].Content)
		assert.Equal(t, []string{"https://example.com/ai", "https://example.com/story"}, result.Sources)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		s, err := NewBraveSearch("key", WithBraveBaseURL(srv.URL))
		require.NoError(t, err)

		_, err = s.Search(ctx, "anything")
		assert.ErrorContains(t, err, "status: 429")
	})
}
