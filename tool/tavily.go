package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/smallnest/ragroute/route"
)

// TavilySearch queries the Tavily Search API for external information.
// Besides raw results, Tavily returns a short synthesized answer which is
// carried through to the outcome.
type TavilySearch struct {
	apiKey     string
	baseURL    string
	maxResults int
	client     *http.Client
}

var _ route.WebSearcher = (*TavilySearch)(nil)

// TavilyOption configures a TavilySearch.
type TavilyOption func(*TavilySearch)

// WithTavilyBaseURL sets the API endpoint. Useful for tests.
func WithTavilyBaseURL(baseURL string) TavilyOption {
	return func(t *TavilySearch) {
		t.baseURL = baseURL
	}
}

// WithTavilyMaxResults sets the number of results to request (1-20).
func WithTavilyMaxResults(n int) TavilyOption {
	return func(t *TavilySearch) {
		if n < 1 {
			n = 1
		}
		if n > 20 {
			n = 20
		}
		t.maxResults = n
	}
}

// WithTavilyHTTPClient sets the HTTP client used for requests.
func WithTavilyHTTPClient(client *http.Client) TavilyOption {
	return func(t *TavilySearch) {
		t.client = client
	}
}

// NewTavilySearch creates a Tavily web search backend. If apiKey is empty,
// it falls back to the TAVILY_API_KEY environment variable.
func NewTavilySearch(apiKey string, opts ...TavilyOption) (*TavilySearch, error) {
	if apiKey == "" {
		apiKey = os.Getenv("TAVILY_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("TAVILY_API_KEY not set")
	}

	t := &TavilySearch{
		apiKey:     apiKey,
		baseURL:    "https://api.tavily.com/search",
		maxResults: 5,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Name identifies the backend in outcome provenance.
func (t *TavilySearch) Name() string {
	return "tavily"
}

type tavilyRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	MaxResults    int    `json:"max_results"`
	IncludeAnswer bool   `json:"include_answer"`
}

type tavilyResponse struct {
	Answer  string `json:"answer"`
	Results []struct {
		Title   string  `json:"title"`
		URL     string  `json:"url"`
		Content string  `json:"content"`
		Score   float64 `json:"score"`
	} `json:"results"`
}

// Search runs the query and maps Tavily's response to a WebResult.
func (t *TavilySearch) Search(ctx context.Context, question string) (*route.WebResult, error) {
	body, err := json.Marshal(tavilyRequest{
		APIKey:        t.apiKey,
		Query:         question,
		MaxResults:    t.maxResults,
		IncludeAnswer: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily api returned status: %d", resp.StatusCode)
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	result := &route.WebResult{
		Answer: parsed.Answer,
	}
	for _, r := range parsed.Results {
		result.Hits = append(result.Hits, route.WebHit{
			Title:   r.Title,
			URL:     r.URL,
			Content: r.Content,
			Score:   r.Score,
		})
		if r.URL != "" {
			result.Sources = append(result.Sources, r.URL)
		}
	}
	return result, nil
}
