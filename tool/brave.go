package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/smallnest/ragroute/route"
)

// BraveSearch is an alternative web search backend built on the Brave
// Search API. Brave returns no synthesized answer, so the WebResult's
// Answer field stays empty and callers rely on the hits.
type BraveSearch struct {
	apiKey  string
	baseURL string
	count   int
	country string
	lang    string
	client  *http.Client
}

var _ route.WebSearcher = (*BraveSearch)(nil)

// BraveOption configures a BraveSearch.
type BraveOption func(*BraveSearch)

// WithBraveBaseURL sets the API endpoint. Useful for tests.
func WithBraveBaseURL(baseURL string) BraveOption {
	return func(b *BraveSearch) {
		b.baseURL = baseURL
	}
}

// WithBraveCount sets the number of results to return (1-20).
func WithBraveCount(count int) BraveOption {
	return func(b *BraveSearch) {
		if count < 1 {
			count = 1
		}
		if count > 20 {
			count = 20
		}
		b.count = count
	}
}

// WithBraveCountry sets the country code for search results (e.g., "US").
func WithBraveCountry(country string) BraveOption {
	return func(b *BraveSearch) {
		b.country = country
	}
}

// WithBraveLang sets the language code for search results (e.g., "en").
func WithBraveLang(lang string) BraveOption {
	return func(b *BraveSearch) {
		b.lang = lang
	}
}

// WithBraveHTTPClient sets the HTTP client used for requests.
func WithBraveHTTPClient(client *http.Client) BraveOption {
	return func(b *BraveSearch) {
		b.client = client
	}
}

// NewBraveSearch creates a Brave web search backend. If apiKey is empty,
// it falls back to the BRAVE_API_KEY environment variable.
func NewBraveSearch(apiKey string, opts ...BraveOption) (*BraveSearch, error) {
	if apiKey == "" {
		apiKey = os.Getenv("BRAVE_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("BRAVE_API_KEY not set")
	}

	b := &BraveSearch{
		apiKey:  apiKey,
		baseURL: "https://api.search.brave.com/res/v1/web/search",
		count:   5,
		country: "US",
		lang:    "en",
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Name identifies the backend in outcome provenance.
func (b *BraveSearch) Name() string {
	return "brave"
}

type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"results"`
	} `json:"web"`
}

// Search runs the query and maps Brave's response to a WebResult.
func (b *BraveSearch) Search(ctx context.Context, question string) (*route.WebResult, error) {
	params := url.Values{}
	params.Set("q", question)
	params.Set("count", fmt.Sprintf("%d", b.count))
	if b.country != "" {
		params.Set("country", b.country)
	}
	if b.lang != "" {
		params.Set("search_lang", b.lang)
	}

	reqURL := fmt.Sprintf("%s?%s", b.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brave api returned status: %d", resp.StatusCode)
	}

	var parsed braveResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	result := &route.WebResult{}
	for _, r := range parsed.Web.Results {
		result.Hits = append(result.Hits, route.WebHit{
			Title:   r.Title,
			URL:     r.URL,
			Content: r.Description,
		})
		if r.URL != "" {
			result.Sources = append(result.Sources, r.URL)
		}
	}
	return result, nil
}
