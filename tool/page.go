package tool

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/smallnest/ragroute/route"
)

// PageFetcher downloads web pages and extracts their readable text. It is
// used to enrich search hits whose snippets are too thin to answer from.
type PageFetcher struct {
	client  *http.Client
	maxText int
}

// PageFetcherOption configures a PageFetcher.
type PageFetcherOption func(*PageFetcher)

// WithPageHTTPClient sets the HTTP client used for requests.
func WithPageHTTPClient(client *http.Client) PageFetcherOption {
	return func(p *PageFetcher) {
		p.client = client
	}
}

// WithPageMaxText caps the extracted text length in characters.
func WithPageMaxText(n int) PageFetcherOption {
	return func(p *PageFetcher) {
		if n > 0 {
			p.maxText = n
		}
	}
}

// NewPageFetcher creates a fetcher with a 4000-character text cap.
func NewPageFetcher(opts ...PageFetcherOption) *PageFetcher {
	p := &PageFetcher{
		client:  http.DefaultClient,
		maxText: 4000,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FetchText downloads the page and returns its visible text with markup,
// scripts and boilerplate chrome stripped.
func (p *PageFetcher) FetchText(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer, aside").Remove()

	text := collapseWhitespace(doc.Find("body").Text())
	if len(text) > p.maxText {
		text = text[:p.maxText]
	}
	return text, nil
}

// Enrich replaces thin hit snippets with the full page text. Hits whose
// content already reaches minContent characters are left alone, as are
// hits whose pages cannot be fetched.
func (p *PageFetcher) Enrich(ctx context.Context, result *route.WebResult, minContent int) {
	if result == nil {
		return
	}
	for i, hit := range result.Hits {
		if hit.URL == "" || len(hit.Content) >= minContent {
			continue
		}
		text, err := p.FetchText(ctx, hit.URL)
		if err != nil || text == "" {
			continue
		}
		result.Hits[i].Content = text
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
