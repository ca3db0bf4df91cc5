package route

import (
	"context"

	"github.com/smallnest/ragroute/log"
)

// Router maps a tool label to the matching backend adapter and applies the
// fixed fallback chain when a backend returns nothing:
//
//	graph_search -> vector_search -> web_search
//	vector_search -> web_search
//
// Fallback is driven by emptiness only. An adapter error aborts the call
// without invoking fallback and is surfaced as an ExecutionError.
//
// A Router holds no mutable state across calls; the same instance may serve
// any number of independent requests.
type Router struct {
	vector VectorSearcher
	graph  GraphSearcher
	web    WebSearcher
	logger log.Logger
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithLogger sets the logger used for fallback and failure reporting.
func WithLogger(logger log.Logger) RouterOption {
	return func(r *Router) {
		r.logger = logger
	}
}

// NewRouter creates a router over the three backend adapters. Any adapter
// may be nil; routing to a tool whose adapter is missing fails with an
// ExecutionError.
func NewRouter(vector VectorSearcher, graph GraphSearcher, web WebSearcher, opts ...RouterOption) *Router {
	r := &Router{
		vector: vector,
		graph:  graph,
		web:    web,
		logger: log.GetDefaultLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RouteOption configures a single Route call. Both fallback flags default
// to true.
type RouteOption func(*routeConfig)

type routeConfig struct {
	vectorFallback bool
	webFallback    bool
}

// WithVectorFallback controls whether an empty graph result falls back to
// vector search.
func WithVectorFallback(enabled bool) RouteOption {
	return func(c *routeConfig) {
		c.vectorFallback = enabled
	}
}

// WithWebFallback controls whether an empty vector result (primary or
// reached via graph fallback) falls back to web search.
func WithWebFallback(enabled bool) RouteOption {
	return func(c *routeConfig) {
		c.webFallback = enabled
	}
}

// Route executes the given tool for the question and returns the outcome,
// escalating along the fallback chain when a backend returns no results and
// the corresponding flag is enabled.
//
// It fails with an InvalidToolError for a label outside the enumeration and
// with an ExecutionError when a backend adapter returns an error.
func (r *Router) Route(ctx context.Context, tool Tool, question string, opts ...RouteOption) (*Outcome, error) {
	if !tool.Valid() {
		return nil, &InvalidToolError{Tool: tool}
	}

	cfg := &routeConfig{
		vectorFallback: true,
		webFallback:    true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	switch tool {
	case ToolDirectAnswer:
		// No backend call: the synthesis oracle answers conversationally.
		return &Outcome{Tool: ToolDirectAnswer}, nil

	case ToolVectorSearch:
		return r.routeVector(ctx, question, cfg)

	case ToolGraphSearch:
		return r.routeGraph(ctx, question, cfg)

	case ToolWebSearch:
		// Terminal strategy: no further fallback target exists.
		return r.routeWeb(ctx, question, nil)
	}

	return nil, &InvalidToolError{Tool: tool}
}

func (r *Router) routeVector(ctx context.Context, question string, cfg *routeConfig) (*Outcome, error) {
	hits, err := r.searchVector(ctx, question)
	if err != nil {
		return nil, err
	}

	if len(hits) == 0 && cfg.webFallback {
		r.logger.Info("vector search returned no results, falling back to web search")
		outcome, err := r.routeWeb(ctx, question, nil)
		if err != nil {
			return nil, err
		}
		outcome.FallbackUsed = true
		outcome.OriginalTool = ToolVectorSearch
		return outcome, nil
	}

	return &Outcome{
		Tool:       ToolVectorSearch,
		Source:     r.vector.Name(),
		VectorHits: hits,
	}, nil
}

func (r *Router) routeGraph(ctx context.Context, question string, cfg *routeConfig) (*Outcome, error) {
	if r.graph == nil {
		return nil, &ExecutionError{Tool: ToolGraphSearch, Err: errNoAdapter}
	}

	hits, err := r.graph.Query(ctx, question)
	if err != nil {
		r.logger.Error("graph query failed: %v", err)
		return nil, &ExecutionError{Tool: ToolGraphSearch, Err: err}
	}

	if len(hits) > 0 || !cfg.vectorFallback {
		return &Outcome{
			Tool:      ToolGraphSearch,
			Source:    r.graph.Name(),
			GraphHits: hits,
		}, nil
	}

	r.logger.Info("graph search returned no results, falling back to vector search")
	vectorHits, err := r.searchVector(ctx, question)
	if err != nil {
		return nil, err
	}

	if len(vectorHits) == 0 && cfg.webFallback {
		r.logger.Info("vector search also returned no results, falling back to web search")
		outcome, err := r.routeWeb(ctx, question, nil)
		if err != nil {
			return nil, err
		}
		outcome.FallbackUsed = true
		outcome.OriginalTool = ToolGraphSearch
		outcome.FallbackChain = []Tool{ToolGraphSearch, ToolVectorSearch, ToolWebSearch}
		return outcome, nil
	}

	return &Outcome{
		Tool:         ToolVectorSearch,
		Source:       r.vector.Name(),
		VectorHits:   vectorHits,
		FallbackUsed: true,
		OriginalTool: ToolGraphSearch,
	}, nil
}

func (r *Router) routeWeb(ctx context.Context, question string, _ *routeConfig) (*Outcome, error) {
	if r.web == nil {
		return nil, &ExecutionError{Tool: ToolWebSearch, Err: errNoAdapter}
	}

	result, err := r.web.Search(ctx, question)
	if err != nil {
		r.logger.Error("web search failed: %v", err)
		return nil, &ExecutionError{Tool: ToolWebSearch, Err: err}
	}

	return &Outcome{
		Tool:   ToolWebSearch,
		Source: r.web.Name(),
		Web:    result,
	}, nil
}

func (r *Router) searchVector(ctx context.Context, question string) ([]VectorHit, error) {
	if r.vector == nil {
		return nil, &ExecutionError{Tool: ToolVectorSearch, Err: errNoAdapter}
	}

	hits, err := r.vector.Search(ctx, question)
	if err != nil {
		r.logger.Error("vector search failed: %v", err)
		return nil, &ExecutionError{Tool: ToolVectorSearch, Err: err}
	}
	return hits, nil
}
