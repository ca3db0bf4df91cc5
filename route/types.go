package route

import "context"

// Tool identifies one of the four retrieval/answer strategies.
//
// The string values match the labels the planning oracle emits, so a Tool
// can be unmarshaled directly from a classification response.
type Tool string

const (
	// ToolDirectAnswer answers conversationally without any retrieval.
	ToolDirectAnswer Tool = "direct_answer"
	// ToolVectorSearch retrieves document chunks by embedding similarity.
	ToolVectorSearch Tool = "vector_search"
	// ToolGraphSearch queries relationship data from a knowledge graph.
	ToolGraphSearch Tool = "graph_search"
	// ToolWebSearch retrieves external information from the web.
	ToolWebSearch Tool = "web_search"
)

// Tools returns all four tools in declaration order.
func Tools() []Tool {
	return []Tool{ToolDirectAnswer, ToolVectorSearch, ToolGraphSearch, ToolWebSearch}
}

// Valid reports whether t is a member of the closed tool set.
func (t Tool) Valid() bool {
	switch t {
	case ToolDirectAnswer, ToolVectorSearch, ToolGraphSearch, ToolWebSearch:
		return true
	}
	return false
}

// String returns the wire label for the tool.
func (t Tool) String() string { return string(t) }

// VectorHit is a single document chunk returned by vector search.
type VectorHit struct {
	Text   string
	Score  float64
	Source string
}

// GraphHit is a single record returned by a graph query. Role is empty
// unless the query returned relationship types alongside names.
type GraphHit struct {
	Name string
	Role string
}

// WebHit is a single web search result.
type WebHit struct {
	Title   string
	URL     string
	Content string
	Score   float64
}

// WebResult is the full payload of a web search: a short synthesized
// answer, the ranked hits and the source URLs.
type WebResult struct {
	Answer  string
	Hits    []WebHit
	Sources []string
}

// Request is a single routing decision: one question bound to one tool.
type Request struct {
	Question string
	Tool     Tool
}

// Outcome is the result of routing one question. It records which tool
// finally produced the payload and, when the fallback chain fired, which
// tool was originally asked for and every tool attempted along the way.
//
// An Outcome is constructed once per request and never mutated afterwards.
type Outcome struct {
	// Tool is the strategy that produced the payload.
	Tool Tool

	// Source identifies the backend that served the request, e.g.
	// "pgvector", "falkordb" or "tavily". Empty for direct answers.
	Source string

	// Exactly one of the following is populated, matching Tool.
	// A direct answer carries none of them.
	VectorHits []VectorHit
	GraphHits  []GraphHit
	Web        *WebResult

	// FallbackUsed is true iff Tool differs from OriginalTool.
	FallbackUsed bool

	// OriginalTool is the tool the caller asked for when fallback fired,
	// and the zero value otherwise.
	OriginalTool Tool

	// FallbackChain lists every tool attempted, first to last. It is set
	// only when more than one fallback hop occurred.
	FallbackChain []Tool
}

// Empty reports whether the outcome carries no usable payload for its tool.
// A direct answer is never empty; a web result is treated as always
// non-empty because a free-form answer has no emptiness concept.
func (o *Outcome) Empty() bool {
	if o == nil {
		return true
	}
	switch o.Tool {
	case ToolVectorSearch:
		return len(o.VectorHits) == 0
	case ToolGraphSearch:
		return len(o.GraphHits) == 0
	case ToolDirectAnswer, ToolWebSearch:
		return false
	}
	return true
}

// VectorSearcher retrieves document chunks relevant to a question.
type VectorSearcher interface {
	// Name identifies the backend, used as the outcome's Source.
	Name() string
	Search(ctx context.Context, question string) ([]VectorHit, error)
}

// GraphSearcher answers relationship questions from a knowledge graph.
type GraphSearcher interface {
	Name() string
	Query(ctx context.Context, question string) ([]GraphHit, error)
}

// WebSearcher retrieves external information from the web.
type WebSearcher interface {
	Name() string
	Search(ctx context.Context, question string) (*WebResult, error)
}
