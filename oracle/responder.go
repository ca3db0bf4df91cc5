package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/smallnest/ragroute/route"
)

// Answer is the final synthesized response for one question.
type Answer struct {
	Answer      string
	Explanation string
	Tool        route.Tool
	Evidence    any
}

// Responder turns a routing outcome into a grounded natural-language
// answer. Retrieval-backed answers are synthesized strictly from the
// supplied evidence; when the evidence is empty a deterministic per-tool
// message is returned without consulting the oracle.
type Responder struct {
	completer Completer
}

// NewResponder creates a responder over the given completer.
func NewResponder(completer Completer) *Responder {
	return &Responder{completer: completer}
}

// Respond generates the final answer for a question given the tool that
// served it, the planner's reason, and the routing outcome.
func (r *Responder) Respond(ctx context.Context, question string, tool route.Tool, reason string, outcome *route.Outcome) (*Answer, error) {
	switch tool {
	case route.ToolDirectAnswer:
		return r.respondDirect(ctx, question)
	case route.ToolVectorSearch:
		return r.respondVector(ctx, question, reason, outcome)
	case route.ToolGraphSearch:
		return r.respondGraph(ctx, question, reason, outcome)
	case route.ToolWebSearch:
		return r.respondWeb(ctx, question, reason, outcome)
	}
	return nil, &route.InvalidToolError{Tool: tool}
}

func (r *Responder) respondDirect(ctx context.Context, question string) (*Answer, error) {
	prompt := fmt.Sprintf("You are a helpful AI assistant. Answer the following question directly and naturally.\n\nQuestion: %s\n\nProvide a clear, concise, and friendly response.", question)

	answer, err := r.completer.Complete(ctx, CompletionRequest{
		System:      directAnswerSystem,
		User:        prompt,
		Temperature: 0.7,
		MaxTokens:   150,
	})
	if err != nil {
		return nil, fmt.Errorf("direct answer synthesis failed: %w", err)
	}

	return &Answer{
		Answer:      answer,
		Explanation: "Responded directly without needing external data retrieval.",
		Tool:        route.ToolDirectAnswer,
	}, nil
}

func (r *Responder) respondVector(ctx context.Context, question, reason string, outcome *route.Outcome) (*Answer, error) {
	if !route.IsValid(route.ToolVectorSearch, outcome) {
		return noResultAnswer(route.ToolVectorSearch, reason), nil
	}

	chunks := make([]string, 0, len(outcome.VectorHits))
	for _, hit := range outcome.VectorHits {
		if strings.TrimSpace(hit.Text) != "" {
			chunks = append(chunks, hit.Text)
		}
	}

	prompt := fmt.Sprintf("Answer the question using ONLY the context below.\nIf the answer is not present in the context, say you do not know.\n\nContext:\n%s\n\nQuestion:\n%s\n\nAnswer:",
		strings.Join(chunks, "\n\n"), question)

	answer, err := r.completer.Complete(ctx, CompletionRequest{
		System:      vectorAnswerSystem,
		User:        prompt,
		Temperature: 0.1,
		MaxTokens:   400,
	})
	if err != nil {
		return nil, fmt.Errorf("vector answer synthesis failed: %w", err)
	}

	return &Answer{
		Answer:      answer,
		Explanation: explanationFor(route.ToolVectorSearch, reason),
		Tool:        route.ToolVectorSearch,
		Evidence:    summarizeVectorHits(outcome.VectorHits),
	}, nil
}

// graphRolePhrases maps question keywords to the role wording used in the
// synthesized answer. Evaluated in order, first match wins.
var graphRolePhrases = []struct {
	keyword string
	phrase  string
}{
	{"ceo", "CEO"},
	{"president", "President"},
	{"chief scientist", "Chief Scientist"},
}

func (r *Responder) respondGraph(ctx context.Context, question, reason string, outcome *route.Outcome) (*Answer, error) {
	if !route.IsValid(route.ToolGraphSearch, outcome) {
		return noResultAnswer(route.ToolGraphSearch, reason), nil
	}

	names := make([]string, 0, len(outcome.GraphHits))
	for _, hit := range outcome.GraphHits {
		if hit.Name != "" {
			names = append(names, hit.Name)
		}
	}

	prompt := graphPrompt(question, names, outcome.GraphHits)

	answer, err := r.completer.Complete(ctx, CompletionRequest{
		System:      graphAnswerSystem,
		User:        prompt,
		Temperature: 0.1,
		MaxTokens:   300,
	})
	if err != nil {
		return nil, fmt.Errorf("graph answer synthesis failed: %w", err)
	}

	return &Answer{
		Answer:      answer,
		Explanation: explanationFor(route.ToolGraphSearch, reason),
		Tool:        route.ToolGraphSearch,
		Evidence:    summarizeGraphHits(outcome.GraphHits),
	}, nil
}

// graphPrompt shapes the synthesis prompt for graph results: single-name
// role answers get a fixed sentence format, product listings get an
// enumeration, anything else falls back to the raw records.
func graphPrompt(question string, names []string, hits []route.GraphHit) string {
	lower := strings.ToLower(question)

	for _, role := range graphRolePhrases {
		if !strings.Contains(lower, role.keyword) {
			continue
		}
		if len(names) == 1 {
			return fmt.Sprintf("Question: %s\n\nThe graph database returned: %s\n\nProvide a clear, direct answer in the format: 'The %s of [organization] is [name].'",
				question, names[0], role.phrase)
		}
		return fmt.Sprintf("Question: %s\n\nThe graph database returned these names for the %s role: %s\n\nProvide a clear answer listing them.",
			question, role.phrase, strings.Join(names, ", "))
	}

	if strings.Contains(lower, "product") || strings.Contains(lower, "develop") {
		return fmt.Sprintf("Question: %s\n\nThe graph database returned these products: %s\n\nProvide a clear answer listing the products developed by the organization.",
			question, strings.Join(names, ", "))
	}

	records, _ := json.MarshalIndent(summarizeGraphHits(hits), "", "  ")
	return fmt.Sprintf("Question: %s\n\nGraph database results:\n%s\n\nProvide a clear answer about the relationships or organizational structure based on this data.",
		question, records)
}

func (r *Responder) respondWeb(ctx context.Context, question, reason string, outcome *route.Outcome) (*Answer, error) {
	if outcome == nil || outcome.Web == nil {
		return noResultAnswer(route.ToolWebSearch, reason), nil
	}

	evidence, err := json.MarshalIndent(outcome.Web, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding web evidence: %w", err)
	}

	prompt := fmt.Sprintf("You are a helpful AI assistant. Answer the question based on web search results.\n\nQuestion: %s\n\nWeb search results:\n%s\n\nProvide a factual answer summarizing the most relevant information from the search results. Be concise and cite key facts.",
		question, evidence)

	answer, err := r.completer.Complete(ctx, CompletionRequest{
		System:      webAnswerSystem,
		User:        prompt,
		Temperature: 0.3,
		MaxTokens:   400,
	})
	if err != nil {
		return nil, fmt.Errorf("web answer synthesis failed: %w", err)
	}

	return &Answer{
		Answer:      answer,
		Explanation: explanationFor(route.ToolWebSearch, reason),
		Tool:        route.ToolWebSearch,
		Evidence:    summarizeWebHits(outcome.Web.Hits),
	}, nil
}

// noResultAnswer is the deterministic per-tool message used when a tool
// produced no usable evidence. The oracle is never asked to answer from
// nothing.
func noResultAnswer(tool route.Tool, reason string) *Answer {
	var msg string
	switch tool {
	case route.ToolVectorSearch:
		msg = "No relevant information was found in the uploaded documents. Please try rephrasing your question or check if the information exists in the knowledge base."
	case route.ToolGraphSearch:
		msg = "No relevant relationship data was found in the graph. The requested information may not be in our organizational database."
	case route.ToolWebSearch:
		msg = "No relevant information was found from web sources. Please try rephrasing your query or using different search terms."
	default:
		msg = fmt.Sprintf("I attempted to find information using %s, but no relevant data was found. Could you rephrase your question or provide more context?", tool)
	}

	return &Answer{
		Answer:      msg,
		Explanation: fmt.Sprintf("No results found from %s. %s", tool, reason),
		Tool:        tool,
	}
}

func explanationFor(tool route.Tool, reason string) string {
	return fmt.Sprintf("Answer generated using %s. %s", tool, reason)
}

// Evidence summaries keep the final response compact instead of exposing
// the full raw payloads.

type vectorEvidence struct {
	Text   string  `json:"text"`
	Score  float64 `json:"score"`
	Source string  `json:"source"`
}

func summarizeVectorHits(hits []route.VectorHit) []vectorEvidence {
	const maxHits, maxText = 3, 200

	summary := make([]vectorEvidence, 0, maxHits)
	for _, hit := range hits {
		if len(summary) == maxHits {
			break
		}
		summary = append(summary, vectorEvidence{
			Text:   truncate(hit.Text, maxText),
			Score:  hit.Score,
			Source: hit.Source,
		})
	}
	return summary
}

type graphEvidence struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

func summarizeGraphHits(hits []route.GraphHit) []graphEvidence {
	const maxHits = 5

	summary := make([]graphEvidence, 0, maxHits)
	for _, hit := range hits {
		if len(summary) == maxHits {
			break
		}
		summary = append(summary, graphEvidence{Name: hit.Name, Role: hit.Role})
	}
	return summary
}

type webEvidence struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

func summarizeWebHits(hits []route.WebHit) []webEvidence {
	const maxHits, maxSnippet = 3, 150

	summary := make([]webEvidence, 0, maxHits)
	for _, hit := range hits {
		if len(summary) == maxHits {
			break
		}
		summary = append(summary, webEvidence{
			Title:   hit.Title,
			URL:     hit.URL,
			Snippet: truncate(hit.Content, maxSnippet),
		})
	}
	return summary
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Back up to a rune boundary so the cut never leaves invalid UTF-8.
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
