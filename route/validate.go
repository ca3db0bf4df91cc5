package route

import "strings"

// IsValid classifies an outcome's payload as usable or not, applying
// per-tool rules:
//
//   - direct_answer and web_search are always valid: a free-form answer
//     has no emptiness concept.
//   - graph_search is valid iff at least one hit carries a non-empty name.
//   - vector_search is valid iff at least one hit carries non-blank text.
//
// A nil or empty payload is invalid for the two retrieval tools. The
// predicate is pure and deterministic; callers use it to decide whether to
// escalate beyond the router's built-in chain.
func IsValid(tool Tool, outcome *Outcome) bool {
	switch tool {
	case ToolDirectAnswer, ToolWebSearch:
		return true
	case ToolGraphSearch:
		if outcome == nil {
			return false
		}
		for _, hit := range outcome.GraphHits {
			if hit.Name != "" {
				return true
			}
		}
		return false
	case ToolVectorSearch:
		if outcome == nil {
			return false
		}
		for _, hit := range outcome.VectorHits {
			if strings.TrimSpace(hit.Text) != "" {
				return true
			}
		}
		return false
	}
	return false
}
