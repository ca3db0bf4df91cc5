// Package route implements the retrieval routing core: given a question and
// a tool label chosen by the planning oracle, it invokes the matching
// backend adapter and escalates along a fixed fallback chain when a backend
// returns nothing useful.
//
// # Tools
//
// Four strategies form a closed set:
//
//	direct_answer  - answer conversationally, no retrieval
//	vector_search  - document chunks by embedding similarity
//	graph_search   - relationship records from a knowledge graph
//	web_search     - external web results (terminal, no further fallback)
//
// # Fallback chain
//
// Fallback fires on empty results only, never on errors, and follows a
// strict order with no cycles:
//
//	graph_search -> vector_search -> web_search
//	vector_search -> web_search
//
// Every outcome records the tool that finally served it, whether fallback
// fired, the originally requested tool and, for the full two-hop chain, the
// complete list of attempts.
//
// # Usage
//
//	router := route.NewRouter(vectorAdapter, graphAdapter, webAdapter)
//
//	outcome, err := router.Route(ctx, route.ToolGraphSearch, "Who is the CEO of OpenAI?")
//	if err != nil {
//		return err
//	}
//	if outcome.FallbackUsed {
//		fmt.Printf("answered by %s instead of %s\n", outcome.Tool, outcome.OriginalTool)
//	}
//
// Callers that route with fallback disabled can re-check an outcome with
// IsValid and escalate once to web search with Escalate.
//
// A Router is stateless across calls and safe for use from multiple
// goroutines as long as its adapters are.
package route
