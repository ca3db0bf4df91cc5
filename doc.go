// RagRoute - Question Routing for Multi-Source Retrieval
//
// RagRoute routes natural-language questions to the retrieval strategy
// most likely to answer them - a direct conversational reply, vector
// search over embedded documents, a knowledge-graph lookup, or a live web
// search - and falls back deterministically when internal sources come up
// empty.
//
// # Quick Start
//
// Install the package:
//
//	go get github.com/smallnest/ragroute
//
// Basic example:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//
//		"github.com/smallnest/ragroute/route"
//		"github.com/smallnest/ragroute/store"
//	)
//
//	func main() {
//		graph := store.NewMemoryGraph()
//		graph.Add(store.DemoTriples()...)
//
//		router := route.NewRouter(retriever, graph, webSearch)
//
//		outcome, err := router.Route(context.Background(),
//			route.ToolGraphSearch, "Who is the CEO of OpenAI?")
//		if err != nil {
//			panic(err)
//		}
//		fmt.Println(outcome.Tool, outcome.GraphHits)
//	}
//
// # Packages
//
//   - route: the routing core - tool enumeration, the router with its
//     deterministic fallback chain, outcome validation and escalation
//   - oracle: the LLM boundary - planning which tool to use and
//     synthesizing grounded answers
//   - store: retrieval backends - pgvector and in-memory vector stores,
//     FalkorDB and in-memory knowledge graphs
//   - tool: web search backends - Tavily and Brave - plus page fetching
//   - agent: the full plan-execute-validate-respond loop
//   - config: environment-driven configuration
//   - log: the logging facade shared by all packages
//
// # Fallback Semantics
//
// Fallback fires on emptiness only, never on error:
//
//   - graph_search with no hits falls back to vector_search, then web_search
//   - vector_search with no hits falls back to web_search
//   - a backend error aborts routing and surfaces to the caller
//
// Every outcome records which tool finally served it, whether fallback
// fired, and the tools attempted along the way.
package ragroute
