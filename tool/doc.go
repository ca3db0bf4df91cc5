// Package tool provides web search backends for the routing core.
//
// TavilySearch is the primary backend: it returns ranked results plus a
// short synthesized answer. BraveSearch is an alternative that returns
// results only. Both implement route.WebSearcher:
//
//	search, err := tool.NewTavilySearch("", tool.WithTavilyMaxResults(5))
//	if err != nil {
//	    return err
//	}
//	result, err := search.Search(ctx, "latest AI developments")
//
// PageFetcher complements the search backends by downloading result pages
// and extracting their readable text, so thin snippets can be replaced
// with real content before synthesis.
package tool
