// Package store provides the retrieval backends behind the routing core:
// vector search over embedded document chunks and knowledge-graph lookups
// over entity relationships.
//
// # Vector Search
//
// Documents are split into overlapping chunks, embedded, and stored in a
// VectorStore. Two implementations are included:
//   - MemoryVectorStore: in-process cosine-similarity search for tests
//     and demos
//   - PgVectorStore: PostgreSQL with the pgvector extension for
//     production deployments
//
// The Retriever ties a VectorStore to an Embedder and implements the
// router's VectorSearcher interface:
//
//	store := store.NewMemoryVectorStore()
//	retriever := store.NewRetriever(store, embedder, store.WithTopK(5))
//	hits, err := retriever.Search(ctx, "What is a vector database?")
//
// # Graph Search
//
// Relationship questions are translated to graph queries through an
// ordered keyword decision table (see ClassifyGraphQuestion): leadership
// roles, products, and technologies, scoped to a detected organization.
// Two backends share that translation:
//   - MemoryGraph: in-process triple store
//   - FalkorDBGraph: FalkorDB over the Redis protocol via GRAPH.QUERY
//
//	graph, err := store.NewFalkorDBGraph("falkordb://localhost:6379/ragroute")
//	if err != nil {
//	    return err
//	}
//	defer graph.Close()
//	hits, err := graph.Query(ctx, "Who is the CEO of OpenAI?")
//
// Both kinds of backend report absence as an empty result set, never as
// an error, so the router can distinguish emptiness from failure.
package store
