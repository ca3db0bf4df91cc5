package store

import (
	"context"
	"sort"
	"sync"

	"github.com/smallnest/ragroute/route"
)

// Triple is a single directed relationship in the knowledge graph.
type Triple struct {
	Subject  string
	Relation string
	Object   string
}

// MemoryGraph is an in-memory knowledge graph backend. It answers
// relationship questions by classifying them with the keyword decision
// table and walking its triples. Useful for tests and demos where no
// graph database is available.
type MemoryGraph struct {
	mu      sync.RWMutex
	name    string
	triples []Triple
}

var _ route.GraphSearcher = (*MemoryGraph)(nil)

// NewMemoryGraph creates an empty in-memory graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{name: "graph-memory"}
}

// Name identifies the backend in outcome provenance.
func (g *MemoryGraph) Name() string { return g.name }

// Add merges triples into the graph, skipping exact duplicates.
func (g *MemoryGraph) Add(triples ...Triple) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, t := range triples {
		if g.contains(t) {
			continue
		}
		g.triples = append(g.triples, t)
	}
}

func (g *MemoryGraph) contains(t Triple) bool {
	for _, existing := range g.triples {
		if existing == t {
			return true
		}
	}
	return false
}

// Len returns the number of stored triples.
func (g *MemoryGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.triples)
}

// Query classifies the question and returns the matching entities.
// An unanswerable question yields an empty slice, not an error.
func (g *MemoryGraph) Query(ctx context.Context, question string) ([]route.GraphHit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	intent := ClassifyGraphQuestion(question)

	g.mu.RLock()
	defer g.mu.RUnlock()

	var hits []route.GraphHit
	switch intent.kind {
	case intentRole:
		for _, t := range g.triples {
			if t.Relation == intent.role && t.Object == intent.org {
				hits = append(hits, route.GraphHit{Name: t.Subject, Role: t.Relation})
			}
		}
	case intentProducts:
		for _, t := range g.triples {
			if t.Relation == "DEVELOPS" && t.Subject == intent.org {
				hits = append(hits, route.GraphHit{Name: t.Object})
			}
		}
	case intentTechnologies:
		for _, t := range g.triples {
			if t.Relation == "USES" && t.Subject == intent.org {
				hits = append(hits, route.GraphHit{Name: t.Object})
			}
		}
	default:
		for _, t := range g.triples {
			if t.Object != intent.org {
				continue
			}
			for _, role := range leadershipRoles {
				if t.Relation == role {
					hits = append(hits, route.GraphHit{Name: t.Subject, Role: t.Relation})
					break
				}
			}
		}
		sort.SliceStable(hits, func(a, b int) bool { return hits[a].Role < hits[b].Role })
	}
	return hits, nil
}

// DemoTriples returns seed data for a small knowledge graph about AI
// organizations, their leadership, products, and technologies.
func DemoTriples() []Triple {
	return []Triple{
		{Subject: "Sam Altman", Relation: "IS_CEO_OF", Object: "OpenAI"},
		{Subject: "Greg Brockman", Relation: "IS_PRESIDENT_OF", Object: "OpenAI"},
		{Subject: "Ilya Sutskever", Relation: "IS_CHIEF_SCIENTIST_AT", Object: "OpenAI"},
		{Subject: "OpenAI", Relation: "DEVELOPS", Object: "GPT-4"},
		{Subject: "OpenAI", Relation: "DEVELOPS", Object: "ChatGPT"},
		{Subject: "OpenAI", Relation: "USES", Object: "Vector Database"},
		{Subject: "OpenAI", Relation: "USES", Object: "Graph Database"},
	}
}
