package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/smallnest/ragroute/route"
)

// DefaultGraphName is used when the connection URL carries no graph path.
const DefaultGraphName = "ragroute"

// FalkorDBGraph answers relationship questions against a FalkorDB graph
// reached over the Redis protocol. Questions are translated to openCypher
// with the keyword decision table and executed via GRAPH.QUERY.
type FalkorDBGraph struct {
	client redis.UniversalClient
	graph  string
	name   string
}

var _ route.GraphSearcher = (*FalkorDBGraph)(nil)

// NewFalkorDBGraph connects to a FalkorDB instance. The connection string
// has the form falkordb://host:port/graph_name; the graph name defaults to
// DefaultGraphName when the path is empty.
func NewFalkorDBGraph(connectionString string) (*FalkorDBGraph, error) {
	u, err := url.Parse(connectionString)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid connection string: missing host")
	}

	graphName := strings.TrimPrefix(u.Path, "/")
	if graphName == "" {
		graphName = DefaultGraphName
	}

	client := redis.NewClient(&redis.Options{
		Addr: u.Host,
	})

	return NewFalkorDBGraphWithClient(client, graphName), nil
}

// NewFalkorDBGraphWithClient wraps an existing Redis client. The caller
// keeps ownership of the client unless Close is used.
func NewFalkorDBGraphWithClient(client redis.UniversalClient, graphName string) *FalkorDBGraph {
	if graphName == "" {
		graphName = DefaultGraphName
	}
	return &FalkorDBGraph{
		client: client,
		graph:  graphName,
		name:   "falkordb",
	}
}

// Name identifies the backend in outcome provenance.
func (f *FalkorDBGraph) Name() string { return f.name }

// Query translates the question to openCypher and executes it. Questions
// the graph holds no answer for return an empty slice, not an error.
func (f *FalkorDBGraph) Query(ctx context.Context, question string) ([]route.GraphHit, error) {
	intent := ClassifyGraphQuestion(question)

	reply, err := f.run(ctx, intent.Cypher())
	if err != nil {
		return nil, fmt.Errorf("graph query failed: %w", err)
	}

	nameCol, roleCol := -1, -1
	for i, col := range reply.header {
		switch col {
		case "name":
			nameCol = i
		case "role":
			roleCol = i
		}
	}
	if nameCol < 0 {
		nameCol = 0
	}

	var hits []route.GraphHit
	for _, row := range reply.rows {
		hit := route.GraphHit{}
		if nameCol < len(row) {
			hit.Name = fmt.Sprint(row[nameCol])
		}
		if roleCol >= 0 && roleCol < len(row) {
			hit.Role = fmt.Sprint(row[roleCol])
		}
		if hit.Name == "" {
			continue
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// Seed merges triples into the graph. MERGE keeps the operation
// idempotent, so seeding can run on every startup.
func (f *FalkorDBGraph) Seed(ctx context.Context, triples []Triple) error {
	for _, t := range triples {
		subjLabel, objLabel := labelsForRelation(t.Relation)
		q := fmt.Sprintf(
			"MERGE (a:%s {name: '%s'}) MERGE (b:%s {name: '%s'}) MERGE (a)-[:%s]->(b)",
			subjLabel, escapeCypherString(t.Subject),
			objLabel, escapeCypherString(t.Object),
			t.Relation)
		if _, err := f.run(ctx, q); err != nil {
			return fmt.Errorf("seed triple %s-[%s]->%s: %w", t.Subject, t.Relation, t.Object, err)
		}
	}
	return nil
}

// DeleteGraph drops the whole graph.
func (f *FalkorDBGraph) DeleteGraph(ctx context.Context) error {
	return f.client.Do(ctx, "GRAPH.DELETE", f.graph).Err()
}

// Close releases the underlying Redis client.
func (f *FalkorDBGraph) Close() error {
	return f.client.Close()
}

type graphReply struct {
	header []string
	rows   [][]interface{}
	stats  []string
}

func (f *FalkorDBGraph) run(ctx context.Context, cypher string) (graphReply, error) {
	res, err := f.client.Do(ctx, "GRAPH.QUERY", f.graph, cypher).Result()
	if err != nil {
		return graphReply{}, err
	}
	return parseGraphReply(res)
}

// parseGraphReply decodes a GRAPH.QUERY response. Read queries come back
// as [header, rows, statistics]; write-only queries omit the header.
func parseGraphReply(res interface{}) (graphReply, error) {
	reply := graphReply{}

	r, ok := res.([]interface{})
	if !ok {
		return reply, fmt.Errorf("unexpected response type: %T", res)
	}

	switch len(r) {
	case 3:
		if header, ok := r[0].([]interface{}); ok {
			reply.header = make([]string, len(header))
			for i, h := range header {
				reply.header[i] = fmt.Sprint(h)
			}
		}
		reply.rows = parseReplyRows(r[1])
		reply.stats = parseReplyStats(r[2])
	case 2:
		reply.rows = parseReplyRows(r[0])
		reply.stats = parseReplyStats(r[1])
	default:
		return reply, fmt.Errorf("unexpected response length: %d", len(r))
	}
	return reply, nil
}

func parseReplyRows(v interface{}) [][]interface{} {
	rows, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		if vals, ok := row.([]interface{}); ok {
			out[i] = vals
		}
	}
	return out
}

func parseReplyStats(v interface{}) []string {
	stats, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, len(stats))
	for i, s := range stats {
		out[i] = fmt.Sprint(s)
	}
	return out
}

// labelsForRelation infers node labels from the relationship type so that
// seeded triples carry the schema the query templates expect.
func labelsForRelation(relation string) (subject, object string) {
	switch relation {
	case "DEVELOPS":
		return "Organization", "Product"
	case "USES":
		return "Organization", "Technology"
	default:
		return "Person", "Organization"
	}
}

func escapeCypherString(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
