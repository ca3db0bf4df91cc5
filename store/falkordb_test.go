package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFalkorDBGraph(t *testing.T) {
	t.Run("parses host and graph name", func(t *testing.T) {
		g, err := NewFalkorDBGraph("falkordb://localhost:6379/knowledge")
		require.NoError(t, err)
		defer g.Close()

		assert.Equal(t, "knowledge", g.graph)
		assert.Equal(t, "falkordb", g.Name())
	})

	t.Run("defaults graph name when path is empty", func(t *testing.T) {
		g, err := NewFalkorDBGraph("falkordb://localhost:6379")
		require.NoError(t, err)
		defer g.Close()

		assert.Equal(t, DefaultGraphName, g.graph)
	})

	t.Run("rejects connection string without host", func(t *testing.T) {
		_, err := NewFalkorDBGraph("falkordb://")
		assert.ErrorContains(t, err, "missing host")
	})
}

func TestFalkorDBGraphQueryErrors(t *testing.T) {
	// miniredis speaks plain Redis, so GRAPH.QUERY fails server-side. The
	// backend must surface that as an error, never as an empty result.
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	g := NewFalkorDBGraphWithClient(client, "knowledge")
	defer g.Close()

	_, err := g.Query(context.Background(), "Who is the CEO of OpenAI?")
	require.Error(t, err)
	assert.ErrorContains(t, err, "graph query failed")
}

func TestParseGraphReply(t *testing.T) {
	t.Run("read reply with header", func(t *testing.T) {
		res := []interface{}{
			[]interface{}{"name", "role"},
			[]interface{}{
				[]interface{}{"Sam Altman", "IS_CEO_OF"},
				[]interface{}{"Greg Brockman", "IS_PRESIDENT_OF"},
			},
			[]interface{}{"Cached execution: 1"},
		}

		reply, err := parseGraphReply(res)
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "role"}, reply.header)
		require.Len(t, reply.rows, 2)
		assert.Equal(t, []interface{}{"Sam Altman", "IS_CEO_OF"}, reply.rows[0])
		assert.Equal(t, []string{"Cached execution: 1"}, reply.stats)
	})

	t.Run("write reply without header", func(t *testing.T) {
		res := []interface{}{
			[]interface{}{},
			[]interface{}{"Nodes created: 2", "Relationships created: 1"},
		}

		reply, err := parseGraphReply(res)
		require.NoError(t, err)
		assert.Empty(t, reply.header)
		assert.Empty(t, reply.rows)
		assert.Len(t, reply.stats, 2)
	})

	t.Run("unexpected response type", func(t *testing.T) {
		_, err := parseGraphReply("OK")
		assert.ErrorContains(t, err, "unexpected response type")
	})

	t.Run("unexpected response length", func(t *testing.T) {
		_, err := parseGraphReply([]interface{}{"only one"})
		assert.ErrorContains(t, err, "unexpected response length")
	})
}

func TestLabelsForRelation(t *testing.T) {
	tests := []struct {
		relation    string
		wantSubject string
		wantObject  string
	}{
		{"DEVELOPS", "Organization", "Product"},
		{"USES", "Organization", "Technology"},
		{"IS_CEO_OF", "Person", "Organization"},
		{"IS_FOUNDER_OF", "Person", "Organization"},
	}

	for _, tt := range tests {
		t.Run(tt.relation, func(t *testing.T) {
			subject, object := labelsForRelation(tt.relation)
			assert.Equal(t, tt.wantSubject, subject)
			assert.Equal(t, tt.wantObject, object)
		})
	}
}
