package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/smallnest/ragroute/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCompleter struct {
	response string
	err      error
	requests []CompletionRequest
}

func (m *mockCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.requests = append(m.requests, req)
	return m.response, m.err
}

func TestPlannerValidResponse(t *testing.T) {
	completer := &mockCompleter{response: `{"tool": "graph_search", "reason": "OpenAI relationship query"}`}
	planner := NewPlanner(completer)

	plan, err := planner.Plan(context.Background(), "Who is the CEO of OpenAI?")
	require.NoError(t, err)

	assert.Equal(t, route.ToolGraphSearch, plan.Tool)
	assert.Equal(t, "OpenAI relationship query", plan.Reason)

	require.Len(t, completer.requests, 1)
	assert.Contains(t, completer.requests[0].User, "Who is the CEO of OpenAI?")
	assert.InDelta(t, 0.1, completer.requests[0].Temperature, 1e-9)
}

func TestPlannerStripsCodeFences(t *testing.T) {
	completer := &mockCompleter{response: "```json\n{\"tool\": \"web_search\", \"reason\": \"external entity\"}\n```"}
	planner := NewPlanner(completer)

	plan, err := planner.Plan(context.Background(), "Toyota")
	require.NoError(t, err)
	assert.Equal(t, route.ToolWebSearch, plan.Tool)
}

func TestPlannerMalformedResponses(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{"not JSON", "I think you should use vector search."},
		{"missing tool", `{"reason": "because"}`},
		{"missing reason", `{"tool": "web_search"}`},
		{"unknown tool", `{"tool": "sql_search", "reason": "because"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			planner := NewPlanner(&mockCompleter{response: tc.response})

			plan, err := planner.Plan(context.Background(), "question")
			assert.Nil(t, plan)
			assert.ErrorIs(t, err, ErrMalformedResponse)

			var malformed *MalformedResponseError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tc.response, malformed.Raw)
		})
	}
}

func TestPlannerCompleterError(t *testing.T) {
	backendErr := errors.New("api unavailable")
	planner := NewPlanner(&mockCompleter{err: backendErr})

	plan, err := planner.Plan(context.Background(), "question")
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, backendErr)
	assert.NotErrorIs(t, err, ErrMalformedResponse)
}
