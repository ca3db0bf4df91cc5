package route

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscalateInvalidVectorOutcome(t *testing.T) {
	web := &mockWebSearcher{result: &WebResult{Answer: "web answer"}}
	stale := &Outcome{Tool: ToolVectorSearch}

	escalated, err := Escalate(context.Background(), web, "question", stale)
	require.NoError(t, err)

	assert.Equal(t, ToolWebSearch, escalated.Tool)
	assert.Equal(t, ToolVectorSearch, escalated.OriginalTool)
	assert.True(t, escalated.FallbackUsed)
	assert.Equal(t, "web answer", escalated.Web.Answer)
	assert.Equal(t, 1, web.calls)
}

func TestEscalateInvalidGraphOutcome(t *testing.T) {
	web := &mockWebSearcher{result: &WebResult{}}
	stale := &Outcome{
		Tool:      ToolGraphSearch,
		GraphHits: []GraphHit{{Role: "IS_CEO_OF"}}, // no names, fails validation
	}

	escalated, err := Escalate(context.Background(), web, "question", stale)
	require.NoError(t, err)

	assert.Equal(t, ToolWebSearch, escalated.Tool)
	assert.Equal(t, ToolGraphSearch, escalated.OriginalTool)
}

func TestEscalateValidOutcomeUntouched(t *testing.T) {
	web := &mockWebSearcher{}
	outcome := &Outcome{
		Tool:       ToolVectorSearch,
		VectorHits: []VectorHit{{Text: "useful chunk"}},
	}

	same, err := Escalate(context.Background(), web, "question", outcome)
	require.NoError(t, err)
	assert.Same(t, outcome, same)
	assert.Zero(t, web.calls)
}

func TestEscalateNeverReEntersAfterWeb(t *testing.T) {
	web := &mockWebSearcher{}

	// Already at web search, whether directly or via the router's chain:
	// no further escalation is attempted.
	viaChain := &Outcome{
		Tool:          ToolWebSearch,
		FallbackUsed:  true,
		OriginalTool:  ToolGraphSearch,
		FallbackChain: []Tool{ToolGraphSearch, ToolVectorSearch, ToolWebSearch},
		Web:           &WebResult{},
	}
	same, err := Escalate(context.Background(), web, "question", viaChain)
	require.NoError(t, err)
	assert.Same(t, viaChain, same)
	assert.Zero(t, web.calls)
}

func TestEscalateDirectAnswerUntouched(t *testing.T) {
	web := &mockWebSearcher{}
	outcome := &Outcome{Tool: ToolDirectAnswer}

	same, err := Escalate(context.Background(), web, "hi", outcome)
	require.NoError(t, err)
	assert.Same(t, outcome, same)
	assert.Zero(t, web.calls)
}

func TestEscalateWebFailure(t *testing.T) {
	web := &mockWebSearcher{err: errors.New("rate limited")}
	stale := &Outcome{Tool: ToolVectorSearch}

	escalated, err := Escalate(context.Background(), web, "question", stale)
	assert.Nil(t, escalated)
	assert.ErrorIs(t, err, ErrExecutionFailed)
}
