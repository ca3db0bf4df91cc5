package route

import "context"

// Escalate re-validates a routing outcome and, when the payload fails
// validation, issues a single fresh web search. It is intended for callers
// that invoked the router with fallback disabled, or that want a second
// independent validation pass.
//
// The escalation is one-shot: once web search has been reached by any path
// (as the primary tool or through the router's own chain) the outcome is
// returned unchanged, so a double chain can never form. Direct answers are
// likewise returned unchanged.
func Escalate(ctx context.Context, web WebSearcher, question string, outcome *Outcome) (*Outcome, error) {
	if web == nil || outcome == nil || outcome.Tool == ToolWebSearch || outcome.Tool == ToolDirectAnswer {
		return outcome, nil
	}

	if IsValid(outcome.Tool, outcome) {
		return outcome, nil
	}

	result, err := web.Search(ctx, question)
	if err != nil {
		return nil, &ExecutionError{Tool: ToolWebSearch, Err: err}
	}

	return &Outcome{
		Tool:         ToolWebSearch,
		Source:       web.Name(),
		Web:          result,
		FallbackUsed: true,
		OriginalTool: outcome.Tool,
	}, nil
}
