// Package agent orchestrates the full question-answering loop: plan the
// tool, route the question through the retrieval backends, escalate
// unusable outcomes to web search, and synthesize the final answer.
//
//	a, err := agent.New(planner, router, responder,
//	    agent.WithEscalation(webSearch))
//	if err != nil {
//	    return err
//	}
//	resp, err := a.Ask(ctx, "Who is the CEO of OpenAI?")
//
// Routing errors abort the loop before synthesis; only emptiness, never
// failure, moves a question to another tool.
package agent
