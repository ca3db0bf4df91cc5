package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/smallnest/ragroute/log"
	"github.com/smallnest/ragroute/oracle"
	"github.com/smallnest/ragroute/route"
)

// Planner decides which tool should handle a question.
type Planner interface {
	Plan(ctx context.Context, question string) (*oracle.Plan, error)
}

// Router executes a tool against its backend, applying the deterministic
// fallback chain on empty results.
type Router interface {
	Route(ctx context.Context, tool route.Tool, question string, opts ...route.RouteOption) (*route.Outcome, error)
}

// Responder synthesizes the final answer from a routing outcome.
type Responder interface {
	Respond(ctx context.Context, question string, tool route.Tool, reason string, outcome *route.Outcome) (*oracle.Answer, error)
}

// Response is the complete result of answering one question: the routing
// decision, the retrieval outcome, and the synthesized answer.
type Response struct {
	Question  string
	Plan      *oracle.Plan
	Outcome   *route.Outcome
	Answer    *oracle.Answer
	Escalated bool
}

// Agent wires the planner, router and responder into the full
// plan-execute-validate-respond loop.
type Agent struct {
	planner   Planner
	router    Router
	responder Responder
	web       route.WebSearcher
	logger    log.Logger
}

// Option configures an Agent.
type Option func(*Agent)

// WithLogger sets the logger. Defaults to the package-level logger.
func WithLogger(logger log.Logger) Option {
	return func(a *Agent) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithEscalation enables the validity check after routing: outcomes that
// carry no usable payload are retried once against the given web backend.
func WithEscalation(web route.WebSearcher) Option {
	return func(a *Agent) {
		a.web = web
	}
}

// New creates an agent. Escalation stays disabled until WithEscalation
// provides a web backend.
func New(planner Planner, router Router, responder Responder, opts ...Option) (*Agent, error) {
	if planner == nil {
		return nil, fmt.Errorf("planner is required")
	}
	if router == nil {
		return nil, fmt.Errorf("router is required")
	}
	if responder == nil {
		return nil, fmt.Errorf("responder is required")
	}

	a := &Agent{
		planner:   planner,
		router:    router,
		responder: responder,
		logger:    log.GetDefaultLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Ask answers one question end to end. Routing errors abort the flow
// before synthesis; an unusable outcome escalates to web search once when
// escalation is enabled.
func (a *Agent) Ask(ctx context.Context, question string) (*Response, error) {
	plan, err := a.planner.Plan(ctx, question)
	if err != nil {
		if !errors.Is(err, oracle.ErrMalformedResponse) {
			return nil, fmt.Errorf("planning failed: %w", err)
		}
		// An unparseable routing decision is not fatal: the web can take
		// any question, so default there rather than dropping the request.
		a.logger.Warn("unparseable routing decision, defaulting to %s: %v", route.ToolWebSearch, err)
		plan = &oracle.Plan{
			Tool:   route.ToolWebSearch,
			Reason: "Routing decision was unreadable; searching the web instead",
		}
	}
	a.logger.Debug("planned tool=%s reason=%q", plan.Tool, plan.Reason)

	outcome, err := a.router.Route(ctx, plan.Tool, question)
	if err != nil {
		return nil, fmt.Errorf("executing %s: %w", plan.Tool, err)
	}

	resp := &Response{
		Question: question,
		Plan:     plan,
		Outcome:  outcome,
	}

	reason := plan.Reason
	if outcome.FallbackUsed {
		reason = fmt.Sprintf("Fallback from %s (no internal data found)", outcome.OriginalTool)
		a.logger.Info("fallback fired: %s -> %s", outcome.OriginalTool, outcome.Tool)
	}

	if a.web != nil {
		escalated, err := route.Escalate(ctx, a.web, question, outcome)
		if err != nil {
			return nil, fmt.Errorf("escalating to web search: %w", err)
		}
		if escalated != outcome {
			a.logger.Info("escalated unusable %s outcome to web search", outcome.Tool)
			reason = fmt.Sprintf("Fallback from %s (no internal data found)", outcome.Tool)
			resp.Outcome = escalated
			resp.Escalated = true
			outcome = escalated
		}
	}

	answer, err := a.responder.Respond(ctx, question, outcome.Tool, reason, outcome)
	if err != nil {
		return nil, fmt.Errorf("synthesizing answer: %w", err)
	}
	resp.Answer = answer
	return resp, nil
}
