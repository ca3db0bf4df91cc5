package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/smallnest/ragroute/route"
)

// Plan is the oracle's routing decision for one question.
type Plan struct {
	Tool   route.Tool `json:"tool"`
	Reason string     `json:"reason"`
}

// Planner asks the reasoning oracle which tool should handle a question.
type Planner struct {
	completer Completer
}

// NewPlanner creates a planner over the given completer.
func NewPlanner(completer Completer) *Planner {
	return &Planner{completer: completer}
}

// Plan classifies a question into one of the four tools. It fails with a
// MalformedResponseError when the oracle returns invalid JSON, misses a
// required field, or picks a label outside the enumeration.
func (p *Planner) Plan(ctx context.Context, question string) (*Plan, error) {
	user := fmt.Sprintf("Question: %s\n\nWhich tool should handle this question?", question)

	raw, err := p.completer.Complete(ctx, CompletionRequest{
		System:      plannerSystemPrompt,
		User:        user,
		Temperature: 0.1,
		MaxTokens:   200,
	})
	if err != nil {
		return nil, fmt.Errorf("planning failed: %w", err)
	}

	return parsePlan(raw)
}

// parsePlan decodes and validates the oracle's routing decision.
func parsePlan(raw string) (*Plan, error) {
	var plan Plan
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &plan); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	if plan.Tool == "" {
		return nil, &MalformedResponseError{Raw: raw, Reason: "missing required key \"tool\""}
	}
	if plan.Reason == "" {
		return nil, &MalformedResponseError{Raw: raw, Reason: "missing required key \"reason\""}
	}
	if !plan.Tool.Valid() {
		return nil, &MalformedResponseError{
			Raw:    raw,
			Reason: fmt.Sprintf("tool %q is not one of %v", plan.Tool, route.Tools()),
		}
	}

	return &plan, nil
}

// stripCodeFences removes a surrounding markdown code fence, which some
// models emit despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
