package oracle

import "context"

// CompletionRequest is a single chat completion: one system instruction and
// one user prompt, with per-call sampling limits.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Completer produces a chat completion. Both the planner and the responder
// talk to the reasoning oracle exclusively through this interface, so any
// chat-capable backend can serve as the oracle.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
