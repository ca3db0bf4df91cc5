package oracle

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// LangChainCompleter adapts a langchaingo llms.Model to the Completer
// interface, so any model supported by langchaingo can act as the oracle.
type LangChainCompleter struct {
	model llms.Model
}

var _ Completer = (*LangChainCompleter)(nil)

// NewLangChainCompleter wraps an existing langchaingo model.
func NewLangChainCompleter(model llms.Model) *LangChainCompleter {
	return &LangChainCompleter{model: model}
}

// Complete implements Completer.
func (c *LangChainCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, req.System),
		llms.TextParts(llms.ChatMessageTypeHuman, req.User),
	}

	opts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	resp, err := c.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}

	return resp.Choices[0].Content, nil
}
