package oracle

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// GroqBaseURL is the OpenAI-compatible endpoint of the Groq API.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// DefaultGroqModel is the model used when none is configured.
const DefaultGroqModel = "llama-3.3-70b-versatile"

// OpenAICompleter implements Completer over any OpenAI-compatible chat API.
type OpenAICompleter struct {
	client *openai.Client
	model  string
}

var _ Completer = (*OpenAICompleter)(nil)

// OpenAIOption configures an OpenAICompleter.
type OpenAIOption func(*openAIConfig)

type openAIConfig struct {
	baseURL string
	model   string
}

// WithBaseURL points the completer at a non-default OpenAI-compatible
// endpoint.
func WithBaseURL(baseURL string) OpenAIOption {
	return func(c *openAIConfig) {
		c.baseURL = baseURL
	}
}

// WithModel sets the chat model to use.
func WithModel(model string) OpenAIOption {
	return func(c *openAIConfig) {
		c.model = model
	}
}

// NewOpenAICompleter creates a completer for the OpenAI API or any
// compatible endpoint.
func NewOpenAICompleter(apiKey string, opts ...OpenAIOption) (*OpenAICompleter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	cfg := &openAIConfig{model: openai.GPT4oMini}
	for _, opt := range opts {
		opt(cfg)
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.baseURL != "" {
		clientCfg.BaseURL = cfg.baseURL
	}

	return &OpenAICompleter{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.model,
	}, nil
}

// NewGroqCompleter creates a completer for the Groq API, which speaks the
// OpenAI wire protocol.
func NewGroqCompleter(apiKey string, opts ...OpenAIOption) (*OpenAICompleter, error) {
	base := []OpenAIOption{WithBaseURL(GroqBaseURL), WithModel(DefaultGroqModel)}
	return NewOpenAICompleter(apiKey, append(base, opts...)...)
}

// Complete implements Completer.
func (c *OpenAICompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
