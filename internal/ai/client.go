package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

//go:generate mockgen -source=client.go -destination=../mocks/ai_mocks.go -package=mocks

// ChatClient produces one completion for a system/user prompt pair
type ChatClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Client wraps the OpenAI-compatible chat completions API
type Client struct {
	client openai.Client
	model  string
}

// Ensure Client implements ChatClient
var _ ChatClient = (*Client)(nil)

// Config carries the chat API connection settings
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewClient creates a chat client. BaseURL is optional and allows
// pointing at any OpenAI-compatible endpoint.
func NewClient(cfg Config) *Client {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Client{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

// Complete sends one chat turn and returns the model's reply text
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
