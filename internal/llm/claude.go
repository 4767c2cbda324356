package llm

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

type ClaudeClient struct {
	client *anthropic.Client
	model  string
}

func NewClaudeClient(apiKey string, model string, baseURL string) *ClaudeClient {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}

	return &ClaudeClient{
		client: anthropic.NewClient(apiKey, opts...),
		model:  model,
	}
}

func (c *ClaudeClient) Model() string { return c.model }

func (c *ClaudeClient) Complete(ctx context.Context, cr CompletionRequest) (string, error) {
	temperature := cr.Temperature
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:  anthropic.Model(c.model),
		System: cr.System,
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewTextMessageContent(cr.User),
				},
			},
		},
		MaxTokens:   cr.MaxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("messages request failed: %w", err)
	}

	if len(resp.Content) > 0 && resp.Content[0].Text != nil && *resp.Content[0].Text != "" {
		return *resp.Content[0].Text, nil
	}
	return "", ErrEmptyResponse
}
