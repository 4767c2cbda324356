package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey string, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Model() string { return c.model }

func (c *GeminiClient) Complete(ctx context.Context, cr CompletionRequest) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(cr.Temperature)
	if cr.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(cr.MaxTokens))
	}
	if cr.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(cr.System)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(cr.User))
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}
