package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/cinescene/internal/config"
)

type providerDefaults struct {
	model   string
	baseURL string
}

// Used when the config leaves model or base_url empty. An empty baseURL keeps
// the SDK's own endpoint.
var defaultsByProvider = map[string]providerDefaults{
	"deepseek": {model: "deepseek-chat", baseURL: "https://api.deepseek.com/v1"},
	"openai":   {model: "gpt-4o-mini", baseURL: "https://api.openai.com/v1"},
	"ollama":   {model: "llama3", baseURL: "http://localhost:11434"},
	"claude":   {model: "claude-3-5-haiku-latest"},
	"gemini":   {model: "gemini-1.5-flash"},
}

// NewCompleter builds the completion client for cfg.Provider. It returns
// (nil, nil) when no API key is configured, which disables the remote tier.
// Ollama needs no key.
func NewCompleter(ctx context.Context, cfg config.LLMConfig) (Completer, error) {
	provider := strings.ToLower(cfg.Provider)
	if provider == "" {
		provider = "deepseek"
	}

	defaults, ok := defaultsByProvider[provider]
	if !ok {
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
	if cfg.APIKey == "" && provider != "ollama" {
		return nil, nil
	}

	model := cfg.Model
	if model == "" {
		model = defaults.model
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaults.baseURL
	}

	switch provider {
	case "ollama":
		return NewOllamaClient(cfg.APIKey, model, baseURL), nil

	case "claude":
		return NewClaudeClient(cfg.APIKey, model, baseURL), nil

	case "gemini":
		c, err := NewGeminiClient(ctx, cfg.APIKey, model)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return c, nil

	default:
		return NewOpenAIClient(cfg.APIKey, model, baseURL), nil
	}
}
