package llm

import (
	"fmt"
	"strings"
)

const ollamaDummyKey = "ollama"

// NewOllamaClient points the OpenAI-compatible client at an Ollama server.
// Ollama ignores the API key but go-openai still sends one.
func NewOllamaClient(apiKey, model, baseURL string) *OpenAIClient {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if !strings.HasSuffix(baseURL, "/v1") {
		baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
	}
	if apiKey == "" {
		apiKey = ollamaDummyKey
	}
	return NewOpenAIClient(apiKey, model, baseURL)
}
