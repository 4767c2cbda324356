package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when a provider answers without any text.
var ErrEmptyResponse = errors.New("empty response from LLM")

// CompletionRequest is a single system+user exchange.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Model reports the model identifier used for requests.
	Model() string
}
