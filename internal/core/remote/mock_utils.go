package remote

import (
	"context"

	"github.com/agenthands/cinescene/internal/llm"
)

// MockCompleter returns Response or Err and records the last request.
type MockCompleter struct {
	Response string
	Err      error
	Block    bool

	Calls   int
	LastReq llm.CompletionRequest
}

func (m *MockCompleter) Model() string { return "mock-model" }

func (m *MockCompleter) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	m.Calls++
	m.LastReq = req
	if m.Block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
