package core

import (
	"context"
	"sync"

	"github.com/agenthands/cinescene/internal/core/model"
)

type MockTier struct {
	TierName string
	Scene    model.ParsedScene
	Err      error
	Panic    any

	mu    sync.Mutex
	calls int
}

func (m *MockTier) Name() string { return m.TierName }

func (m *MockTier) Attempt(ctx context.Context, prompt string) (model.ParsedScene, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.Panic != nil {
		panic(m.Panic)
	}
	if m.Err != nil {
		return model.ParsedScene{}, m.Err
	}
	return m.Scene, nil
}

func (m *MockTier) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
