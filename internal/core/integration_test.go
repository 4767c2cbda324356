//go:build integration

package core

import (
	"context"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/agenthands/cinescene/internal/config"
	"github.com/agenthands/cinescene/internal/core/model"
	"github.com/agenthands/cinescene/internal/llm"
)

func TestRemoteTierLive(t *testing.T) {
	_ = godotenv.Load("../../.env")

	cfg, err := config.Load("../../config/config.toml")
	require.NoError(t, err)
	cfg.ApplyEnv()
	if cfg.LLM.APIKey == "" && cfg.LLM.Provider != "ollama" {
		t.Skip("Skipping integration test: LLM_API_KEY not set")
	}

	ctx := context.Background()
	completer, err := llm.NewCompleter(ctx, cfg.LLM)
	require.NoError(t, err)
	require.NotNil(t, completer)

	p := NewStandardParser(completer, nil, cfg, WithLogger(zaptest.NewLogger(t)))

	res := p.ExtractWithTier(ctx, `In a dimly lit bar, Marcus slams his glass down. "I told you never to come back here!" Sarah flinches. "I had no choice."`)
	t.Logf("tier=%s scene=%+v", res.Tier, res.Scene)

	assert.Equal(t, "remote", res.Tier)
	assert.NotEmpty(t, res.Scene.Characters)
	assert.NotEmpty(t, res.Scene.Dialogue)
	assert.GreaterOrEqual(t, res.Scene.DurationEstimate, model.MinDuration)
	assert.LessOrEqual(t, res.Scene.DurationEstimate, model.MaxDuration)
}
