package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/agenthands/cinescene/internal/config"
	"github.com/agenthands/cinescene/internal/core/common"
	"github.com/agenthands/cinescene/internal/core/model"
	"github.com/agenthands/cinescene/internal/llm"
	"github.com/agenthands/cinescene/internal/logger"
	"github.com/agenthands/cinescene/internal/metrics"
)

const (
	TierName = "remote"

	defaultTimeout     = 30 * time.Second
	defaultMaxTokens   = 2000
	defaultTemperature = 0.3
)

var (
	// ErrNotConfigured means no completion client was supplied. The
	// orchestrator skips the tier without logging a failure.
	ErrNotConfigured     = errors.New("remote parser not configured")
	ErrRemoteCall        = errors.New("remote completion call failed")
	ErrMalformedResponse = errors.New("remote reply is not a scene object")
)

// Parser is the remote semantic tier: one schema-constrained completion per
// call, bounded by a timeout, never retried.
type Parser struct {
	LLM         llm.Completer
	System      string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float32

	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewParser builds the remote tier. completer may be nil, in which case every
// Attempt returns ErrNotConfigured.
func NewParser(completer llm.Completer, cfg config.ExtractionConfig, m *metrics.Metrics, log *zap.Logger) *Parser {
	p := &Parser{
		LLM:         completer,
		System:      cfg.SystemPrompt,
		Timeout:     cfg.Timeout(),
		MaxTokens:   cfg.MaxTokens,
		Temperature: defaultTemperature,
		metrics:     m,
		log:         logger.OrNop(log),
	}
	if p.System == "" {
		p.System = systemPrompt
	}
	if p.Timeout <= 0 {
		p.Timeout = defaultTimeout
	}
	if p.MaxTokens <= 0 {
		p.MaxTokens = defaultMaxTokens
	}
	if t := cfg.Temperature; t != nil && *t >= 0 {
		p.Temperature = *t
	}
	return p
}

func (p *Parser) Name() string { return TierName }

// Configured reports whether a completion client is present.
func (p *Parser) Configured() bool { return p.LLM != nil }

func (p *Parser) Attempt(ctx context.Context, prompt string) (model.ParsedScene, error) {
	if p.LLM == nil {
		return model.ParsedScene{}, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	start := time.Now()
	reply, err := p.LLM.Complete(ctx, llm.CompletionRequest{
		System:      p.System,
		User:        buildUserPrompt(prompt),
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	})
	elapsed := time.Since(start)
	if err != nil {
		p.metrics.RemoteRequest(p.LLM.Model(), "error", elapsed)
		return model.ParsedScene{}, fmt.Errorf("%w: %w", ErrRemoteCall, err)
	}

	data, err := common.ParseJSON[map[string]any](reply)
	if err == nil && data == nil {
		err = errors.New("reply decoded to null")
	}
	if err != nil {
		p.metrics.RemoteRequest(p.LLM.Model(), "malformed", elapsed)
		return model.ParsedScene{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	p.metrics.RemoteRequest(p.LLM.Model(), "success", elapsed)

	p.log.Debug("remote parse complete",
		zap.String("model", p.LLM.Model()),
		zap.Duration("elapsed", elapsed),
		zap.Int("reply_bytes", len(reply)))

	return decodeScene(data), nil
}
