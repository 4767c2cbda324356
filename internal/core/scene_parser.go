package core

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agenthands/cinescene/internal/config"
	"github.com/agenthands/cinescene/internal/core/fallback"
	"github.com/agenthands/cinescene/internal/core/linguistic"
	"github.com/agenthands/cinescene/internal/core/model"
	"github.com/agenthands/cinescene/internal/core/remote"
	"github.com/agenthands/cinescene/internal/llm"
	"github.com/agenthands/cinescene/internal/logger"
	"github.com/agenthands/cinescene/internal/metrics"
)

var ErrTierPanic = errors.New("tier panicked")

// Tier is one extraction strategy. Attempt either returns a scene or an error
// that demotes the call to the next tier.
type Tier interface {
	Name() string
	Attempt(ctx context.Context, prompt string) (model.ParsedScene, error)
}

// Result is a scene together with the tier that produced it.
type Result struct {
	Scene model.ParsedScene `json:"scene"`
	Tier  string            `json:"tier"`
}

// SceneParser tries its tiers in order, each at most once, and returns the
// first success. It never fails: if every tier errors the built-in fallback
// extractor is used.
type SceneParser struct {
	Tiers      []Tier
	BatchLimit int

	metrics *metrics.Metrics
	log     *zap.Logger
}

type Option func(*SceneParser)

func WithLogger(l *zap.Logger) Option {
	return func(p *SceneParser) { p.log = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *SceneParser) { p.metrics = m }
}

// WithBatchLimit bounds how many script blocks ExtractScript parses at once.
func WithBatchLimit(n int) Option {
	return func(p *SceneParser) { p.BatchLimit = n }
}

func NewSceneParser(tiers []Tier, opts ...Option) *SceneParser {
	p := &SceneParser{Tiers: tiers, BatchLimit: 1}
	for _, opt := range opts {
		opt(p)
	}
	p.log = logger.OrNop(p.log)
	if p.BatchLimit < 1 {
		p.BatchLimit = 1
	}
	return p
}

// NewStandardParser wires the remote, local and fallback tiers. completer and
// ner may both be nil.
func NewStandardParser(completer llm.Completer, ner linguistic.EntityRecognizer, cfg *config.Config, opts ...Option) *SceneParser {
	p := NewSceneParser(nil, opts...)
	p.Tiers = []Tier{
		remote.NewParser(completer, cfg.Extraction, p.metrics, p.log),
		linguistic.NewExtractor(ner, p.log),
		fallback.NewExtractor(),
	}
	return p
}

// Extract returns the best-effort scene for prompt.
func (p *SceneParser) Extract(ctx context.Context, prompt string) model.ParsedScene {
	return p.ExtractWithTier(ctx, prompt).Scene
}

func (p *SceneParser) ExtractWithTier(ctx context.Context, prompt string) Result {
	for _, tier := range p.Tiers {
		scene, err := p.attempt(ctx, tier, prompt)
		switch {
		case err == nil:
			scene.Normalize()
			p.metrics.TierAttempt(tier.Name(), metrics.OutcomeSuccess)
			p.metrics.SceneProduced(tier.Name())
			return Result{Scene: scene, Tier: tier.Name()}

		case errors.Is(err, remote.ErrNotConfigured):
			p.metrics.TierAttempt(tier.Name(), metrics.OutcomeSkipped)

		case errors.Is(err, ErrTierPanic):
			p.metrics.TierAttempt(tier.Name(), metrics.OutcomePanic)
			p.log.Warn("extraction tier panicked, demoting", zap.String("tier", tier.Name()), zap.Error(err))

		default:
			p.metrics.TierAttempt(tier.Name(), metrics.OutcomeFailure)
			p.log.Warn("extraction tier failed, demoting", zap.String("tier", tier.Name()), zap.Error(err))
		}
	}

	p.log.Error("all extraction tiers failed, using built-in fallback")
	p.metrics.SceneProduced(fallback.TierName)
	return Result{Scene: fallback.Extract(prompt), Tier: fallback.TierName}
}

func (p *SceneParser) attempt(ctx context.Context, tier Tier, prompt string) (scene model.ParsedScene, err error) {
	defer func() {
		if r := recover(); r != nil {
			scene, err = model.ParsedScene{}, fmt.Errorf("%w: %s: %v", ErrTierPanic, tier.Name(), r)
		}
	}()
	scene, err = tier.Attempt(ctx, prompt)
	if errors.Is(err, linguistic.ErrTierPanic) {
		err = fmt.Errorf("%w: %w", ErrTierPanic, err)
	}
	return scene, err
}

var blankLines = regexp.MustCompile(`\n[ \t\r]*\n`)

// SplitScript cuts a multi-scene script into blocks separated by blank lines.
func SplitScript(script string) []string {
	var blocks []string
	for _, b := range blankLines.Split(strings.ReplaceAll(script, "\r\n", "\n"), -1) {
		if b = strings.TrimSpace(b); b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// ExtractScript parses every block of a script. Results keep block order.
func (p *SceneParser) ExtractScript(ctx context.Context, script string) []Result {
	blocks := SplitScript(script)
	results := make([]Result, len(blocks))

	var g errgroup.Group
	g.SetLimit(p.BatchLimit)
	for i, block := range blocks {
		g.Go(func() error {
			results[i] = p.ExtractWithTier(ctx, block)
			return nil
		})
	}
	_ = g.Wait()

	p.log.Info("script extracted", zap.Int("scenes", len(results)))
	return results
}

// Status describes which tiers can do real work.
type Status struct {
	Tiers            []string `json:"tiers"`
	RemoteConfigured bool     `json:"remote_configured"`
	NERLoaded        bool     `json:"ner_loaded"`
}

func (p *SceneParser) Status() Status {
	s := Status{Tiers: make([]string, 0, len(p.Tiers))}
	for _, tier := range p.Tiers {
		s.Tiers = append(s.Tiers, tier.Name())
		if c, ok := tier.(interface{ Configured() bool }); ok && c.Configured() {
			s.RemoteConfigured = true
		}
		if r, ok := tier.(interface{ HasRecognizer() bool }); ok && r.HasRecognizer() {
			s.NERLoaded = true
		}
	}
	return s
}
