package linguistic

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/agenthands/cinescene/internal/core/common"
	"github.com/agenthands/cinescene/internal/core/model"
	"github.com/agenthands/cinescene/internal/logger"
)

const (
	TierName = "local"

	descriptionLimit = 200
)

var ErrTierPanic = errors.New("local extraction panicked")

// Extractor is the local linguistic tier: NER plus pattern heuristics, no
// network access. It holds no per-call state and is safe for concurrent use.
type Extractor struct {
	ner EntityRecognizer
	log *zap.Logger
}

// NewExtractor builds the local tier. ner may be nil, in which case
// characters come from the speaker heuristic only.
func NewExtractor(ner EntityRecognizer, log *zap.Logger) *Extractor {
	return &Extractor{
		ner: ner,
		log: logger.OrNop(log),
	}
}

func (e *Extractor) Name() string { return TierName }

// HasRecognizer reports whether a NER model is wired in.
func (e *Extractor) HasRecognizer() bool { return e.ner != nil }

// Attempt runs Extract and converts a panic in any sub-extractor into
// ErrTierPanic.
func (e *Extractor) Attempt(_ context.Context, prompt string) (scene model.ParsedScene, err error) {
	defer func() {
		if p := recover(); p != nil {
			scene, err = model.ParsedScene{}, fmt.Errorf("%w: %v", ErrTierPanic, p)
		}
	}()
	return e.Extract(prompt), nil
}

func (e *Extractor) Extract(prompt string) model.ParsedScene {
	e.log.Debug("processing with local NLP", zap.Int("chars", len(prompt)))

	dialogue := extractDialogue(prompt)
	scene := model.ParsedScene{
		Description:      common.Truncate(prompt, descriptionLimit),
		Characters:       e.extractCharacters(prompt),
		Dialogue:         dialogue,
		Actions:          extractActions(prompt),
		Environment:      extractEnvironment(prompt),
		Mood:             extractMood(prompt),
		DurationEstimate: estimateDuration(prompt, len(dialogue)),
	}
	scene.Normalize()
	return scene
}
