// Package fallback is the last extraction tier. It depends only on the
// prompt text and cannot fail.
package fallback

import (
	"context"

	"github.com/agenthands/cinescene/internal/core/common"
	"github.com/agenthands/cinescene/internal/core/model"
)

const (
	TierName = "fallback"

	defaultAction = "scene action"
)

type Extractor struct{}

func NewExtractor() *Extractor { return &Extractor{} }

func (*Extractor) Name() string { return TierName }

func (*Extractor) Attempt(_ context.Context, prompt string) (model.ParsedScene, error) {
	return Extract(prompt), nil
}

// Extract keeps the whole prompt as the description, creates one placeholder
// character and turns bare quotes into placeholder dialogue.
func Extract(prompt string) model.ParsedScene {
	scene := model.ParsedScene{
		Description:      prompt,
		Characters:       []model.Character{{Name: model.PlaceholderName(1)}},
		Dialogue:         common.QuotedLines(prompt, false),
		Actions:          []string{defaultAction},
		Environment:      model.UnspecifiedLocation,
		Mood:             model.MoodNeutral,
		DurationEstimate: model.DefaultDuration,
	}
	scene.Normalize()
	return scene
}
