package linguistic

import (
	"strings"

	"github.com/agenthands/cinescene/internal/core/model"
)

const (
	wordsPerSecond = 20
	secondsPerLine = 3
)

// estimateDuration takes the larger of a word-count and a dialogue-count
// estimate, capped at model.MaxDuration.
func estimateDuration(text string, dialogueLines int) int {
	base := max(model.MinDuration, len(strings.Fields(text))/wordsPerSecond)
	spoken := dialogueLines * secondsPerLine
	return min(model.MaxDuration, max(base, spoken))
}
