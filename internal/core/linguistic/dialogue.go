package linguistic

import (
	"regexp"

	"github.com/agenthands/cinescene/internal/core/common"
	"github.com/agenthands/cinescene/internal/core/model"
)

var (
	colonAttributed = regexp.MustCompile(`([A-Z][a-z]+)\s*:\s*"([^"]+)"`)
	verbAttributed  = regexp.MustCompile(`"([^"]+)"\s+(?:said|says|asks|asked|replies|replied|responds|responded)\s+([A-Z][a-z]+)`)
)

// extractDialogue runs the attribution cascade. The first pattern that
// matches anything decides the result; later patterns are not consulted, so
// a text mixing styles keeps only the highest priority style.
func extractDialogue(text string) []model.DialogueLine {
	text = common.NormalizeQuotes(text)

	if m := colonAttributed.FindAllStringSubmatch(text, -1); len(m) > 0 {
		return attributed(m, 1, 2)
	}
	if m := verbAttributed.FindAllStringSubmatch(text, -1); len(m) > 0 {
		return attributed(m, 2, 1)
	}
	return common.QuotedLines(text, true)
}

func attributed(matches [][]string, nameGroup, textGroup int) []model.DialogueLine {
	lines := make([]model.DialogueLine, 0, len(matches))
	for _, m := range matches {
		spoken := m[textGroup]
		lines = append(lines, model.DialogueLine{
			Character: m[nameGroup],
			Text:      spoken,
			Emotion:   common.DialogueEmotion(spoken),
			NonVerbal: common.NonVerbalCues(spoken),
		})
	}
	return lines
}
