package common

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/agenthands/cinescene/internal/core/model"
)

// Dialogue emotion tags.
const (
	EmotionExcited     = "excited"
	EmotionQuestioning = "questioning"
	EmotionHesitant    = "hesitant"
	EmotionAngry       = "angry"
)

var (
	bracketCue     = regexp.MustCompile(`\[([^\]]+)\]`)
	parentheticCue = regexp.MustCompile(`\(([^)]+)\)`)
	bareQuote      = regexp.MustCompile(`"([^"]+)"`)

	quoteNormalizer = strings.NewReplacer("“", `"`, "”", `"`, "„", `"`, "«", `"`, "»", `"`)
)

// NormalizeQuotes folds typographic double quotes into ASCII '"'.
func NormalizeQuotes(text string) string {
	return quoteNormalizer.Replace(text)
}

// DialogueEmotion guesses a tag from surface punctuation and casing.
// Checks run in a fixed order: '!', '?', ellipsis, all caps.
func DialogueEmotion(text string) string {
	switch {
	case strings.Contains(text, "!"):
		return EmotionExcited
	case strings.Contains(text, "?"):
		return EmotionQuestioning
	case strings.Contains(text, "...") || strings.Contains(text, "…"):
		return EmotionHesitant
	case isUpper(text):
		return EmotionAngry
	default:
		return model.EmotionNeutral
	}
}

// isUpper reports whether text has at least one cased letter and no
// lower-case ones.
func isUpper(text string) bool {
	cased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// NonVerbalCues returns the lower-cased contents of [...] spans followed by
// (...) spans.
func NonVerbalCues(text string) []string {
	cues := []string{}
	for _, re := range []*regexp.Regexp{bracketCue, parentheticCue} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			cues = append(cues, strings.ToLower(strings.TrimSpace(m[1])))
		}
	}
	return cues
}

// QuotedLines turns every bare "..." span into a line spoken by a placeholder
// character, numbered in order of appearance.
func QuotedLines(text string, withCues bool) []model.DialogueLine {
	lines := []model.DialogueLine{}
	for i, m := range bareQuote.FindAllStringSubmatch(NormalizeQuotes(text), -1) {
		line := model.DialogueLine{
			Character: model.PlaceholderName(i + 1),
			Text:      m[1],
			Emotion:   DialogueEmotion(m[1]),
			NonVerbal: []string{},
		}
		if withCues {
			line.NonVerbal = NonVerbalCues(m[1])
		}
		lines = append(lines, line)
	}
	return lines
}
