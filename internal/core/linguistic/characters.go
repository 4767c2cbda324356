package linguistic

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/agenthands/cinescene/internal/core/common"
	"github.com/agenthands/cinescene/internal/core/model"
)

// speakerHeuristic finds a capitalized word right before a colon or a quote.
var speakerHeuristic = regexp.MustCompile(`\b([A-Z][a-z]+)\s*[:"]`)

var falsePositives = map[string]bool{
	"the": true, "and": true, "but": true, "or": true,
	"so": true, "yet": true, "then": true,
}

func (e *Extractor) extractCharacters(text string) []model.Character {
	names := e.candidateNames(text)

	characters := make([]model.Character, 0, len(names))
	for _, name := range names {
		characters = append(characters, model.Character{
			Name:        name,
			Description: characterDescription(text, name),
			Emotions:    characterEmotions(text, name),
			Actions:     characterActions(text, name),
		})
	}
	return characters
}

func (e *Extractor) candidateNames(text string) []string {
	if e.ner != nil {
		names, err := e.ner.Persons(text)
		if err != nil {
			e.log.Debug("entity recognizer unavailable, using speaker heuristic", zap.Error(err))
		} else if cleaned := dedupeNames(names); len(cleaned) > 0 {
			return cleaned
		}
	}

	return dedupeNames(speakerNames(common.NormalizeQuotes(text)))
}

// speakerNames keeps heuristic matches that sit outside quoted speech. A word
// preceded by an odd number of quotes is spoken text, so the last word of a
// line (`"Let's Go"`) or a colon inside it is never taken for a speaker.
func speakerNames(text string) []string {
	var names []string
	for _, m := range speakerHeuristic.FindAllStringSubmatchIndex(text, -1) {
		if strings.Count(text[:m[2]], `"`)%2 == 1 {
			continue
		}
		names = append(names, text[m[2]:m[3]])
	}
	return names
}

// dedupeNames keeps the first occurrence of every name and drops common
// function words picked up by the capitalization heuristic.
func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] || falsePositives[strings.ToLower(n)] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
