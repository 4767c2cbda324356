package linguistic

import (
	"regexp"
	"strings"

	"github.com/agenthands/cinescene/internal/core/model"
)

const placeNouns = `room|house|park|street|office|restaurant|cafe|bar|store|school|hospital|church|beach|forest|mountain|city|town|village|kitchen|shop|apartment|library|station`

var (
	placePhrase = regexp.MustCompile(`(?i)\b(?:in|at|inside|outside)\s+(?:(?:a|an|the)\s+)?([^.]*(?:` + placeNouns + `)[^.]*)`)
	slugLine    = regexp.MustCompile(`(?i)\b(?:INT|EXT)\.\s*([^-\n]*)`)
	labelLine   = regexp.MustCompile(`(?i)\b(?:setting|location|place)\s*:\s*([^\n]*)`)

	ambienceWords = []string{"indoor", "outdoor", "sunny", "dark", "bright", "cozy", "spacious", "crowded", "quiet", "noisy"}
)

// extractEnvironment tries, in order: a prepositional place phrase, a
// screenplay slug line, an explicit label, then a bag of ambience words.
func extractEnvironment(text string) string {
	for _, re := range []*regexp.Regexp{placePhrase, slugLine, labelLine} {
		if m := re.FindStringSubmatch(text); m != nil {
			if env := strings.TrimSpace(m[1]); env != "" {
				return env
			}
		}
	}

	lower := strings.ToLower(text)
	var found []string
	for _, w := range ambienceWords {
		if strings.Contains(lower, w) {
			found = append(found, w)
		}
	}
	if len(found) > 0 {
		return strings.Join(found, ", ")
	}

	return model.UnspecifiedLocation
}
