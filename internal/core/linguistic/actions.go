package linguistic

import (
	"regexp"
	"strings"
)

var sceneActionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(walks? (?:to|into|towards)[^.]*)`),
	regexp.MustCompile(`(?i)\b(runs? (?:to|into|towards)[^.]*)`),
	regexp.MustCompile(`(?i)\b(enters? [^.]*)`),
	regexp.MustCompile(`(?i)\b(exits? [^.]*)`),
	regexp.MustCompile(`(?i)\b(sits? (?:down|on)[^.]*)`),
	regexp.MustCompile(`(?i)\b(stands? (?:up|on)[^.]*)`),
	regexp.MustCompile(`(?i)\b(looks? (?:at|towards)[^.]*)`),
	regexp.MustCompile(`(?i)\b(turns? (?:to|towards)[^.]*)`),
}

// extractActions collects movement phrases across the whole text, grouped by
// pattern and then by position.
func extractActions(text string) []string {
	actions := []string{}
	for _, re := range sceneActionPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if a := strings.TrimSpace(m[1]); a != "" {
				actions = append(actions, a)
			}
		}
	}
	return actions
}
