package linguistic

import (
	"strings"

	"github.com/agenthands/cinescene/internal/core/model"
)

type moodCategory struct {
	mood     string
	keywords []string
}

// Order matters: the first category with a hit wins.
var moodCategories = []moodCategory{
	{"happy", []string{"happy", "joyful", "cheerful", "upbeat", "positive", "bright"}},
	{"sad", []string{"sad", "melancholy", "depressing", "gloomy", "somber"}},
	{"tense", []string{"tense", "suspenseful", "dramatic", "intense", "serious"}},
	{"romantic", []string{"romantic", "intimate", "loving", "tender", "sweet"}},
	{"comedic", []string{"funny", "humorous", "comedic", "amusing", "lighthearted"}},
	{"mysterious", []string{"mysterious", "enigmatic", "puzzling", "strange", "eerie"}},
}

func extractMood(text string) string {
	lower := strings.ToLower(text)
	for _, c := range moodCategories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.mood
			}
		}
	}
	return model.MoodNeutral
}
