package linguistic

import (
	"regexp"
	"strings"
)

var descriptorWords = regexp.MustCompile(`(?i)\b(?:tall|short|young|old|beautiful|handsome|wearing|dressed)\b`)

var emotionLexicon = lexicon("happy", "sad", "angry", "excited", "nervous", "calm", "worried", "surprised", "confused")

const characterVerbs = `walks|runs|sits|stands|looks|turns|moves|enters|exits|grabs|holds`

type lexWord struct {
	word string
	re   *regexp.Regexp
}

func lexicon(words ...string) []lexWord {
	out := make([]lexWord, len(words))
	for i, w := range words {
		out[i] = lexWord{word: w, re: regexp.MustCompile(`(?i)\b` + w + `\b`)}
	}
	return out
}

func nameRegexp(name, suffix string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b` + suffix)
}

// characterDescription returns the first clause following the name, up to the
// next period, that carries a descriptive word.
func characterDescription(text, name string) string {
	for _, m := range nameRegexp(name, `([^.]*)`).FindAllStringSubmatch(text, -1) {
		if descriptorWords.MatchString(m[1]) {
			return strings.Trim(m[1], " \t\r\n,;:")
		}
	}
	return ""
}

// characterEmotions lists lexicon emotions that share a sentence with name.
func characterEmotions(text, name string) []string {
	mention := nameRegexp(name, "")
	var sentences []string
	for _, s := range strings.Split(text, ".") {
		if mention.MatchString(s) {
			sentences = append(sentences, s)
		}
	}

	emotions := []string{}
	for _, lw := range emotionLexicon {
		for _, s := range sentences {
			if lw.re.MatchString(s) {
				emotions = append(emotions, lw.word)
				break
			}
		}
	}
	return emotions
}

func characterActions(text, name string) []string {
	actions := []string{}
	for _, m := range nameRegexp(name, `\s+(`+characterVerbs+`)\b`).FindAllStringSubmatch(text, -1) {
		actions = append(actions, strings.ToLower(m[1]))
	}
	return actions
}
