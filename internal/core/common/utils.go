package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var ErrNoJSONObject = errors.New("no JSON object found in response")

// ParseJSON unmarshals an LLM reply into a type T.
// The reply is first decoded as-is; if that fails, every balanced {...}
// substring is tried in order of its opening brace and the first one that
// decodes wins. Surrounding prose and markdown fences are therefore ignored.
func ParseJSON[T any](response string) (T, error) {
	var result T
	trimmed := strings.TrimSpace(response)
	if err := json.Unmarshal([]byte(trimmed), &result); err == nil {
		return result, nil
	}

	var lastErr error
	for start := strings.IndexByte(trimmed, '{'); start >= 0; {
		if end := matchBrace(trimmed, start); end > start {
			var candidate T
			err := json.Unmarshal([]byte(trimmed[start:end+1]), &candidate)
			if err == nil {
				return candidate, nil
			}
			lastErr = err
		}
		next := strings.IndexByte(trimmed[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}

	var zero T
	if lastErr != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w\nData: %s", lastErr, Truncate(trimmed, 200))
	}
	return zero, fmt.Errorf("%w: %s", ErrNoJSONObject, Truncate(trimmed, 200))
}

// matchBrace returns the index of the '}' closing the '{' at start, or -1.
// Braces inside JSON string literals are skipped.
func matchBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Truncate shortens s to at most n runes, appending "..." when cut.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
