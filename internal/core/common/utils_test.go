package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Mood  string   `json:"mood"`
	Items []string `json:"items"`
}

func TestParseJSON_Direct(t *testing.T) {
	got, err := ParseJSON[sample](`{"mood":"tense","items":["a"]}`)
	require.NoError(t, err)
	assert.Equal(t, "tense", got.Mood)
	assert.Equal(t, []string{"a"}, got.Items)
}

func TestParseJSON_WithPreamble(t *testing.T) {
	input := `Sure! Here is the scene:
{
  "mood": "romantic",
  "items": []
}
Let me know if you need anything else {or more}.`

	got, err := ParseJSON[sample](input)
	require.NoError(t, err)
	assert.Equal(t, "romantic", got.Mood)
}

func TestParseJSON_CodeBlock(t *testing.T) {
	got, err := ParseJSON[sample]("```json\n{\"mood\":\"sad\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "sad", got.Mood)
}

func TestParseJSON_BracesInsideStrings(t *testing.T) {
	got, err := ParseJSON[sample](`note: {"mood":"odd } brace","items":["{x}"]} trailing }`)
	require.NoError(t, err)
	assert.Equal(t, "odd } brace", got.Mood)
	assert.Equal(t, []string{"{x}"}, got.Items)
}

func TestParseJSON_SkipsBrokenCandidate(t *testing.T) {
	got, err := ParseJSON[sample](`{not json} then {"mood":"happy"}`)
	require.NoError(t, err)
	assert.Equal(t, "happy", got.Mood)
}

func TestParseJSON_NoObject(t *testing.T) {
	_, err := ParseJSON[sample]("not json at all")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoJSONObject))
}

func TestParseJSON_Unbalanced(t *testing.T) {
	_, err := ParseJSON[sample](`{"mood": "tense"`)
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
	assert.Equal(t, "héé...", Truncate("héééé", 3))
}
