package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/agenthands/cinescene/internal/config"
	"github.com/agenthands/cinescene/internal/core/model"
	"github.com/agenthands/cinescene/internal/core/remote"
	"github.com/agenthands/cinescene/internal/llm"
)

func TestTierOrderFirstSuccessWins(t *testing.T) {
	first := &MockTier{TierName: "a", Err: errors.New("down")}
	second := &MockTier{TierName: "b", Scene: model.ParsedScene{Mood: "tense"}}
	third := &MockTier{TierName: "c"}

	p := NewSceneParser([]Tier{first, second, third})
	res := p.ExtractWithTier(context.Background(), "x")

	assert.Equal(t, "b", res.Tier)
	assert.Equal(t, "tense", res.Scene.Mood)
	assert.Equal(t, model.UnspecifiedLocation, res.Scene.Environment)
	assert.Equal(t, 1, first.Calls())
	assert.Equal(t, 1, second.Calls())
	assert.Equal(t, 0, third.Calls())
}

func TestDemotionLogsWarningButSkipIsSilent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	skipped := &MockTier{TierName: "remote", Err: remote.ErrNotConfigured}
	failing := &MockTier{TierName: "local", Panic: "boom"}
	last := &MockTier{TierName: "fallback"}

	p := NewSceneParser([]Tier{skipped, failing, last}, WithLogger(zap.New(core)))
	res := p.ExtractWithTier(context.Background(), "x")

	assert.Equal(t, "fallback", res.Tier)
	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "extraction tier panicked, demoting", warnings[0].Message)
	assert.Equal(t, "local", warnings[0].ContextMap()["tier"])
}

func TestAllTiersFailingStillReturnsScene(t *testing.T) {
	p := NewSceneParser([]Tier{
		&MockTier{TierName: "a", Err: errors.New("x")},
		&MockTier{TierName: "b", Panic: errors.New("y")},
	})

	res := p.ExtractWithTier(context.Background(), `"Hi there"`)

	assert.Equal(t, "fallback", res.Tier)
	require.Len(t, res.Scene.Dialogue, 1)
	assert.Equal(t, "Character1", res.Scene.Dialogue[0].Character)
}

func TestNoTiers(t *testing.T) {
	scene := NewSceneParser(nil).Extract(context.Background(), "")
	assert.Equal(t, 10, scene.DurationEstimate)
}

func standardParser(c *remote.MockCompleter) *SceneParser {
	var completer llm.Completer
	if c != nil {
		completer = c
	}
	return NewStandardParser(completer, nil, config.Defaults())
}

func TestStandardParserWithoutRemoteUsesLocal(t *testing.T) {
	res := standardParser(nil).ExtractWithTier(context.Background(), `Alice: "I can't believe it!"`)

	assert.Equal(t, "local", res.Tier)
	require.Len(t, res.Scene.Dialogue, 1)
	line := res.Scene.Dialogue[0]
	assert.Equal(t, "Alice", line.Character)
	assert.Equal(t, "I can't believe it!", line.Text)
	assert.Equal(t, "excited", line.Emotion)
}

func TestStandardParserVerbAttribution(t *testing.T) {
	scene := standardParser(nil).Extract(context.Background(), `"Where are we going?" asked Bob`)

	require.Len(t, scene.Dialogue, 1)
	assert.Equal(t, "Bob", scene.Dialogue[0].Character)
	assert.Equal(t, "Where are we going?", scene.Dialogue[0].Text)
	assert.Equal(t, "questioning", scene.Dialogue[0].Emotion)
}

func TestStandardParserPlaceholders(t *testing.T) {
	scene := standardParser(nil).Extract(context.Background(), `"Hello." "Goodbye."`)

	require.Len(t, scene.Dialogue, 2)
	assert.Equal(t, "Character1", scene.Dialogue[0].Character)
	assert.Equal(t, "Character2", scene.Dialogue[1].Character)
}

func TestStandardParserSlugLineAndNeutralMood(t *testing.T) {
	scene := standardParser(nil).Extract(context.Background(), "INT. COFFEE SHOP - DAY\nTwo people wait.")

	assert.Equal(t, "COFFEE SHOP", scene.Environment)
	assert.Equal(t, model.MoodNeutral, scene.Mood)
}

func TestStandardParserRemoteSalvage(t *testing.T) {
	mock := &remote.MockCompleter{Response: "Sure, here you go:\n" +
		`{"description":"rooftop chase","characters":[{"name":"Kai"}],"dialogue":[],"actions":["runs"],"environment":"rooftop","mood":"tense","duration_estimate":8}` +
		"\nLet me know if you need changes."}

	res := standardParser(mock).ExtractWithTier(context.Background(), "Kai runs across the rooftops.")

	assert.Equal(t, "remote", res.Tier)
	assert.Equal(t, "rooftop", res.Scene.Environment)
	assert.Equal(t, 8, res.Scene.DurationEstimate)
	assert.Equal(t, 1, mock.Calls)
}

func TestStandardParserRemoteFailureDemotes(t *testing.T) {
	for _, mock := range []*remote.MockCompleter{
		{Err: errors.New("connection refused")},
		{Response: "no json here"},
	} {
		res := standardParser(mock).ExtractWithTier(context.Background(), `Alice: "Go!"`)

		assert.Equal(t, "local", res.Tier)
		assert.Equal(t, 1, mock.Calls)
		assert.Equal(t, "Alice", res.Scene.Dialogue[0].Character)
	}
}

func TestDurationAlwaysInRange(t *testing.T) {
	p := standardParser(nil)
	inputs := []string{
		"",
		" ",
		strings.Repeat("word ", 5000),
		strings.Repeat(`A: "x" `, 100),
		"\x00\xff\xfe",
		`"unterminated`,
		"((([[[",
		"INT. ",
	}
	for _, in := range inputs {
		scene := p.Extract(context.Background(), in)
		assert.GreaterOrEqual(t, scene.DurationEstimate, model.MinDuration)
		assert.LessOrEqual(t, scene.DurationEstimate, model.MaxDuration)
		assert.NotEmpty(t, scene.Environment)
		assert.NotEmpty(t, scene.Mood)
	}
}

func TestExtractDeterministicWithoutRemote(t *testing.T) {
	p := standardParser(nil)
	prompt := `In the crowded cafe, Mia looks nervous. Mia: "Is he coming?" Leo: "Soon..." (checks watch)`

	assert.Equal(t, p.Extract(context.Background(), prompt), p.Extract(context.Background(), prompt))
}

func TestSplitScript(t *testing.T) {
	script := "INT. KITCHEN - NIGHT\nAna: \"Hungry?\"\n\n  \n\r\nEXT. STREET - DAY\nRain falls.\n\n\n"
	blocks := SplitScript(script)

	require.Len(t, blocks, 2)
	assert.True(t, strings.HasPrefix(blocks[0], "INT. KITCHEN"))
	assert.Equal(t, "EXT. STREET - DAY\nRain falls.", blocks[1])
	assert.Empty(t, SplitScript("\n\n"))
}

func TestExtractScriptKeepsOrder(t *testing.T) {
	p := NewStandardParser(nil, nil, config.Defaults(), WithBatchLimit(3))
	script := "INT. KITCHEN - NIGHT\n\nEXT. STREET - DAY\n\nINT. OFFICE - MORNING\n\nSetting: a pier"

	results := p.ExtractScript(context.Background(), script)

	require.Len(t, results, 4)
	assert.Equal(t, "KITCHEN", results[0].Scene.Environment)
	assert.Equal(t, "STREET", results[1].Scene.Environment)
	assert.Equal(t, "OFFICE", results[2].Scene.Environment)
	assert.Equal(t, "a pier", results[3].Scene.Environment)
}

func TestStatus(t *testing.T) {
	s := standardParser(nil).Status()
	assert.Equal(t, []string{"remote", "local", "fallback"}, s.Tiers)
	assert.False(t, s.RemoteConfigured)
	assert.False(t, s.NERLoaded)

	s = standardParser(&remote.MockCompleter{}).Status()
	assert.True(t, s.RemoteConfigured)
}
