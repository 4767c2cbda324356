package remote

import (
	"math"
	"strconv"
	"strings"

	"github.com/agenthands/cinescene/internal/core/model"
)

// decodeScene maps a loosely typed reply onto the scene schema. Every key is
// optional, and scalars of the wrong JSON type are coerced when the intent is
// unambiguous (a number in a string, a single string where a list is
// expected). Invariants are enforced afterwards by Normalize.
func decodeScene(data map[string]any) model.ParsedScene {
	scene := model.ParsedScene{
		Description:      asString(data["description"]),
		Characters:       []model.Character{},
		Dialogue:         []model.DialogueLine{},
		Actions:          asStringSlice(data["actions"]),
		Environment:      asString(data["environment"]),
		Mood:             asString(data["mood"]),
		DurationEstimate: asDuration(data["duration_estimate"]),
	}

	for _, item := range asList(data["characters"]) {
		switch v := item.(type) {
		case string:
			if v != "" {
				scene.Characters = append(scene.Characters, model.Character{Name: v})
			}
		case map[string]any:
			scene.Characters = append(scene.Characters, model.Character{
				Name:                 asString(v["name"]),
				Description:          asString(v["description"]),
				VoiceCharacteristics: asString(v["voice_characteristics"]),
				Emotions:             asStringSlice(v["emotions"]),
				Actions:              asStringSlice(v["actions"]),
			})
		}
	}

	for _, item := range asList(data["dialogue"]) {
		v, ok := item.(map[string]any)
		if !ok {
			continue
		}
		scene.Dialogue = append(scene.Dialogue, model.DialogueLine{
			Character: asString(v["character"]),
			Text:      asString(v["text"]),
			Emotion:   asString(v["emotion"]),
			Action:    asString(v["action"]),
			Timing:    asFloat(v["timing"]),
			NonVerbal: asStringSlice(v["non_verbal"]),
		})
	}

	scene.Normalize()
	return scene
}

func asList(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case nil:
		return nil
	default:
		return []any{t}
	}
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func asStringSlice(v any) []string {
	out := []string{}
	for _, item := range asList(v) {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return 0
}

// asDuration reads a duration in seconds, clamped to the scene range before
// the float is converted so huge values cannot overflow int.
func asDuration(v any) int {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return model.DefaultDuration
		}
		f = parsed
	default:
		return model.DefaultDuration
	}
	if math.IsNaN(f) {
		return model.DefaultDuration
	}
	f = math.Max(model.MinDuration, math.Min(model.MaxDuration, f))
	return int(math.Round(f))
}
