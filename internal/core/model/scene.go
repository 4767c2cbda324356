package model

import "fmt"

const (
	EmotionNeutral      = "neutral"
	MoodNeutral         = "neutral"
	UnspecifiedLocation = "unspecified location"

	MinDuration     = 5
	MaxDuration     = 30
	DefaultDuration = 10
)

// Character is a person detected in the scene. Name is the lookup key used by
// DialogueLine.Character and is not guaranteed to be unique.
type Character struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	VoiceCharacteristics string   `json:"voice_characteristics"`
	Emotions             []string `json:"emotions"`
	Actions              []string `json:"actions"`
}

type DialogueLine struct {
	Character string   `json:"character"`
	Text      string   `json:"text"`
	Emotion   string   `json:"emotion"`
	Action    string   `json:"action"`
	Timing    float64  `json:"timing"`
	NonVerbal []string `json:"non_verbal"`
}

// ParsedScene is the normalized record handed to the generation pipeline.
type ParsedScene struct {
	Description      string         `json:"description"`
	Characters       []Character    `json:"characters"`
	Dialogue         []DialogueLine `json:"dialogue"`
	Actions          []string       `json:"actions"`
	Environment      string         `json:"environment"`
	Mood             string         `json:"mood"`
	DurationEstimate int            `json:"duration_estimate"`
}

// Normalize enforces the schema invariants in place: no nil slices, no empty
// environment, mood or emotion, and a duration inside [MinDuration, MaxDuration].
func (s *ParsedScene) Normalize() {
	if s.Characters == nil {
		s.Characters = []Character{}
	}
	for i := range s.Characters {
		c := &s.Characters[i]
		if c.Emotions == nil {
			c.Emotions = []string{}
		}
		if c.Actions == nil {
			c.Actions = []string{}
		}
	}
	if s.Dialogue == nil {
		s.Dialogue = []DialogueLine{}
	}
	for i := range s.Dialogue {
		d := &s.Dialogue[i]
		if d.Emotion == "" {
			d.Emotion = EmotionNeutral
		}
		if d.NonVerbal == nil {
			d.NonVerbal = []string{}
		}
	}
	if s.Actions == nil {
		s.Actions = []string{}
	}
	if s.Environment == "" {
		s.Environment = UnspecifiedLocation
	}
	if s.Mood == "" {
		s.Mood = MoodNeutral
	}
	s.DurationEstimate = ClampDuration(s.DurationEstimate)
}

func ClampDuration(d int) int {
	if d < MinDuration {
		return MinDuration
	}
	if d > MaxDuration {
		return MaxDuration
	}
	return d
}

// PlaceholderName returns the synthetic speaker name for the i-th (1-based)
// unattributed line.
func PlaceholderName(i int) string {
	return fmt.Sprintf("Character%d", i)
}
