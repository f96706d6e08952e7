package config

import (
	_ "embed"
)

//go:embed defaults/colortap.yaml
var defaultColorTapYAML []byte

// DefaultColorTapConfig returns the default Color Tap rules.
func DefaultColorTapConfig() ColorTapConfig {
	return ColorTapConfig{
		Progress: ProgressConfig{
			Max:       5,
			ForgiveAt: 4,
			ForgiveTo: 3,
		},
		Levels: LevelConfig{
			Negation: 2,
			Timer:    3,
			Decoy:    4,
		},
		Prompt: PromptConfig{
			NegationChance: 0.25,
		},
		Timer: TimerConfig{
			Duration:      10.0,
			DecoyDuration: 9.5,
			TickMS:        10,
			Epsilon:       0.01,
		},
		Scoring: ScoringConfig{
			Correct:       1,
			Wrong:         -1,
			DecoyHit:      -2,
			TimerExpired:  -1,
			DecoyProgress: 2,
		},
		FlashMS: 100,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultColorTapYAML
}
