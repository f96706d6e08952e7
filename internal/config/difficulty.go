package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
// Empty input maps to normal; unknown names report false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset disables mechanic progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyColorTapPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded rules untouched.
func ApplyColorTapPreset(cfg *ColorTapConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timer.Duration = 12.0
		cfg.Timer.DecoyDuration = 11.5
		cfg.Prompt.NegationChance = 0.15
		cfg.Levels.Decoy = 5
	case DifficultyHard:
		cfg.Timer.Duration = 8.0
		cfg.Timer.DecoyDuration = 7.5
		cfg.Prompt.NegationChance = 0.35
		cfg.Levels.Timer = 2
		cfg.Levels.Decoy = 3
	case DifficultyFixed:
		// Every level plays like level 1
		cfg.Levels = LevelConfig{}
	}
}
