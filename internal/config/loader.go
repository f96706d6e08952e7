package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadColorTap loads Color Tap configuration.
// Search order: customPath -> ~/.colortap/config.yaml -> ./configs/colortap.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadColorTap(customPath string) (ColorTapConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultColorTapConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultColorTapConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/colortap.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultColorTapYAML)
	if err != nil {
		return DefaultColorTapConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (ColorTapConfig, error) {
	cfg := DefaultColorTapConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the rules describe a playable game.
func (c ColorTapConfig) Validate() error {
	switch {
	case c.Progress.Max < 1:
		return fmt.Errorf("config: progress.max must be at least 1, got %d", c.Progress.Max)
	case c.Progress.ForgiveAt < 1 || c.Progress.ForgiveAt >= c.Progress.Max:
		return fmt.Errorf("config: progress.forgive_at must be within [1, max), got %d", c.Progress.ForgiveAt)
	case c.Progress.ForgiveTo < 0 || c.Progress.ForgiveTo > c.Progress.ForgiveAt:
		return fmt.Errorf("config: progress.forgive_to must be within [0, forgive_at], got %d", c.Progress.ForgiveTo)
	case c.Prompt.NegationChance < 0 || c.Prompt.NegationChance > 1:
		return fmt.Errorf("config: prompt.negation_chance must be within [0, 1], got %g", c.Prompt.NegationChance)
	case c.Timer.Duration <= 0 || c.Timer.DecoyDuration <= 0:
		return fmt.Errorf("config: timer durations must be positive")
	case c.Timer.TickMS <= 0:
		return fmt.Errorf("config: timer.tick_ms must be positive, got %d", c.Timer.TickMS)
	case c.Timer.Epsilon < 0:
		return fmt.Errorf("config: timer.epsilon must not be negative, got %g", c.Timer.Epsilon)
	case c.Scoring.DecoyProgress < 1:
		// Counters must only grow on a decoy hit
		return fmt.Errorf("config: scoring.decoy_progress must be at least 1, got %d", c.Scoring.DecoyProgress)
	case c.FlashMS < 0:
		return fmt.Errorf("config: flash_ms must not be negative, got %d", c.FlashMS)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colortap", filename)
}
