// Package config provides YAML-based game configuration loading and
// difficulty management for Color Tap.
package config

import (
	"fmt"
	"time"
)

// ColorTapConfig contains all tunable rules for the Color Tap game.
type ColorTapConfig struct {
	Progress ProgressConfig `yaml:"progress"`
	Levels   LevelConfig    `yaml:"levels"`
	Prompt   PromptConfig   `yaml:"prompt"`
	Timer    TimerConfig    `yaml:"timer"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	FlashMS  int            `yaml:"flash_ms"`
}

// ProgressConfig defines the correct/incorrect bars.
type ProgressConfig struct {
	Max       int `yaml:"max"`
	ForgiveAt int `yaml:"forgive_at"`
	ForgiveTo int `yaml:"forgive_to"`
}

// LevelConfig defines the level at which each mechanic unlocks.
// Zero disables the mechanic.
type LevelConfig struct {
	Negation int `yaml:"negation"`
	Timer    int `yaml:"timer"`
	Decoy    int `yaml:"decoy"`
}

// PromptConfig defines prompt generation parameters.
type PromptConfig struct {
	NegationChance float64 `yaml:"negation_chance"`
}

// TimerConfig defines the per-round countdown.
type TimerConfig struct {
	Duration      float64 `yaml:"duration"`       // seconds per round
	DecoyDuration float64 `yaml:"decoy_duration"` // seconds per round once decoys unlock
	TickMS        int     `yaml:"tick_ms"`        // countdown tick period
	Epsilon       float64 `yaml:"epsilon"`        // remaining time treated as expired
}

// ScoringConfig defines score and bar deltas per outcome.
type ScoringConfig struct {
	Correct       int `yaml:"correct"`
	Wrong         int `yaml:"wrong"`
	DecoyHit      int `yaml:"decoy_hit"`
	TimerExpired  int `yaml:"timer_expired"`
	DecoyProgress int `yaml:"decoy_progress"` // incorrect bar increment for a decoy hit
}

// NegationEligible reports whether negated prompts can appear at level.
func (c ColorTapConfig) NegationEligible(level int) bool {
	return unlocked(c.Levels.Negation, level)
}

// TimerActive reports whether the countdown runs at level.
func (c ColorTapConfig) TimerActive(level int) bool {
	return unlocked(c.Levels.Timer, level)
}

// DecoyActive reports whether a decoy tile is placed at level.
func (c ColorTapConfig) DecoyActive(level int) bool {
	return unlocked(c.Levels.Decoy, level)
}

// RoundDuration returns the countdown length in seconds for level.
func (c ColorTapConfig) RoundDuration(level int) float64 {
	if c.DecoyActive(level) {
		return c.Timer.DecoyDuration
	}
	return c.Timer.Duration
}

// TickPeriod returns the countdown tick period.
func (c ColorTapConfig) TickPeriod() time.Duration {
	return time.Duration(c.Timer.TickMS) * time.Millisecond
}

// FlashDuration returns how long the success/alert flash stays visible.
func (c ColorTapConfig) FlashDuration() time.Duration {
	return time.Duration(c.FlashMS) * time.Millisecond
}

// Mechanics lists the mechanics active at level, e.g.
// ["negated prompts", "9.5s timer", "decoy tile"]. Empty means plain rounds.
func (c ColorTapConfig) Mechanics(level int) []string {
	var m []string
	if c.NegationEligible(level) {
		m = append(m, "negated prompts")
	}
	if c.TimerActive(level) {
		m = append(m, fmt.Sprintf("%.1fs timer", c.RoundDuration(level)))
	}
	if c.DecoyActive(level) {
		m = append(m, "decoy tile")
	}
	return m
}

// LastUnlock returns the highest level at which a mechanic unlocks, or 1
// when every mechanic is disabled.
func (c ColorTapConfig) LastUnlock() int {
	return max(c.Levels.Negation, c.Levels.Timer, c.Levels.Decoy, 1)
}

func unlocked(threshold, level int) bool {
	return threshold > 0 && level >= threshold
}
