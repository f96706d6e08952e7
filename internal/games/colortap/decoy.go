package colortap

import (
	"math/rand"

	"github.com/vovakirdan/colortap/internal/config"
)

// DecoyAssigner picks the hazard tile for rounds where decoys are active.
type DecoyAssigner struct {
	rules config.ColorTapConfig
	rng   *rand.Rand
}

// NewDecoyAssigner creates an assigner drawing from rng.
func NewDecoyAssigner(rules config.ColorTapConfig, rng *rand.Rand) DecoyAssigner {
	return DecoyAssigner{rules: rules, rng: rng}
}

// Assign returns the decoy tile id for the round, or false when the level
// has no decoy. The decoy never carries the target color. If no candidate
// exists the round simply has no decoy.
func (d DecoyAssigner) Assign(level int, tiles Tiles, prompt Prompt) (int, bool) {
	if !d.rules.DecoyActive(level) {
		return 0, false
	}

	candidates := make([]int, 0, TileCount)
	for _, t := range tiles {
		if t.Color != prompt.Target {
			candidates = append(candidates, t.ID)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}

	return candidates[d.rng.Intn(len(candidates))], true
}
