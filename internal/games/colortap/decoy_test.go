package colortap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/colortap/internal/config"
)

func TestDecoyInactiveBeforeUnlock(t *testing.T) {
	rules := config.DefaultColorTapConfig()
	rng := rand.New(rand.NewSource(11))
	gen := NewRoundGenerator(rules, rng)
	decoys := NewDecoyAssigner(rules, rng)

	for level := 1; level < rules.Levels.Decoy; level++ {
		tiles, prompt := gen.NewRound(level)
		_, ok := decoys.Assign(level, tiles, prompt)
		assert.False(t, ok, "level %d has no decoy", level)
	}
}

func TestDecoyNeverTarget(t *testing.T) {
	rules := config.DefaultColorTapConfig()
	rng := rand.New(rand.NewSource(5))
	gen := NewRoundGenerator(rules, rng)
	decoys := NewDecoyAssigner(rules, rng)

	for range 300 {
		tiles, prompt := gen.NewRound(rules.Levels.Decoy)
		id, ok := decoys.Assign(rules.Levels.Decoy, tiles, prompt)
		require.True(t, ok)
		require.GreaterOrEqual(t, id, 0)
		require.Less(t, id, TileCount)
		assert.NotEqual(t, prompt.Target, tiles[id].Color)
	}
}

func TestDecoyCoversAllCandidates(t *testing.T) {
	rules := config.DefaultColorTapConfig()
	decoys := NewDecoyAssigner(rules, rand.New(rand.NewSource(9)))

	var tiles Tiles
	for i, c := range Palette {
		tiles[i] = Tile{ID: i, Color: c}
	}
	prompt := Prompt{Target: Blue, Display: Teal}

	seen := make(map[int]bool)
	for range 1000 {
		id, ok := decoys.Assign(5, tiles, prompt)
		require.True(t, ok)
		seen[id] = true
	}
	assert.Len(t, seen, TileCount-1)
	assert.False(t, seen[0], "slot 0 holds the target")
}

func TestDecoyFixedPresetDisabled(t *testing.T) {
	rules := config.DefaultColorTapConfig()
	config.ApplyColorTapPreset(&rules, config.DifficultyFixed)
	decoys := NewDecoyAssigner(rules, rand.New(rand.NewSource(1)))

	_, ok := decoys.Assign(50, Tiles{}, Prompt{Target: Blue})
	assert.False(t, ok)
}
