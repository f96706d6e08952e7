package colortap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/colortap/internal/config"
)

func TestNewRoundIsPermutation(t *testing.T) {
	gen := NewRoundGenerator(config.DefaultColorTapConfig(), rand.New(rand.NewSource(1)))

	for level := 1; level <= 6; level++ {
		for range 50 {
			tiles, _ := gen.NewRound(level)

			seen := make(map[Color]bool)
			for i, tile := range tiles {
				assert.Equal(t, i, tile.ID, "tile ids follow slot order")
				require.True(t, tile.Color.Valid())
				seen[tile.Color] = true
			}
			assert.Len(t, seen, PaletteSize, "every palette color appears exactly once")
		}
	}
}

func TestPromptDisplayNeverTarget(t *testing.T) {
	gen := NewRoundGenerator(config.DefaultColorTapConfig(), rand.New(rand.NewSource(7)))

	for range 500 {
		_, prompt := gen.NewRound(3)
		assert.NotEqual(t, prompt.Target, prompt.Display)
		assert.True(t, prompt.Target.Valid())
		assert.True(t, prompt.Display.Valid())
	}
}

func TestNoNegationBeforeUnlock(t *testing.T) {
	rules := config.DefaultColorTapConfig()
	rules.Prompt.NegationChance = 1
	gen := NewRoundGenerator(rules, rand.New(rand.NewSource(3)))

	for range 100 {
		_, prompt := gen.NewRound(1)
		assert.False(t, prompt.Negated, "level 1 never negates")
	}

	_, prompt := gen.NewRound(rules.Levels.Negation)
	assert.True(t, prompt.Negated, "chance 1 always negates once unlocked")
}

func TestNegationChanceZero(t *testing.T) {
	rules := config.DefaultColorTapConfig()
	rules.Prompt.NegationChance = 0
	gen := NewRoundGenerator(rules, rand.New(rand.NewSource(3)))

	for range 100 {
		_, prompt := gen.NewRound(10)
		assert.False(t, prompt.Negated)
	}
}

func TestNegationRate(t *testing.T) {
	rules := config.DefaultColorTapConfig()
	gen := NewRoundGenerator(rules, rand.New(rand.NewSource(11)))

	const rounds = 10000
	negated := 0
	for range rounds {
		if _, prompt := gen.NewRound(rules.Levels.Negation); prompt.Negated {
			negated++
		}
	}

	rate := float64(negated) / rounds
	assert.InDelta(t, rules.Prompt.NegationChance, rate, 0.03, "negated %d of %d", negated, rounds)
}

func TestPromptMatches(t *testing.T) {
	tests := []struct {
		name   string
		prompt Prompt
		color  Color
		want   bool
	}{
		{"plain hit", Prompt{Target: Teal, Display: Blue}, Teal, true},
		{"plain miss", Prompt{Target: Teal, Display: Blue}, Blue, false},
		{"negated target", Prompt{Target: Teal, Negated: true, Display: Blue}, Teal, false},
		{"negated other", Prompt{Target: Teal, Negated: true, Display: Blue}, Sienna, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.prompt.Matches(tt.color))
		})
	}
}

func TestPromptText(t *testing.T) {
	assert.Equal(t, "GOLDENROD", Prompt{Target: Goldenrod}.Text())
	assert.Equal(t, "NOT TEAL", Prompt{Target: Teal, Negated: true}.Text())
}

func TestPaletteNames(t *testing.T) {
	want := []string{"blue", "salmon", "silver", "purple", "goldenrod", "sienna", "violet", "yellow", "teal"}
	for i, c := range Palette {
		assert.Equal(t, want[i], c.String())
	}
	assert.Equal(t, "unknown", Color(PaletteSize).String())
	assert.False(t, Color(-1).Valid())
}
