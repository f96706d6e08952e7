package colortap

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/colortap/internal/config"
)

// TileCount is the number of tile slots on the board.
const TileCount = PaletteSize

// Tile is one clickable slot. IDs are stable slot indexes 0..TileCount-1.
type Tile struct {
	ID    int
	Color Color
}

// Tiles is a full board layout. Index i always holds the tile with ID i.
type Tiles [TileCount]Tile

// Colors returns the tile colors in slot order.
func (t Tiles) Colors() [TileCount]Color {
	var out [TileCount]Color
	for i, tile := range t {
		out[i] = tile.Color
	}
	return out
}

// Prompt is the instruction shown for a round.
// Display is the ink the word is drawn in and never equals Target.
type Prompt struct {
	Target  Color
	Negated bool
	Display Color
}

// Matches reports whether tapping a tile of color c satisfies the prompt.
func (p Prompt) Matches(c Color) bool {
	if p.Negated {
		return c != p.Target
	}
	return c == p.Target
}

// Text returns the prompt as shown to the player, e.g. "TEAL" or "NOT TEAL".
func (p Prompt) Text() string {
	word := strings.ToUpper(p.Target.String())
	if p.Negated {
		return "NOT " + word
	}
	return word
}

// RoundGenerator produces tile layouts and prompts.
// It only reads the random source; all game state stays with the Session.
type RoundGenerator struct {
	rules config.ColorTapConfig
	rng   *rand.Rand
}

// NewRoundGenerator creates a generator drawing from rng.
func NewRoundGenerator(rules config.ColorTapConfig, rng *rand.Rand) RoundGenerator {
	return RoundGenerator{rules: rules, rng: rng}
}

// NewRound shuffles the palette onto the tile slots and draws a prompt.
// Target and display come from a second, independent shuffle so they are
// always distinct. Negation is rolled only when the level allows it.
func (g RoundGenerator) NewRound(level int) (Tiles, Prompt) {
	var tiles Tiles
	for i, c := range g.shuffledPalette() {
		tiles[i] = Tile{ID: i, Color: c}
	}

	draw := g.shuffledPalette()
	prompt := Prompt{
		Target:  draw[0],
		Display: draw[1],
	}

	if g.rules.NegationEligible(level) {
		prompt.Negated = g.rng.Float64() < g.rules.Prompt.NegationChance
	}

	return tiles, prompt
}

// shuffledPalette returns a uniformly random permutation of the palette.
func (g RoundGenerator) shuffledPalette() [PaletteSize]Color {
	colors := Palette
	// rand.Shuffle is a Fisher-Yates shuffle
	g.rng.Shuffle(len(colors), func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})
	return colors
}
