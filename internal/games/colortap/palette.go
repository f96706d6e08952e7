// Package colortap implements Color Tap, a timed color-matching reaction game.
//
// The player taps the tile whose color matches the color word shown in the
// prompt. The word is drawn in a different color to mislead, later levels
// negate the prompt ("NOT TEAL"), add a per-round countdown and plant a
// decoy tile that is always penalized.
package colortap

import "github.com/vovakirdan/colortap/internal/core"

// Color is a member of the fixed tile palette.
type Color int

const (
	Blue Color = iota
	Salmon
	Silver
	Purple
	Goldenrod
	Sienna
	Violet
	Yellow
	Teal
)

// PaletteSize is the number of palette colors, and therefore tiles.
const PaletteSize = 9

// Palette lists every tile color in canonical order.
var Palette = [PaletteSize]Color{Blue, Salmon, Silver, Purple, Goldenrod, Sienna, Violet, Yellow, Teal}

var colorNames = [PaletteSize]string{
	"blue", "salmon", "silver", "purple", "goldenrod", "sienna", "violet", "yellow", "teal",
}

var screenColors = [PaletteSize]core.Color{
	core.ColorTileBlue,
	core.ColorTileSalmon,
	core.ColorTileSilver,
	core.ColorTilePurple,
	core.ColorTileGoldenrod,
	core.ColorTileSienna,
	core.ColorTileViolet,
	core.ColorTileYellow,
	core.ColorTileTeal,
}

// Valid reports whether c is a palette member.
func (c Color) Valid() bool {
	return c >= 0 && int(c) < PaletteSize
}

// String returns the lowercase color name used in prompts.
func (c Color) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return colorNames[c]
}

// ScreenColor maps the palette color to a terminal cell color.
func (c Color) ScreenColor() core.Color {
	if !c.Valid() {
		return core.ColorDefault
	}
	return screenColors[c]
}
