package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for HUD and overlay elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)

// Tile palette colors. Names follow the CSS colors the game prompts with.
const (
	ColorTileBlue Color = iota + 32
	ColorTileSalmon
	ColorTileSilver
	ColorTilePurple
	ColorTileGoldenrod
	ColorTileSienna
	ColorTileViolet
	ColorTileYellow
	ColorTileTeal
)
