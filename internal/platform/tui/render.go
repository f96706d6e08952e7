package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colortap/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
// Tile colors use the hex values of the CSS colors the prompts name;
// lipgloss downsamples them on 256-color terminals.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

	core.ColorTileBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("#0000FF")),
	core.ColorTileSalmon:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FA8072")),
	core.ColorTileSilver:    lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0")),
	core.ColorTilePurple:    lipgloss.NewStyle().Foreground(lipgloss.Color("#800080")),
	core.ColorTileGoldenrod: lipgloss.NewStyle().Foreground(lipgloss.Color("#DAA520")),
	core.ColorTileSienna:    lipgloss.NewStyle().Foreground(lipgloss.Color("#A0522D")),
	core.ColorTileViolet:    lipgloss.NewStyle().Foreground(lipgloss.Color("#EE82EE")),
	core.ColorTileYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
	core.ColorTileTeal:      lipgloss.NewStyle().Foreground(lipgloss.Color("#008080")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
