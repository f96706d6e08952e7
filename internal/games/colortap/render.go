package colortap

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/colortap/internal/core"
)

const (
	tileW   = 9
	tileH   = 3
	tileGap = 1
	gridDim = 3 // tiles per row and column

	gridW    = gridDim*tileW + (gridDim-1)*tileGap
	gridH    = gridDim*tileH + (gridDim-1)*tileGap
	contentH = 21

	minScreenW = 46
	minScreenH = contentH + 1
)

// layout holds the screen positions computed from the terminal size.
type layout struct {
	top    int
	left   int
	prompt core.Rect
	tiles  [TileCount]core.Rect
}

// computeLayout centers the content block on a w x h screen.
func computeLayout(w, h int) layout {
	l := layout{
		top:  max((h-contentH)/2, 0),
		left: max((w-gridW)/2, 0),
	}
	l.prompt = core.NewRect(l.left, l.top+2, gridW, 3)

	gridTop := l.top + 7
	for id := range TileCount {
		row, col := id/gridDim, id%gridDim
		l.tiles[id] = core.NewRect(
			l.left+col*(tileW+tileGap),
			gridTop+row*(tileH+tileGap),
			tileW, tileH,
		)
	}
	return l
}

// Render draws the current snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		return
	}

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)
	g.renderPrompt(dst, snap)
	g.renderGrid(dst, snap)
	g.renderOverlay(dst, snap)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	l := g.layout

	dst.DrawTextCentered(l.top, fmt.Sprintf("COLOR TAP  Level %d", snap.Level), core.ColorBrightWhite)

	dst.DrawText(l.left, l.top+1, fmt.Sprintf("Score: %d", snap.Progress.Score))
	if snap.Countdown.Active {
		timer := fmt.Sprintf("Time: %4.1fs", snap.Countdown.Remaining)
		color := core.ColorWhite
		if snap.Countdown.Remaining <= 3 {
			color = core.ColorBrightRed
		}
		dst.DrawTextColored(l.left+gridW-len(timer), l.top+1, timer, color)
	}

	misses := "Misses " + bar(snap.Progress.Incorrect, g.rules.Progress.Max)
	if snap.Progress.Warning {
		misses += " !"
	}
	dst.DrawTextColored(l.left, l.top+5, misses, core.ColorRed)

	gridBottom := l.tiles[TileCount-1].Bottom()
	hits := "Hits   " + bar(snap.Progress.Correct, g.rules.Progress.Max)
	dst.DrawTextColored(l.left, gridBottom+1, hits, core.ColorGreen)

	dst.DrawTextCentered(gridBottom+2, "1-9 tap  P pause  T retry  R restart  Q quit", core.ColorGray)
}

func (g *Game) renderPrompt(dst *core.Screen, snap Snapshot) {
	border := core.ColorGray
	switch snap.Flash {
	case FlashSuccess:
		border = core.ColorBrightGreen
	case FlashAlert:
		border = core.ColorBrightRed
	}

	box := g.layout.prompt
	dst.DrawBox(box, border)

	if snap.Phase == PhaseAwaitingStart {
		// Hide the first word until the player is ready.
		dst.DrawTextCentered(box.Y+1, "? ? ?", core.ColorGray)
		return
	}
	dst.DrawTextCentered(box.Y+1, snap.Prompt.Text(), snap.Prompt.Display.ScreenColor())
}

func (g *Game) renderGrid(dst *core.Screen, snap Snapshot) {
	decoy, hasDecoy := snap.Decoy()

	for id, r := range g.layout.tiles {
		fill := '█'
		if hasDecoy && id == decoy {
			fill = '▒'
		}
		dst.FillRect(r, fill, snap.Tiles[id].Color.ScreenColor())

		cx, cy := r.Center()
		dst.SetColored(cx, cy, KeyForTile(id), core.ColorBrightWhite)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	var lines []string
	switch snap.Phase {
	case PhaseAwaitingStart:
		lines = []string{"READY?", "Press SPACE to start"}
	case PhasePaused:
		lines = []string{"PAUSED", "Press P to resume"}
	case PhaseLevelComplete:
		lines = []string{"Next Level!", fmt.Sprintf("Score %d  SPACE to continue", snap.Progress.Score)}
	case PhaseGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Final score %d", snap.Progress.Score), "SPACE or R to play again"}
	default:
		return
	}

	width := 0
	for _, s := range lines {
		width = max(width, len(s))
	}
	box := core.NewRect((g.screenW-width-4)/2, g.layout.tiles[4].Y-1, width+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, s := range lines {
		dst.DrawTextCentered(box.Y+1+i, s, core.ColorBrightWhite)
	}
}

// bar draws filled and empty slots, e.g. [■■□□□].
func bar(n, limit int) string {
	n = core.Clamp(n, 0, limit)
	return "[" + strings.Repeat("■", n) + strings.Repeat("□", limit-n) + "]"
}
