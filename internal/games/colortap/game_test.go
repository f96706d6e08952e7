package colortap

import (
	"strings"
	"testing"

	"github.com/vovakirdan/colortap/internal/config"
	"github.com/vovakirdan/colortap/internal/core"
	"github.com/vovakirdan/colortap/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func tap(g *Game, id int) core.StepResult {
	in := core.NewInputFrame()
	in.SelectTile(id)
	return g.Step(in)
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create(%q) error: %v", GameID, err)
	}
	if g.Title() != "Color Tap" {
		t.Errorf("Title() = %q, want %q", g.Title(), "Color Tap")
	}
}

func TestConfirmStartsGame(t *testing.T) {
	g := newTestGame(t)

	if st := g.State(); !st.Paused || st.Level != 1 {
		t.Fatalf("before start: %+v, want paused at level 1", st)
	}

	res := press(g, core.ActionConfirm)
	if res.State.Paused {
		t.Error("expected game running after confirm")
	}
	if g.Snapshot().Phase != PhasePlaying {
		t.Errorf("phase = %v, want playing", g.Snapshot().Phase)
	}
}

func TestTapThroughGame(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	for range 5 {
		tap(g, correctTile(g.Snapshot()))
	}
	if g.Snapshot().Phase != PhaseLevelComplete {
		t.Fatalf("phase = %v, want level_complete", g.Snapshot().Phase)
	}

	press(g, core.ActionConfirm)
	if st := g.State(); st.Level != 2 || st.Score != 5 {
		t.Errorf("after continue: %+v, want level 2 score 5", st)
	}
}

func TestTwoTapsInOneFrame(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)
	before := g.Snapshot()

	in := core.NewInputFrame()
	in.SelectTile(0)
	in.SelectTile(1)
	g.Step(in)

	after := g.Snapshot()
	if got := after.Progress.Correct + after.Progress.Incorrect; got != 2 {
		t.Errorf("taps counted = %d, want 2 (progress %+v)", got, after.Progress)
	}
	if after.Round != before.Round+2 {
		t.Errorf("round = %d, want %d", after.Round, before.Round+2)
	}
}

func TestGameOverState(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	for range 5 {
		tap(g, wrongTile(g.Snapshot()))
	}
	st := g.State()
	if !st.GameOver {
		t.Fatal("expected game over after five misses")
	}
	if st.Score != -5 {
		t.Errorf("Score = %d, want -5", st.Score)
	}

	press(g, core.ActionConfirm)
	if g.State().GameOver || g.Snapshot().Phase != PhaseAwaitingStart {
		t.Error("confirm after game over should start over")
	}
}

func TestPauseAction(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)

	press(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	round := g.Snapshot().Round
	tap(g, 0)
	if g.Snapshot().Round != round {
		t.Error("taps while paused must be ignored")
	}

	press(g, core.ActionPause)
	if g.State().Paused {
		t.Error("expected resumed")
	}
}

func TestRetryKeepsScore(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)
	tap(g, correctTile(g.Snapshot()))
	tap(g, correctTile(g.Snapshot()))

	press(g, core.ActionRetry)
	snap := g.Snapshot()
	if snap.Phase != PhaseAwaitingStart || snap.Progress.Score != 2 || snap.Progress.Correct != 0 {
		t.Errorf("after retry: phase %v progress %+v", snap.Phase, snap.Progress)
	}

	press(g, core.ActionRestart)
	if g.State().Score != 0 {
		t.Errorf("Score after restart = %d, want 0", g.State().Score)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t)
	g2 := newTestGame(t)

	for i := range 40 {
		for _, g := range []*Game{g1, g2} {
			if i == 0 {
				press(g, core.ActionConfirm)
				continue
			}
			tap(g, i%TileCount)
		}
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestStartLevelConsumed(t *testing.T) {
	SetStartLevel(4)
	g := newTestGame(t)
	if g.State().Level != 4 {
		t.Errorf("Level = %d, want 4", g.State().Level)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	if g.State().Level != 1 {
		t.Errorf("Level after second reset = %d, want 1", g.State().Level)
	}
}

func TestKeypadMapping(t *testing.T) {
	tests := []struct {
		key  rune
		tile int
	}{
		{'7', 0}, {'8', 1}, {'9', 2},
		{'4', 3}, {'5', 4}, {'6', 5},
		{'1', 6}, {'2', 7}, {'3', 8},
	}

	for _, tt := range tests {
		got, ok := TileForKey(tt.key)
		if !ok || got != tt.tile {
			t.Errorf("TileForKey(%q) = %d, %v; want %d", tt.key, got, ok, tt.tile)
		}
		if k := KeyForTile(tt.tile); k != tt.key {
			t.Errorf("KeyForTile(%d) = %q, want %q", tt.tile, k, tt.key)
		}
	}

	if _, ok := TileForKey('0'); ok {
		t.Error("'0' should not map to a tile")
	}
}

func TestTileAt(t *testing.T) {
	g := newTestGame(t)

	for id, r := range g.layout.tiles {
		cx, cy := r.Center()
		got, ok := g.TileAt(cx, cy)
		if !ok || got != id {
			t.Errorf("TileAt(center of %d) = %d, %v", id, got, ok)
		}
	}

	if _, ok := g.TileAt(0, 0); ok {
		t.Error("corner of the screen is not a tile")
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionConfirm)
	tap(g, correctTile(g.Snapshot()))
	before := g.Snapshot()

	g.Resize(100, 40)
	if g.Snapshot() != before {
		t.Error("resize must not touch session state")
	}

	g.Resize(20, 10)
	if !g.State().Paused {
		t.Error("too-small screen should report paused")
	}
	round := g.Snapshot().Round
	tap(g, 0)
	if g.Snapshot().Round != round {
		t.Error("input must be ignored while the screen is too small")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "COLOR TAP  Level 1") {
		t.Error("missing title line")
	}
	if !strings.Contains(out, "READY?") {
		t.Error("missing start overlay")
	}

	press(g, core.ActionConfirm)
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, g.Snapshot().Prompt.Text()) {
		t.Errorf("prompt %q not drawn", g.Snapshot().Prompt.Text())
	}

	// The prompt word is inked in the display color, never the target.
	c := g.Snapshot().Prompt.Display.ScreenColor()
	box := g.layout.prompt
	found := false
	for x := box.X; x < box.Right(); x++ {
		if screen.GetCell(x, box.Y+1).Color == c {
			found = true
			break
		}
	}
	if !found {
		t.Error("prompt not drawn in its display color")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	g.Resize(30, 10)
	screen := core.NewScreen(30, 10)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func correctTile(snap Snapshot) int {
	decoy, hasDecoy := snap.Decoy()
	for _, tile := range snap.Tiles {
		if snap.Prompt.Matches(tile.Color) && (!hasDecoy || tile.ID != decoy) {
			return tile.ID
		}
	}
	return -1
}

func wrongTile(snap Snapshot) int {
	decoy, hasDecoy := snap.Decoy()
	for _, tile := range snap.Tiles {
		if !snap.Prompt.Matches(tile.Color) && (!hasDecoy || tile.ID != decoy) {
			return tile.ID
		}
	}
	return -1
}

func TestNewWithOptions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetStartLevel(2)
	defer SetStartLevel(0)

	g := NewWithOptions(Options{Difficulty: config.DifficultyHard, StartLevel: 3})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 9})

	if g.State().Level != 3 {
		t.Errorf("Level = %d, want 3 from options", g.State().Level)
	}
	if g.Rules().Timer.Duration != 8.0 {
		t.Errorf("Timer.Duration = %v, want hard preset 8.0", g.Rules().Timer.Duration)
	}
	if selectedStartLevel != 2 {
		t.Error("instance options must not consume the package start level")
	}
}
