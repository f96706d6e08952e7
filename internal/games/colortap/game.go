package colortap

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colortap/internal/config"
	"github.com/vovakirdan/colortap/internal/core"
	"github.com/vovakirdan/colortap/internal/registry"
)

// GameID is the registry identifier for Color Tap.
const GameID = "colortap"

// Package-level settings applied on the next Reset, set from the CLI.
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
	sessionLogger      *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetStartLevel sets the level the next game starts on. 0 means level 1.
// The value is consumed by the next Reset.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	sessionLogger = l
}

// Options configures one game instance. Games built with New read the
// package-level settings instead.
type Options struct {
	ConfigPath string
	Difficulty config.DifficultyPreset
	StartLevel int // 0 means level 1; consumed by the first Reset
	Logger     *log.Logger
}

// globalOptions snapshots the package-level settings, consuming the start
// level.
func globalOptions() Options {
	opts := Options{
		ConfigPath: configPath,
		Difficulty: difficultyPreset,
		StartLevel: selectedStartLevel,
		Logger:     sessionLogger,
	}
	selectedStartLevel = 0 // Reset after use
	return opts
}

// Game adapts a Session to the platform's fixed-tick game interface.
// The session's scheduler is advanced by one frame per Step.
type Game struct {
	opts       Options
	ownOptions bool

	rules     config.ColorTapConfig
	session   *Session
	scheduler *StepScheduler
	frame     time.Duration
	tick      uint64

	screenW  int
	screenH  int
	tooSmall bool
	layout   layout
}

// New creates a Color Tap game configured from the package-level settings.
// Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// NewWithOptions creates a game that ignores the package-level settings.
// Used by the SSH server, where sessions pick their own difficulty.
func NewWithOptions(opts Options) *Game {
	return &Game{opts: opts, ownOptions: true}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Color Tap"
}

// Reset loads the rules and starts a fresh session awaiting start.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	opts := g.opts
	if g.ownOptions {
		g.opts.StartLevel = 0
	} else {
		opts = globalOptions()
	}

	rules, err := config.LoadColorTap(opts.ConfigPath)
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.Warn("falling back to default rules", "err", err)
		}
		rules = config.DefaultColorTapConfig()
	}
	if opts.Difficulty != "" {
		config.ApplyColorTapPreset(&rules, opts.Difficulty)
	}
	g.rules = rules

	startLevel := max(opts.StartLevel, 1)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.frame = time.Second / time.Duration(tickRate)
	g.tick = 0

	g.scheduler = NewStepScheduler()
	g.session = NewSession(SessionOptions{
		Rules:      rules,
		Seed:       cfg.Seed,
		StartLevel: startLevel,
		Scheduler:  g.scheduler,
		Logger:     opts.Logger,
	})

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout without touching session state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = computeLayout(w, h)
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step applies this frame's input and advances the clock by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	switch {
	case in.Has(core.ActionRestart):
		g.session.ResetGame(true)
	case in.Has(core.ActionRetry):
		g.session.ResetGame(false)
	case in.Has(core.ActionPause):
		g.session.TogglePause()
	case in.Has(core.ActionConfirm):
		g.confirm()
	}

	for _, id := range in.Tiles() {
		g.session.ClickTile(id)
	}

	g.scheduler.Advance(g.frame)
	return core.StepResult{State: g.State()}
}

// confirm maps space/enter to whatever moves the current phase forward.
func (g *Game) confirm() {
	switch g.session.Snapshot().Phase {
	case PhaseAwaitingStart:
		g.session.StartGame()
	case PhaseLevelComplete:
		g.session.AdvanceLevel()
	case PhaseGameOver:
		g.session.ResetGame(true)
	}
}

// State returns the platform view of the session.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	snap := g.session.Snapshot()
	return core.GameState{
		Score:    snap.Progress.Score,
		Level:    snap.Level,
		GameOver: snap.Phase == PhaseGameOver,
		Paused:   g.tooSmall || (snap.Phase != PhasePlaying && snap.Phase != PhaseGameOver),
	}
}

// Snapshot returns the session's latest snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	return g.session.Snapshot()
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Rules returns the rules the current session was built with.
func (g *Game) Rules() config.ColorTapConfig {
	return g.rules
}

// TileAt maps a screen cell to the tile drawn there.
func (g *Game) TileAt(x, y int) (int, bool) {
	if g.tooSmall {
		return 0, false
	}
	for id, r := range g.layout.tiles {
		if r.Contains(x, y) {
			return id, true
		}
	}
	return 0, false
}
