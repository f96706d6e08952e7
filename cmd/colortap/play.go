package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colortap/internal/config"
	"github.com/vovakirdan/colortap/internal/core"
	"github.com/vovakirdan/colortap/internal/games/colortap"
	"github.com/vovakirdan/colortap/internal/platform/tui"
	"github.com/vovakirdan/colortap/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Color Tap",
	Long: `Start a game of Color Tap.

Controls:
  1-9 / click  - Tap a tile (numpad layout, 7 is top-left)
  Space/Enter  - Start / next level / new game after game over
  P            - Pause
  T            - Retry the current level
  R            - Restart from the first level
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Longer countdown, fewer negated prompts, decoy from level 5
  normal - Default rules
  hard   - Shorter countdown, timer from level 2, decoy from level 3
  fixed  - No progression, every level plays like level 1

Examples:
  colortap play
  colortap play --difficulty easy
  colortap play --level 4
  colortap play --config ./my-colortap.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", getEnv("COLORTAP_CONFIG", ""), "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on")
	playCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name recorded with your runs")
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagLevel < 1 {
		return fmt.Errorf("--level must be at least 1, got %d", flagLevel)
	}

	logger, closeLog, err := newLogger("colortap")
	if err != nil {
		return err
	}
	defer closeLog()

	colortap.SetConfigPath(flagConfig)
	colortap.SetDifficultyPreset(flagDifficulty)
	colortap.SetStartLevel(flagLevel)
	colortap.SetLogger(logger)

	game := colortap.New()

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run store: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, terminalConfig(), flagPlayer, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	printRuns(os.Stdout, store)
	return nil
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
