package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colortap/internal/games/colortap"
	"github.com/vovakirdan/colortap/internal/platform/tui"
	"github.com/vovakirdan/colortap/internal/registry"
	"github.com/vovakirdan/colortap/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start Color Tap in interactive menu mode.

Pick a game, choose difficulty and starting level, then play.
After a game you return to the menu. Runs are kept for the
session and shown on the scoreboard (Tab) and on exit.

Controls:
  Up/Down/j/k    - Navigate
  Left/Right     - Change difficulty on the setup screen
  Enter/Space    - Select
  Tab            - Scoreboard
  Q              - Quit

Examples:
  colortap menu
  colortap menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", getEnv("COLORTAP_CONFIG", ""), "Path to custom rules YAML")
	menuCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name recorded with your runs")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("colortap")
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run store: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	colortap.SetConfigPath(flagConfig)
	colortap.SetLogger(logger)

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		setup, err := tui.RunSetup(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if setup == nil {
			continue // Back to menu
		}

		colortap.SetDifficultyPreset(string(setup.Difficulty))
		colortap.SetStartLevel(setup.Level)

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg, flagPlayer, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	printRuns(os.Stdout, store)
	return nil
}
