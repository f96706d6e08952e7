// colortap is a terminal reaction game: read the prompt, tap the matching tile.
//
// Usage:
//
//	colortap play            - Play a game directly
//	colortap menu            - Start menu with setup screen and scoreboard
//	colortap serve           - Start SSH server for remote play
//	colortap levels          - Show which mechanics unlock at each level
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file (default: no logging)
//	--log-level <level> - debug, info, warn or error
//
// Defaults for --ssh, --log-level and --config can be set through
// COLORTAP_SSH_ADDR, COLORTAP_LOG_LEVEL and COLORTAP_CONFIG, also from a .env file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/colortap/internal/games/colortap"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colortap",
	Short: "Color Tap - a word/ink reaction game for your terminal",
	Long: `Color Tap shows a color word printed in a different color.
Tap the tile whose color the word names, unless the prompt says NOT,
in which case tap any other tile. Later levels add a countdown and a decoy.

Available commands:
  play     - Play directly
  menu     - Interactive menu with setup and scoreboard
  serve    - Start SSH server for remote play
  levels   - Show level progression per difficulty

Examples:
  colortap play
  colortap play --difficulty hard --level 3
  colortap menu
  colortap serve --ssh :2222
  colortap levels`,
}

func init() {
	// .env is optional
	_ = godotenv.Load()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", getEnv("COLORTAP_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// newLogger builds the logger from the global flags. The TUI owns the
// terminal, so without --log-file logs are discarded.
// The returned close func must be called on exit.
func newLogger(prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
