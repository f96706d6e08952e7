package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colortap/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show which mechanics unlock at each level",
	Long: `Shows the mechanics active at each level for every difficulty preset,
using the default rules or the file given with --config.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", getEnv("COLORTAP_CONFIG", ""), "Path to custom rules YAML")
}

func runLevels(_ *cobra.Command, _ []string) error {
	base, err := config.LoadColorTap(flagConfig)
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}

	for _, preset := range []config.DifficultyPreset{
		config.DifficultyEasy,
		config.DifficultyNormal,
		config.DifficultyHard,
		config.DifficultyFixed,
	} {
		rules := base
		config.ApplyColorTapPreset(&rules, preset)
		printLevels(os.Stdout, preset, rules)
	}

	fmt.Println("Run 'colortap play --difficulty <preset> --level <n>' to start there.")
	return nil
}

func printLevels(w io.Writer, preset config.DifficultyPreset, rules config.ColorTapConfig) {
	fmt.Fprintf(w, "%s:\n", strings.ToUpper(string(preset)))
	fmt.Fprintf(w, "  %-5s  %s\n", "Level", "Mechanics")
	fmt.Fprintf(w, "  %-5s  %s\n", "-----", "---------")

	last := rules.LastUnlock()
	for level := 1; level <= last; level++ {
		mechanics := strings.Join(rules.Mechanics(level), ", ")
		if mechanics == "" {
			mechanics = "plain rounds"
		}
		suffix := ""
		if level == last {
			suffix = " (and beyond)"
		}
		fmt.Fprintf(w, "  %-5d  %s%s\n", level, mechanics, suffix)
	}
	fmt.Fprintln(w)
}
