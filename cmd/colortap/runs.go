package main

import (
	"fmt"
	"io"

	"github.com/vovakirdan/colortap/internal/storage"
)

// printRuns prints the session's best runs after the TUI exits.
// Runs live in memory only, so this is the last chance to see them.
func printRuns(w io.Writer, store *storage.Store) {
	if store == nil {
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(w, "Could not read runs: %v\n", err)
		return
	}
	if len(runs) == 0 {
		return
	}

	fmt.Fprintln(w, "Runs this session")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Time")
	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-12s  %-6d  %-5d  %s\n",
			i+1, r.Player, r.Score, r.Level, r.CreatedAt.Format("15:04:05"))
	}

	if st, err := store.Stats(); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Average: %.1f  Games: %d\n", st.Best, st.Average, st.Runs)
	}
}
