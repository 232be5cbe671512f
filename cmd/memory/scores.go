package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagScoresButtons int
	flagRecent        int
	flagRoundID       string
	flagClear         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show round statistics",
	Long: `Display how many rounds were played and won for each button count,
with the fastest win. With --buttons, list the fastest wins for that count.

Examples:
  memory scores
  memory scores --buttons 5
  memory scores --recent 10
  memory scores --round 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  memory scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresButtons, "buttons", 0, "Show the fastest wins for this button count")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "List the most recent rounds")
	scoresCmd.Flags().StringVar(&flagRoundID, "round", "", "Show a single round by its ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRounds(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rounds: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All rounds deleted.")
	case flagRoundID != "":
		printRound(store, flagRoundID)
	case flagRecent > 0:
		printRecent(store, flagRecent)
	case flagScoresButtons > 0:
		printFastest(store, flagScoresButtons)
	default:
		printStats(store)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Memory - rounds by button count")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'memory play' to start your history!")
		return
	}

	fmt.Printf("  %-7s  %-6s  %-4s  %-6s  %s\n", "Buttons", "Played", "Won", "Rate", "Best")
	fmt.Printf("  %-7s  %-6s  %-4s  %-6s  %s\n", "-------", "------", "---", "----", "----")

	counts := make([]int, 0, len(stats))
	for n := range stats {
		counts = append(counts, n)
	}
	slices.Sort(counts)

	for _, n := range counts {
		st := stats[n]
		best := "-"
		if st.BestMs > 0 {
			best = fmt.Sprintf("%.1fs", float64(st.BestMs)/1000)
		}
		fmt.Printf("  %-7d  %-6d  %-4d  %-6s  %s\n", n, st.Played, st.Wins, fmt.Sprintf("%.0f%%", st.WinRate()*100), best)
	}
}

func printFastest(store *storage.Store, n int) {
	wins, err := store.FastestWins(n, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Fastest wins - %d buttons\n", n)
	fmt.Println()

	if len(wins) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'memory play --buttons %d' to set the first one!\n", n)
		return
	}

	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "----", "----")
	for i, r := range wins {
		fmt.Printf("  %-4d  %-8s  %s\n", i+1, fmt.Sprintf("%.1fs", float64(r.DurationMs)/1000), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printRecent(store *storage.Store, limit int) {
	rounds, err := store.RecentRounds(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent rounds")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}

	fmt.Printf("  %-7s  %-6s  %-8s  %-16s  %s\n", "Buttons", "Result", "Time", "Date", "ID")
	fmt.Printf("  %-7s  %-6s  %-8s  %-16s  %s\n", "-------", "------", "----", "----", "--")
	for _, r := range rounds {
		fmt.Printf("  %-7d  %-6s  %-8s  %-16s  %s\n", r.Buttons, r.Outcome,
			fmt.Sprintf("%.1fs", float64(r.DurationMs)/1000), r.CreatedAt.Format("2006-01-02 15:04"), r.RoundID)
	}
}

func printRound(store *storage.Store, roundID string) {
	r, err := store.RoundByID(roundID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving round: %v\n", err)
		os.Exit(1)
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "No round with ID %s\n", roundID)
		os.Exit(1)
	}

	fmt.Printf("Round:    %s\n", r.RoundID)
	fmt.Printf("Game:     %s\n", r.GameID)
	fmt.Printf("Buttons:  %d\n", r.Buttons)
	fmt.Printf("Result:   %s\n", r.Outcome)
	fmt.Printf("Time:     %.1fs\n", float64(r.DurationMs)/1000)
	fmt.Printf("Played:   %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
}
