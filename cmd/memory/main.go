// memory is a terminal memory game: remember the order of the numbered
// buttons, watch them scramble, then press them in order.
//
// Usage:
//
//	memory play              - Play in this terminal
//	memory serve             - Start SSH server for remote play
//	memory scores            - Show round statistics per button count
//	memory history           - Browse past rounds interactively
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible rounds
//	--db <path>        - Set database path (default: ~/.memory/rounds.db)
//	--config <path>    - Use a custom config YAML
//	--log-file <path>  - Where to log while the game owns the terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory - a button sequence game in your terminal",
	Long: `Memory shows a row of colored buttons numbered 1..N. You get N seconds
to memorize them, then they jump around the screen N times and their
numbers disappear. Press them in ascending order to win.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Show statistics per button count
  history  - Browse past rounds

Examples:
  memory play
  memory play --buttons 5 --difficulty hard
  memory serve --ssh :2222
  memory scores --buttons 4`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.memory/rounds.db", "Path to rounds database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.memory/memory.log", "Log file used while a game is running")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every finished round")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
}
