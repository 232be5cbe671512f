package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagButtons    int
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the memory game.

Controls:
  3-7            - Start a round with that many buttons
  Mouse click    - Press a button
  Left/Right/Tab - Move focus between buttons
  Enter/Space    - Press the focused button
  R              - Replay with the same number of buttons
  P/Esc          - Pause
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - 50% more time to memorize and follow the scrambles
  normal - Default timings
  hard   - 40% less time

Examples:
  memory play
  memory play --buttons 5
  memory play --difficulty hard
  memory play --config ./my-memory.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagButtons, "buttons", 0, "Start a round with this many buttons right away")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	memCfg, err := loadConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagButtons != 0 && (flagButtons < memCfg.Buttons.Min || flagButtons > memCfg.Buttons.Max) {
		fmt.Fprintf(os.Stderr, "Error: --buttons must be between %d and %d\n", memCfg.Buttons.Min, memCfg.Buttons.Max)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logOut, closeLog, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closeLog()
	logger := newLogger(logOut, "memory")

	game := memory.New(memCfg)
	game.SetStartButtons(flagButtons)

	// Open round storage
	var saver tui.RoundSaver
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		// Continue without storage - game still works
	} else {
		saver = store
	}

	runErr := tui.Run(game, saver, logger, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
