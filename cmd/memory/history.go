package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past rounds",
	Long: `Open an interactive table of past rounds, one page per button count.

Controls:
  Left/Right/Tab - Change button count
  Up/Down        - Scroll
  Q/Esc          - Quit`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func runHistory(_ *cobra.Command, _ []string) {
	memCfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, memCfg.Buttons.Min, memCfg.Buttons.Max, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
