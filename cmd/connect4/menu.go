package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nvoronin/connect4/internal/core"
	"github.com/nvoronin/connect4/internal/game"
	"github.com/nvoronin/connect4/internal/platform/tui"
	"github.com/nvoronin/connect4/internal/save"
	"github.com/nvoronin/connect4/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start Connect Four in interactive menu mode.

Use arrow keys or j/k to navigate, Left/Right to adjust the board
shape, Enter to select. After a game ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Adjust rows/cols
  Enter/Space  - Select
  Q            - Quit

Examples:
  connect4 menu
  connect4 menu --save ./game.json
  connect4 menu --db ./matches.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	session := game.NewSession(save.NewFile(resolveSavePath(cfg)))

	// Menu loop
	for {
		result, err := tui.RunMenu(session, cfg.Board, rcfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Carry any size changes forward
		rcfg = result.Config

		if result.Outcome == tui.MenuOutcomeQuit {
			break
		}

		if result.Outcome == tui.MenuOutcomeHistory {
			goBack, histErr := tui.RunHistory(store, rcfg.ScreenW, rcfg.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		// Run the game screen
		quit, err := tui.Run(session, store, rcfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
		if quit {
			break
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
