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

var (
	flagRows int
	flagCols int
	flagLoad bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game directly",
	Long: `Start a game immediately, skipping the menu.

By default a new game begins on the configured board shape. Pass
--load to continue the saved game instead.

Controls:
  Left/Right/a/d  - Aim the drop cursor
  Enter/Space     - Drop a disk (or click a column)
  Esc             - Leave the game
  Q/Ctrl+C        - Quit

Examples:
  connect4 play
  connect4 play --rows 8 --cols 9
  connect4 play --load
  connect4 play --save ./game.json`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (default from config)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (default from config)")
	playCmd.Flags().BoolVar(&flagLoad, "load", false, "Continue the saved game instead of starting fresh")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rows, cols := cfg.Board.Rows, cfg.Board.Cols
	if flagRows > 0 {
		rows = flagRows
	}
	if flagCols > 0 {
		cols = flagCols
	}

	session := game.NewSession(save.NewFile(resolveSavePath(cfg)))

	if flagLoad {
		if err := session.Apply(game.LoadCommand()); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading saved game: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := session.Apply(game.NewGameCommand(rows, cols)); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
			os.Exit(1)
		}
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	_, runErr := tui.Run(session, store, rcfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
