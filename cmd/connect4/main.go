// connect4 is a hotseat Connect Four game for the terminal.
//
// Usage:
//
//	connect4 menu             - Start the interactive menu
//	connect4 play             - Jump straight into a game
//	connect4 serve            - Start SSH server for remote play
//	connect4 history          - Show recorded match results
//
// Global flags:
//
//	--fps <rate>     - Set animation tick rate (default: 30)
//	--db <path>      - Set results database path (default: ~/.connect4/matches.db)
//	--save <path>    - Set save file path (overrides config)
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvoronin/connect4/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagSavePath string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four - drop disks, connect four, win",
	Long: `Connect Four in your terminal: two players share one keyboard
(or one SSH session each) and take turns dropping disks.

Available commands:
  menu     - Interactive menu (new game, resume, save, load, history)
  play     - Start a game directly, skipping the menu
  serve    - Start SSH server for remote play
  history  - View recorded match results

Examples:
  connect4 menu
  connect4 play --rows 8 --cols 9
  connect4 play --load
  connect4 serve --ssh :2222
  connect4 history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Animation tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.connect4/matches.db", "Path to match results database")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "", "Path to the save file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig loads the application config, honoring --config.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// resolveSavePath returns the effective save file path: the --save
// flag when set, otherwise the configured path.
func resolveSavePath(cfg config.Config) string {
	if flagSavePath != "" {
		return config.ExpandHome(flagSavePath)
	}
	return cfg.SavePath()
}
