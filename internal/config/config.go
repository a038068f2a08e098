// Package config provides YAML-based application configuration with an
// embedded default: board shape defaults and limits, and the save-file
// location.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the full application configuration.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Save  SaveConfig  `yaml:"save"`
}

// BoardConfig defines the default board shape and the limits the menu
// enforces when the user adjusts it.
type BoardConfig struct {
	Rows    int `yaml:"rows"`     // default rows for a new game
	Cols    int `yaml:"cols"`     // default columns for a new game
	MinRows int `yaml:"min_rows"` // smallest selectable row count
	MinCols int `yaml:"min_cols"` // smallest selectable column count
	MaxSkew int `yaml:"max_skew"` // max allowed |rows - cols|
}

// SaveConfig defines where game snapshots are written.
type SaveConfig struct {
	Path string `yaml:"path"`
}

// Validate checks the configuration for values the menu and the rules
// engine cannot work with.
func (c Config) Validate() error {
	b := c.Board
	if b.MinRows < 4 || b.MinCols < 4 {
		return fmt.Errorf("config: board minimums must allow a four-in-a-row, got %dx%d", b.MinRows, b.MinCols)
	}
	if b.Rows < b.MinRows || b.Cols < b.MinCols {
		return fmt.Errorf("config: default board %dx%d is below the minimum %dx%d",
			b.Rows, b.Cols, b.MinRows, b.MinCols)
	}
	if b.MaxSkew < 0 {
		return fmt.Errorf("config: max_skew must be non-negative, got %d", b.MaxSkew)
	}
	if abs(b.Rows-b.Cols) > b.MaxSkew {
		return fmt.Errorf("config: default board %dx%d exceeds max_skew %d", b.Rows, b.Cols, b.MaxSkew)
	}
	if c.Save.Path == "" {
		return fmt.Errorf("config: save path must not be empty")
	}
	return nil
}

// SavePath returns the save-file path with a leading ~ expanded.
func (c Config) SavePath() string {
	return ExpandHome(c.Save.Path)
}

// ExpandHome replaces a leading ~ with the user's home directory.
// If the home directory cannot be resolved the path is returned as-is.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
