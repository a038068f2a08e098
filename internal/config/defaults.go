package config

import (
	_ "embed"
)

//go:embed defaults/connect4.yaml
var defaultConfigYAML []byte

// Default returns the hardcoded default configuration: the classic
// 6x7 board, a skew allowance of 2, and a save file under ~/.connect4.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows:    6,
			Cols:    7,
			MinRows: 6,
			MinCols: 7,
			MaxSkew: 2,
		},
		Save: SaveConfig{
			Path: "~/.connect4/save.json",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultConfigYAML
}
