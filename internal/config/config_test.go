package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
	if cfg.Board.Rows != 6 || cfg.Board.Cols != 7 {
		t.Errorf("Default board is %dx%d, want 6x7", cfg.Board.Rows, cfg.Board.Cols)
	}
}

func TestValidateRejectsBadBoards(t *testing.T) {
	base := Default()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"minimum below four", func(c *Config) { c.Board.MinRows = 3 }},
		{"default below minimum", func(c *Config) { c.Board.Rows = 5 }},
		{"negative skew", func(c *Config) { c.Board.MaxSkew = -1 }},
		{"default exceeds skew", func(c *Config) { c.Board.Cols = 12 }},
		{"empty save path", func(c *Config) { c.Save.Path = "" }},
	}

	for _, tc := range cases {
		cfg := base
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() accepted an invalid config", tc.name)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
board:
  rows: 8
  cols: 9
  min_rows: 6
  min_cols: 7
  max_skew: 2
save:
  path: /tmp/test-save.json
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Rows != 8 || cfg.Board.Cols != 9 {
		t.Errorf("Loaded board is %dx%d, want 8x9", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Save.Path != "/tmp/test-save.json" {
		t.Errorf("Loaded save path = %q", cfg.Save.Path)
	}
}

func TestLoadCustomPathMustExist(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for an explicit path that does not exist")
	}
}

func TestLoadCustomPathMustValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
board:
  rows: 3
  cols: 3
  min_rows: 2
  min_cols: 2
  max_skew: 0
save:
  path: /tmp/x.json
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject a config the menu cannot honor")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	got := ExpandHome("~/.connect4/save.json")
	want := filepath.Join(home, ".connect4", "save.json")
	if got != want {
		t.Errorf("ExpandHome = %q, want %q", got, want)
	}

	if ExpandHome("/abs/path.json") != "/abs/path.json" {
		t.Error("Absolute paths must pass through unchanged")
	}
	if ExpandHome("") != "" {
		t.Error("Empty path must pass through unchanged")
	}
}
