package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration. It matches the
// embedded YAML and is used when that cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			DropIntervalMS: 300,
		},
		Keys: KeyBindings{
			Left:        []string{"left", "h"},
			Right:       []string{"right", "l"},
			RotateLeft:  []string{"up", "k"},
			RotateRight: []string{"down", "j"},
			Drop:        []string{" "},
			OneLineDown: []string{"d"},
			Pause:       []string{"p"},
			Restart:     []string{"r"},
			Quit:        []string{"q", "ctrl+c"},
		},
		Display: TetrisDisplay{
			Block:    "[]",
			Empty:    " .",
			ShowHelp: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
