// Package config provides YAML-based configuration loading for the game:
// drop timing, key bindings and display options.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Timing  TetrisTiming  `yaml:"timing"`
	Keys    KeyBindings   `yaml:"keys"`
	Display TetrisDisplay `yaml:"display"`
}

// TetrisTiming defines how fast pieces fall.
type TetrisTiming struct {
	DropIntervalMS int `yaml:"drop_interval_ms"`
}

// KeyBindings lists the terminal key names bound to each action.
// Names use Bubble Tea's notation ("left", "ctrl+c", " " for space).
type KeyBindings struct {
	Left        []string `yaml:"left"`
	Right       []string `yaml:"right"`
	RotateLeft  []string `yaml:"rotate_left"`
	RotateRight []string `yaml:"rotate_right"`
	Drop        []string `yaml:"drop"`
	OneLineDown []string `yaml:"one_line_down"`
	Pause       []string `yaml:"pause"`
	Restart     []string `yaml:"restart"`
	Quit        []string `yaml:"quit"`
}

// TetrisDisplay defines how the well is drawn.
type TetrisDisplay struct {
	Block    string `yaml:"block"`     // Two-cell glyph for an occupied cell
	Empty    string `yaml:"empty"`     // Two-cell glyph for an empty cell
	ShowHelp bool   `yaml:"show_help"` // Show the key help footer
}

// DropInterval returns the drop tick interval.
func (c TetrisConfig) DropInterval() time.Duration {
	return time.Duration(c.Timing.DropIntervalMS) * time.Millisecond
}

// Validate checks that the configuration is playable.
func (c TetrisConfig) Validate() error {
	if c.Timing.DropIntervalMS <= 0 {
		return fmt.Errorf("%w: timing.drop_interval_ms must be positive, got %d", ErrInvalidConfig, c.Timing.DropIntervalMS)
	}

	for _, b := range c.Keys.named() {
		if len(b.keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no bindings", ErrInvalidConfig, b.name)
		}
	}

	if n := len([]rune(c.Display.Block)); n != 2 {
		return fmt.Errorf("%w: display.block must be 2 characters wide, got %q", ErrInvalidConfig, c.Display.Block)
	}
	if n := len([]rune(c.Display.Empty)); n != 2 {
		return fmt.Errorf("%w: display.empty must be 2 characters wide, got %q", ErrInvalidConfig, c.Display.Empty)
	}
	return nil
}

type namedKeys struct {
	name string
	keys []string
}

func (k KeyBindings) named() []namedKeys {
	return []namedKeys{
		{"left", k.Left},
		{"right", k.Right},
		{"rotate_left", k.RotateLeft},
		{"rotate_right", k.RotateRight},
		{"drop", k.Drop},
		{"one_line_down", k.OneLineDown},
		{"pause", k.Pause},
		{"restart", k.Restart},
		{"quit", k.Quit},
	}
}
