package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Default controls:
  Left/Right, H/L   - Move
  Up/K              - Rotate left
  Down/J            - Rotate right
  Space             - Drop
  D                 - Down one line
  P                 - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Screenshot to ~/.tetris/screenshots
  Q/Ctrl+C          - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(tetris.GameID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting game", "seed", flagSeed, "fps", flagFPS, "size", fmt.Sprintf("%dx%d", width, height))
	return tui.Run(game, runCfg, modelOptions(cfg))
}

// loadConfig loads the game configuration and hands it to the game package.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	tetris.SetConfig(cfg)
	return cfg, nil
}

func modelOptions(cfg config.TetrisConfig) tui.Options {
	return tui.Options{
		Keys:     tui.NewKeyMap(cfg.Keys),
		ShowHelp: cfg.Display.ShowHelp,
		Logger:   logger,
	}
}
