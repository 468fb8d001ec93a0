package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	Long:  `Shows the key bindings of the effective configuration (see --config).`,
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	keys := tui.NewKeyMap(cfg.Keys)

	// Calculate column width
	maxKeyLen := 3 // "Key" header
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			maxKeyLen = max(maxKeyLen, len(b.Help().Key))
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "Key", "Action")
	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "---", "------")
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, b.Help().Key, b.Help().Desc)
		}
	}
	return nil
}
