package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klondike/internal/platform/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Pick a variant and play in the terminal UI",
		Long: `Open the variant picker. Enter deals a table, Tab shows the
scoreboard, Esc in a game returns to the picker.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			store := a.openStore(cfg)
			if store != nil {
				defer store.Close()
			}
			return tui.RunSession(store, tui.OptionsFromConfig(cfg.Game, playerName()))
		},
	}
}
