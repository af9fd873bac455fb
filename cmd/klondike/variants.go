package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klondike/internal/config"
	"github.com/vovakirdan/tui-klondike/internal/registry"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "variants",
		Aliases: []string{"list"},
		Short:   "List all variants",
		Long:    `Shows every Klondike variant that can be dealt.`,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			variants := registry.List()

			maxIDLen := 2 // "ID" header
			for _, v := range variants {
				maxIDLen = max(maxIDLen, len(v.ID))
			}

			fmt.Fprintln(out, "Available variants:")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
			fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
			for _, v := range variants {
				fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, v.ID, v.Title)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Run 'klondike play <id>' to deal a table.")
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration",
		Long: `Prints the built-in YAML configuration. Save it to
~/.klondike/configs/klondike.yaml or ./configs/klondike.yaml to customize.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.OutOrStdout().Write(config.GetDefaultYAML())
		},
	}
}
