package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klondike/internal/registry"
	"github.com/vovakirdan/tui-klondike/internal/storage"
)

var errNoDatabase = errors.New("no results database configured (set storage.db_path or --db)")

func newScoresCmd(a *app) *cobra.Command {
	var (
		limit        int
		clearResults bool
	)

	cmd := &cobra.Command{
		Use:   "scores [variant]",
		Short: "Show the best results",
		Long: `Display the best results for a variant, or for every variant
when none is given.

Examples:
  klondike scores
  klondike scores whitehead --limit 20
  klondike scores basic --clear`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variants := registry.List()
			if len(args) == 1 {
				if !registry.Exists(args[0]) {
					return fmt.Errorf("unknown variant %q (run 'klondike variants')", args[0])
				}
				variants = []registry.VariantInfo{{ID: args[0], Title: variantTitle(args[0])}}
			}

			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Storage.DBPath == "" {
				return errNoDatabase
			}
			store, err := storage.Open(cfg.Storage.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			for i, v := range variants {
				if clearResults {
					if err := store.ClearScores(v.ID); err != nil {
						return err
					}
					fmt.Fprintf(out, "Cleared results for %s\n", v.Title)
					continue
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := printScores(out, store, v, limit); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of results to show")
	cmd.Flags().BoolVar(&clearResults, "clear", false, "Delete stored results instead of showing them")

	return cmd
}

// printScores writes the top results and stats for one variant.
func printScores(out io.Writer, store *storage.Store, v registry.VariantInfo, limit int) error {
	results, err := store.TopScores(v.ID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Best Results - %s\n\n", v.Title)
	if len(results) == 0 {
		fmt.Fprintln(out, "No results recorded yet.")
		fmt.Fprintf(out, "Play 'klondike play %s' to set the first one!\n", v.ID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-5s  %-6s  %-5s  %-12s  %s\n", "Rank", "Score", "Result", "Moves", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-5s  %-6s  %-5s  %-12s  %s\n", "----", "-----", "------", "-----", "------", "----")
	for i, r := range results {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-5d  %-6s  %-5d  %-12s  %s\n",
			i+1, r.Score, r.Status, r.Moves, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetVariantStats(v.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nGames: %d  Won: %d  Best: %d  Average: %.1f\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	return nil
}

// variantTitle returns the registered title of a variant, or its ID.
func variantTitle(id string) string {
	for _, v := range registry.List() {
		if v.ID == id {
			return v.Title
		}
	}
	return id
}
