package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-klondike/internal/config"
	"github.com/vovakirdan/tui-klondike/internal/controller"
	"github.com/vovakirdan/tui-klondike/internal/klondike"
	"github.com/vovakirdan/tui-klondike/internal/platform/tui"
	"github.com/vovakirdan/tui-klondike/internal/registry"
	"github.com/vovakirdan/tui-klondike/internal/storage"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		piles     int
		draw      int
		noShuffle bool
		lineMode  bool
	)

	cmd := &cobra.Command{
		Use:   "play [variant]",
		Short: "Deal a table",
		Long: `Deal a table of the given variant (default from config).

On a terminal the table opens in the TUI; with piped input the game
reads commands from stdin and prints the board to stdout.

Commands (pile and foundation numbers start at 1):
  mpp S N D   move N cards from pile S onto pile D
  md D        move the top draw card onto pile D
  mpf S F     move the top of pile S onto foundation F
  mdf F       move the top draw card onto foundation F
  dd          discard the draw hand
  q           quit

Examples:
  klondike play
  klondike play whitehead --piles 7 --draw 3
  klondike play --seed 42
  echo "mpf 1 1 dd q" | klondike play --no-shuffle`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Game.Variant = args[0]
			}
			if cmd.Flags().Changed("piles") {
				cfg.Game.Piles = piles
			}
			if cmd.Flags().Changed("draw") {
				cfg.Game.Draw = draw
			}
			if noShuffle {
				cfg.Game.Shuffle = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			store := a.openStore(cfg)
			if store != nil {
				defer store.Close()
			}

			if !lineMode && isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout()) {
				return tui.Run(store, tui.OptionsFromConfig(cfg.Game, playerName()))
			}
			return a.playLine(cmd, cfg, store)
		},
	}

	cmd.Flags().IntVar(&piles, "piles", 7, "Number of tableau piles")
	cmd.Flags().IntVar(&draw, "draw", 1, "Cards turned to the draw hand")
	cmd.Flags().BoolVar(&noShuffle, "no-shuffle", false, "Deal the deck in order")
	cmd.Flags().BoolVar(&lineMode, "line", false, "Use line mode even on a terminal")

	return cmd
}

// playLine runs one game on the command's input and output streams.
func (a *app) playLine(cmd *cobra.Command, cfg config.KlondikeConfig, store *storage.Store) error {
	game, err := registry.Create(cfg.Game.Variant, cfg.Game.SeedPtr())
	if err != nil {
		return err
	}

	ctrl := controller.New(cmd.InOrStdin(), cmd.OutOrStdout(),
		controller.WithLogger(a.logger),
		controller.WithVerbose(a.verbose),
	)
	res, err := ctrl.PlayGame(game, klondike.NewDeck(), cfg.Game.Shuffle, cfg.Game.Piles, cfg.Game.Draw)
	switch {
	case errors.Is(err, controller.ErrNoInput):
		a.logger.Debug("input ended before the game did")
		res.Quit = true
	case err != nil:
		return err
	}

	if store == nil {
		return nil
	}
	status := res.Status.String()
	if res.Quit {
		status = "quit"
	}
	id, err := store.SaveResult(storage.Result{
		Variant: cfg.Game.Variant,
		Player:  playerName(),
		Score:   res.Score,
		Status:  status,
		Piles:   cfg.Game.Piles,
		Draw:    cfg.Game.Draw,
		Moves:   res.Moves,
	})
	if err != nil {
		a.logger.Warn("could not save result", "error", err)
		return nil
	}
	a.logger.Debug("result saved", "id", id, "status", status, "score", res.Score)
	return nil
}

// isTerminal reports whether the stream is an interactive terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
