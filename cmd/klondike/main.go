// klondike plays Klondike solitaire in the terminal or over SSH.
//
// Usage:
//
//	klondike play [variant]    - Deal a table (TUI on a terminal, line mode otherwise)
//	klondike tui               - Menu-driven session with variant picker and scores
//	klondike serve             - Start SSH server for remote play
//	klondike scores [variant]  - Show the best results
//	klondike variants          - List available variants
//	klondike config            - Print the default configuration
//
// Global flags:
//
//	--config <path>  - Config file (default search: ~/.klondike/configs, ./configs)
//	--db <path>      - Results database path
//	--seed <value>   - RNG seed for a reproducible deal
//	--verbose        - Debug logging and detailed rejection messages
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klondike/internal/config"
	"github.com/vovakirdan/tui-klondike/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the global flags shared by all subcommands.
type app struct {
	configPath string
	dbPath     string
	seed       uint64
	verbose    bool

	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "klondike",
		Short: "Klondike solitaire in your terminal",
		Long: `Klondike is a patience game played with the standard rules (Basic)
or the Whitehead variant, in a terminal UI, on plain stdin/stdout,
or over SSH.

Available commands:
  play      - Deal a table
  tui       - Variant picker and scoreboard
  serve     - Start SSH server for remote play
  scores    - View the best results
  variants  - Show all variants
  config    - Print the default configuration

Examples:
  klondike play
  klondike play whitehead --draw 3
  echo "mpf 1 1 q" | klondike play --no-shuffle
  klondike serve --port 2323
  klondike scores basic`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				ReportTimestamp: true,
				Prefix:          "klondike",
			})
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config YAML")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "Path to results database (overrides config)")
	root.PersistentFlags().Uint64Var(&a.seed, "seed", 0, "RNG seed (0 = random based on time)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(newPlayCmd(a))
	root.AddCommand(newTUICmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newScoresCmd(a))
	root.AddCommand(newVariantsCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// loadConfig loads the config file and applies the global flag overrides.
func (a *app) loadConfig(cmd *cobra.Command) (config.KlondikeConfig, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return config.KlondikeConfig{}, err
	}
	if a.dbPath != "" {
		cfg.Storage.DBPath = a.dbPath
	}
	if cmd.Flags().Changed("seed") {
		cfg.Game.Seed = a.seed
	}
	return cfg, nil
}

// openStore opens the results database. Games are still playable without it,
// and an empty db_path turns saving off.
func (a *app) openStore(cfg config.KlondikeConfig) *storage.Store {
	if cfg.Storage.DBPath == "" {
		return nil
	}
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		a.logger.Warn("could not open results database", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// playerName returns the local user name for stored results.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
