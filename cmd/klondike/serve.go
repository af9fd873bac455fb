package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klondike/internal/platform/tui"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		host    string
		port    int
		hostKey string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Klondike SSH server",
		Long: `Start an SSH server that deals a table to every connection.

Each SSH connection gets its own session with a variant picker.
Results are stored per-server under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key_path from the config
  - The key is generated on first start if the file is missing

Examples:
  klondike serve                           # Listen on the configured port
  klondike serve --port 2222               # Listen on port 2222
  klondike serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2323`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if hostKey != "" {
				cfg.Server.HostKeyPath = hostKey
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			server, err := tui.NewSSHServer(cfg, a.logger.WithPrefix("klondike-ssh"))
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Starting Klondike SSH server on %s\n", server.Addr())
			fmt.Fprintf(out, "Connect with: ssh localhost -p %d\n", cfg.Server.Port)
			fmt.Fprintln(out, "Press Ctrl+C to stop")

			return server.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Address to bind (overrides config)")
	cmd.Flags().IntVar(&port, "port", 0, "SSH port (overrides config)")
	cmd.Flags().StringVar(&hostKey, "host-key", "", "Path to host key file")

	return cmd
}
