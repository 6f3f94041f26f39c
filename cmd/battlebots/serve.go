package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battlebots/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the battlebots SSH server",
	Long: `Start an SSH server where anyone can watch bot matches.

Each SSH connection gets its own stream of matches. Pass two bot IDs as
the SSH command to pick the pairing, otherwise bots are drawn at random.
Results are stored in the shared results database under the "ssh" tag.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.battlebots/host_key

Examples:
  battlebots serve                           # Listen on :23234 with auto-generated key
  battlebots serve --ssh :2222               # Listen on port 2222
  battlebots serve --host-key ./my_host_key  # Use specific host key

Spectators can connect with:
  ssh localhost -p 23234
  ssh localhost -p 23234 hunter samplebot1`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Battle = loadConfig()
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fatal("could not create server", "error", err)
	}

	logger.Info("connect with: ssh localhost -p 23234")
	logger.Info("press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
