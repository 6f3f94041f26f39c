package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battlebots/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective battle config",
	Long: `Print the battle configuration that play, run and the tournaments would
use, as YAML. The output is a complete config file: save it to
~/.battlebots/config.yaml or ./configs/battlebots.yaml and edit it.

Examples:
  battlebots config
  battlebots config --config ./arena.yaml
  battlebots config > ~/.battlebots/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal("could not encode config", "error", err)
	}

	fmt.Printf("# %d ticks per second, %.4g turns per second\n", cfg.Match.TickRate, cfg.TurnsPerSecond())
	fmt.Print(string(data))
}
