// battlebots pits two scripted bots against each other in a terminal arena.
//
// Usage:
//
//	battlebots list                     - List registered bots
//	battlebots play <bot1> <bot2>       - Watch a match in the terminal
//	battlebots run <bot1> <bot2>        - Simulate a match headless
//	battlebots bestof <a> <b> <n>       - Play a best-of-n series
//	battlebots roundrobin [bots...]     - Play every pair in both orders
//	battlebots standings                - Browse stored results
//	battlebots serve                    - Start the SSH spectator server
//	battlebots config                   - Print the effective battle config
//
// Global flags:
//
//	--config <path>     - Battle config YAML (default search path otherwise)
//	--db <path>         - Results database (default: ~/.battlebots/results.db)
//	--log-level <level> - debug, info, warn or error
//
// run and play exit with 1 when player 1 wins, 2 when player 2 wins,
// 3 on a draw and 0 when the match produced no result.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
	"github.com/vovakirdan/tui-battlebots/internal/config"
	"github.com/vovakirdan/tui-battlebots/internal/registry"
	"github.com/vovakirdan/tui-battlebots/internal/storage"

	// Import bots to register them
	_ "github.com/vovakirdan/tui-battlebots/internal/bots/hunter"
	_ "github.com/vovakirdan/tui-battlebots/internal/bots/sample"
	_ "github.com/vovakirdan/tui-battlebots/internal/bots/sitter"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	logger *log.Logger

	// failureCode is the exit status for errors after flag parsing. run and
	// play lower it to battle.ExitNoResult because their status reports the
	// match outcome.
	failureCode = 1
)

// exitUsage reports bad arguments or flags. It lies outside the outcome
// codes so batch runners reading a run's status treat it as an error.
const exitUsage = 64

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}

// fatal logs msg at error level and exits with failureCode.
func fatal(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
	os.Exit(failureCode)
}

var rootCmd = &cobra.Command{
	Use:   "battlebots",
	Short: "Battlebots - scripted ship duels in your terminal",
	Long: `Battlebots runs duels between two scripted bots. Each bot pilots a ship,
fires phasers and torpedoes, and tries to bring the other ship's health
to zero before the clock runs out.

Available commands:
  list        - Show all registered bots
  play        - Watch a match in the terminal
  run         - Simulate a match without a display
  bestof      - Play a series between two bots
  roundrobin  - Play a full round robin
  standings   - Browse stored results
  serve       - Start SSH server for spectators
  config      - Print the effective battle config

Examples:
  battlebots list
  battlebots play samplebot1 samplebot2
  battlebots run hunter sitter; echo $?
  battlebots bestof hunter samplebot1 10
  battlebots roundrobin --csv standings.csv --html standings.html
  battlebots serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "battlebots",
			Level:           level,
		})
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to battle config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.battlebots/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(bestOfCmd)
	rootCmd.AddCommand(roundRobinCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the battle config or exits with failureCode.
func loadConfig() config.BattleConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("could not load config", "error", err)
	}
	return cfg
}

// openStore opens the results database. Matches still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database, results will not be saved", "error", err)
		return nil
	}
	return store
}

// requireBots exits when any ID is not registered.
func requireBots(ids ...string) {
	for _, id := range ids {
		if !registry.Exists(id) {
			fmt.Fprintf(os.Stderr, "Error: unknown bot %q\n", id)
			fmt.Fprintln(os.Stderr, "Run 'battlebots list' to see available bots.")
			os.Exit(failureCode)
		}
	}
}

// createBots builds the two bots of a match or exits.
func createBots(id1, id2 string) (battle.Bot, battle.Bot) {
	requireBots(id1, id2)
	bot1, err := registry.Create(id1)
	if err != nil {
		fatal("could not create bot", "bot", id1, "error", err)
	}
	bot2, err := registry.Create(id2)
	if err != nil {
		fatal("could not create bot", "bot", id2, "error", err)
	}
	return bot1, bot2
}
