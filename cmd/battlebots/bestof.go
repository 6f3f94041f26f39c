package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battlebots/internal/tournament"
)

var (
	flagExec   bool
	flagSeries string
)

var bestOfCmd = &cobra.Command{
	Use:   "bestof <bot1> <bot2> <n>",
	Short: "Play a series between two bots",
	Long: `Play n matches between two bots, swapping sides on every other match,
and print the tally.

With --exec every match runs in a child 'battlebots run' process and only
its exit status is read.

Examples:
  battlebots bestof hunter samplebot1 10
  battlebots bestof samplebot1 samplebot2 5 --exec
  battlebots bestof hunter sitter 20 --series practice`,
	Args: cobra.ExactArgs(3),
	Run:  runBestOf,
}

func init() {
	bestOfCmd.Flags().BoolVar(&flagExec, "exec", false, "Run each match in a child process")
	bestOfCmd.Flags().StringVar(&flagSeries, "series", "bestof", "Tag for saved results")
}

func runBestOf(_ *cobra.Command, args []string) {
	a, b := args[0], args[1]
	requireBots(a, b)

	n, err := strconv.Atoi(args[2])
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "Error: match count must be a positive number, got %q\n", args[2])
		os.Exit(1)
	}

	runner := newRunner()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	series := tournament.BestOf{
		Runner: runner,
		Series: flagSeries,
		Logger: logger,
	}
	if store != nil {
		series.Recorder = store
	}

	res, err := series.Run(ctx, a, b, n)
	fmt.Println(res.Summary())
	if res.NoResult > 0 {
		fmt.Printf("No result: %d\n", res.NoResult)
	}
	if mean, std := res.MarginStats(); !math.IsNaN(mean) {
		if math.IsNaN(std) {
			fmt.Printf("Health margin for %s: %.2f\n", a, mean)
		} else {
			fmt.Printf("Health margin for %s: %.2f ± %.2f\n", a, mean, std)
		}
	}
	if err != nil {
		logger.Error("series stopped early", "error", err)
		stop()
		os.Exit(1)
	}
}

// newRunner picks the in-process runner or, with --exec, one that spawns
// this binary for every match.
func newRunner() tournament.Runner {
	if !flagExec {
		return tournament.LocalRunner{Config: loadConfig(), Logger: logger}
	}

	self, err := os.Executable()
	if err != nil {
		fatal("could not locate the battlebots binary", "error", err)
	}
	args := []string{"run", "--quiet", "--log-level", "warn"}
	if flagConfig != "" {
		args = append(args, "--config", flagConfig)
	}
	return tournament.ExecRunner{Path: self, Args: args, Stderr: os.Stderr}
}
