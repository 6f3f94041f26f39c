package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battlebots/internal/registry"
	"github.com/vovakirdan/tui-battlebots/internal/tournament"
)

var (
	flagResume  int
	flagCSV     string
	flagHTML    string
	flagDelay   time.Duration
	flagRRTag   string
	flagRRExec  bool
	flagRRFresh bool
)

var roundRobinCmd = &cobra.Command{
	Use:   "roundrobin [bots...]",
	Short: "Play a full round robin",
	Long: `Play every pair of bots in both orders. A win is worth 2 points and a
draw 1. Standings are rewritten to the CSV and HTML files after every match,
so an interrupted run can be resumed with --resume.

Without arguments every registered bot takes part.

Examples:
  battlebots roundrobin
  battlebots roundrobin hunter samplebot1 samplebot2
  battlebots roundrobin --resume 7 --csv standings.csv
  battlebots roundrobin --html standings.html --delay 2s`,
	Run: runRoundRobin,
}

func init() {
	roundRobinCmd.Flags().IntVar(&flagResume, "resume", 0, "Skip the first N matches and load standings from --csv")
	roundRobinCmd.Flags().StringVar(&flagCSV, "csv", "standings.csv", "Standings CSV file")
	roundRobinCmd.Flags().StringVar(&flagHTML, "html", "", "Standings HTML page (disabled when empty)")
	roundRobinCmd.Flags().DurationVar(&flagDelay, "delay", 0, "Pause between matches")
	roundRobinCmd.Flags().StringVar(&flagRRTag, "series", "roundrobin", "Tag for saved results")
	roundRobinCmd.Flags().BoolVar(&flagRRExec, "exec", false, "Run each match in a child process")
	roundRobinCmd.Flags().BoolVar(&flagRRFresh, "fresh", false, "Delete saved results for the series before starting")
}

func runRoundRobin(_ *cobra.Command, args []string) {
	bots := args
	if len(bots) == 0 {
		bots = registry.IDs()
	}
	requireBots(bots...)
	if len(bots) < 2 {
		fmt.Fprintln(os.Stderr, "Error: a round robin needs at least two bots")
		os.Exit(1)
	}
	if flagResume > 0 && flagCSV == "" {
		fmt.Fprintln(os.Stderr, "Error: --resume needs the --csv file of the interrupted run")
		os.Exit(1)
	}

	flagExec = flagRRExec
	rr := tournament.RoundRobin{
		Runner:   newRunner(),
		Bots:     bots,
		Skip:     flagResume,
		CSVPath:  flagCSV,
		HTMLPath: flagHTML,
		Delay:    flagDelay,
		Series:   flagRRTag,
		Logger:   logger,
	}

	store := openStore()
	if store != nil {
		defer store.Close()
		if flagRRFresh && flagResume == 0 {
			if err := store.ClearMatches(flagRRTag); err != nil {
				logger.Warn("could not clear saved results", "error", err)
			}
		}
		rr.Recorder = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	table, played, err := rr.Run(ctx)
	printTable(table)
	if err != nil {
		logger.Error("round robin stopped",
			"completed", played,
			"resume", fmt.Sprintf("--resume %d", played),
			"error", err,
		)
		stop()
		os.Exit(1)
	}
}

func printTable(t tournament.Table) {
	rows := t.Rows()
	if len(rows) == 0 {
		return
	}

	maxBotLen := 3 // "Bot" header
	for _, r := range rows {
		maxBotLen = max(maxBotLen, len(r.Bot))
	}

	fmt.Println()
	fmt.Printf("  %-*s  %4s  %4s  %6s  %6s\n", maxBotLen, "Bot", "Wins", "Draws", "Losses", "Points")
	for _, r := range rows {
		fmt.Printf("  %-*s  %4d  %4d  %6d  %6d\n", maxBotLen, r.Bot, r.Wins, r.Draws, r.Losses, r.Points)
	}
}
