package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battlebots/internal/audio"
	"github.com/vovakirdan/tui-battlebots/internal/battle"
)

var (
	flagQuiet bool
	flagSave  bool
	flagCues  bool
)

var runCmd = &cobra.Command{
	Use:   "run <bot1> <bot2>",
	Short: "Simulate a match without a display",
	Long: `Simulate a match as fast as possible and report the outcome.

The exit status is 1 when bot1 wins, 2 when bot2 wins, 3 on a draw and
0 when the match was aborted or could not start. Bad arguments exit with
64. Batch scripts and 'battlebots bestof --exec' rely on it.

Examples:
  battlebots run hunter sitter
  battlebots run samplebot1 samplebot2 --quiet; echo $?
  battlebots run hunter samplebot1 --save --cues`,
	Args: cobra.ExactArgs(2),
	Run:  runRun,
}

func init() {
	runCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Do not print the result")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Save the result to the results database")
	runCmd.Flags().BoolVar(&flagCues, "cues", false, "Print how often each sound cue played")
}

func runRun(_ *cobra.Command, args []string) {
	failureCode = battle.ExitNoResult

	bot1, bot2 := createBots(args[0], args[1])
	cfg := loadConfig()

	recorder := &audio.Recorder{}
	match, err := battle.NewMatch(cfg, bot1, bot2,
		battle.WithCueSink(audio.Fanout{audio.LogSink{Logger: logger}, recorder}),
		battle.WithLogger(logger),
	)
	if err != nil {
		fatal("could not create match", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := battle.Run(ctx, match)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("match interrupted")
		} else {
			logger.Error("match aborted", "error", err)
		}
		stop()
		os.Exit(battle.ExitNoResult)
	}

	if flagSave {
		if store := openStore(); store != nil {
			if _, err := store.SaveResult("", args[0], args[1], res); err != nil {
				logger.Warn("could not save result", "error", err)
			}
			store.Close()
		}
	}

	if !flagQuiet {
		fmt.Println(res)
	}
	if flagCues {
		printCues(recorder)
	}
	stop()
	os.Exit(res.State.ExitCode())
}

func printCues(r *audio.Recorder) {
	for _, c := range battle.AllCues {
		fmt.Printf("  %-8s  %d\n", c, r.Count(c))
	}
}
