package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battlebots/internal/audio"
	"github.com/vovakirdan/tui-battlebots/internal/battle"
	"github.com/vovakirdan/tui-battlebots/internal/core"
	"github.com/vovakirdan/tui-battlebots/internal/platform/tui"
)

var (
	flagSpeed float64
	flagBell  bool
)

var playCmd = &cobra.Command{
	Use:   "play <bot1> <bot2>",
	Short: "Watch a match",
	Long: `Watch a match between two bots in the terminal.

The exit status reports the outcome: 1 when bot1 wins, 2 when bot2 wins,
3 on a draw and 0 when you quit before the end or the match could not start.

Controls:
  P/Space    - Pause
  N          - Step one tick while paused
  +/-        - Faster/slower playback
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  battlebots play samplebot1 samplebot2
  battlebots play hunter sitter --speed 4
  battlebots play hunter samplebot2 --config ./arena.yaml`,
	Args: cobra.ExactArgs(2),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().Float64Var(&flagSpeed, "speed", 1, "Playback speed multiplier")
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell for the horn, the bell and game over")
}

func runPlay(_ *cobra.Command, args []string) {
	failureCode = battle.ExitNoResult
	bot1, bot2 := createBots(args[0], args[1])

	cfg := loadConfig()

	var cues battle.CueSink = audio.LogSink{Logger: logger}
	if flagBell {
		cues = audio.Fanout{cues, audio.Bell{W: os.Stdout}}
	}

	match, err := battle.NewMatch(cfg, bot1, bot2,
		battle.WithCueSink(cues),
		battle.WithLogger(logger),
	)
	if err != nil {
		fatal("could not create match", "error", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = height
	rt.Speed = flagSpeed

	store := openStore()

	res, runErr := tui.Run(match, tui.Pairing{Bot1: args[0], Bot2: args[1]}, store, rt)

	// Close store before exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(battle.ExitNoResult)
	}

	if res.State.Terminal() {
		fmt.Println(res)
	}
	os.Exit(res.State.ExitCode())
}
