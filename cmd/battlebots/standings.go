package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battlebots/internal/platform/tui"
	"github.com/vovakirdan/tui-battlebots/internal/storage"
)

var (
	flagStandingsSeries string
	flagPrint           bool
	flagBot             string
	flagVersus          string
	flagLimit           int
)

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Browse stored results",
	Long: `Browse the standings and recent matches stored in the results database.

Use Tab to switch between standings and recent matches. With --print the
standings are written to stdout instead. --bot prints one bot's recent
matches, and adding --vs prints its record against a single opponent.

Examples:
  battlebots standings
  battlebots standings --series roundrobin
  battlebots standings --print
  battlebots standings --bot hunter --limit 20
  battlebots standings --bot hunter --vs samplebot1`,
	Run: runStandings,
}

func init() {
	standingsCmd.Flags().StringVar(&flagStandingsSeries, "series", "", "Only count matches with this tag (all when empty)")
	standingsCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the standings instead of browsing")
	standingsCmd.Flags().StringVar(&flagBot, "bot", "", "Print recent matches of this bot")
	standingsCmd.Flags().StringVar(&flagVersus, "vs", "", "With --bot, print the record against this opponent")
	standingsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches printed with --bot")
}

func runStandings(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagVersus != "" && flagBot == "":
		fmt.Fprintln(os.Stderr, "Error: --vs needs --bot")
		store.Close()
		os.Exit(1)
	case flagVersus != "":
		printHeadToHead(store, flagBot, flagVersus)
		return
	case flagBot != "":
		printBotMatches(store, flagBot)
		return
	case flagPrint:
		printStandings(store)
		return
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if err := tui.RunStandings(store, flagStandingsSeries, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printStandings(store *storage.Store) {
	rows, err := store.Standings(flagStandingsSeries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving standings: %v\n", err)
		return
	}
	if len(rows) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'battlebots roundrobin' to fill the table.")
		return
	}

	fmt.Printf("  %-4s  %-16s  %6s  %4s  %5s  %6s  %s\n", "Rank", "Bot", "Points", "Wins", "Draws", "Losses", "Last played")
	fmt.Printf("  %-4s  %-16s  %6s  %4s  %5s  %6s  %s\n", "----", "---", "------", "----", "-----", "------", "-----------")
	for i, s := range rows {
		fmt.Printf("  %-4d  %-16s  %6d  %4d  %5d  %6d  %s\n",
			i+1, s.Bot, s.Points(), s.Wins, s.Draws, s.Losses, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printBotMatches(store *storage.Store, bot string) {
	matches, err := store.BotMatches(bot, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		return
	}
	if len(matches) == 0 {
		fmt.Printf("No matches recorded for %s.\n", bot)
		return
	}

	fmt.Printf("Recent matches - %s\n", bot)
	fmt.Println()
	for _, m := range matches {
		result := "draw"
		switch m.Winner() {
		case "":
		case bot:
			result = "win"
		default:
			result = "loss"
		}
		fmt.Printf("  %s  %-16s vs %-16s  %2d-%-2d  %-4s  %ds\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.Bot1, m.Bot2, m.Health1, m.Health2, result, m.Seconds)
	}
}

func printHeadToHead(store *storage.Store, bot, opponent string) {
	rec, err := store.HeadToHead(bot, opponent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving head to head: %v\n", err)
		return
	}
	if rec.Played() == 0 {
		fmt.Printf("%s and %s have not met yet.\n", bot, opponent)
		return
	}
	fmt.Printf("%s vs %s: %d wins, %d draws, %d losses (%d points)\n",
		bot, opponent, rec.Wins, rec.Draws, rec.Losses, rec.Points())
}
