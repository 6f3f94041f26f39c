package tournament

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
	"github.com/vovakirdan/tui-battlebots/internal/storage"
)

// Pairing is one scheduled match.
type Pairing struct {
	Player1 string
	Player2 string
}

// SeriesSchedule lists n matches between a and b. Odd-numbered matches put b
// on the player 1 side so neither bot keeps the same start all series.
func SeriesSchedule(a, b string, n int) []Pairing {
	matches := make([]Pairing, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		if i%2 == 0 {
			matches = append(matches, Pairing{a, b})
		} else {
			matches = append(matches, Pairing{b, a})
		}
	}
	return matches
}

// SeriesResult tallies a best-of-N series from the point of view of Bot.
type SeriesResult struct {
	Bot      string
	Opponent string
	storage.Record
	NoResult int

	// Margins holds Bot's health minus Opponent's for every detailed match.
	Margins []float64
}

// MarginStats returns the mean and sample standard deviation of Margins.
// Both are NaN without data; the deviation also needs two samples.
func (s SeriesResult) MarginStats() (mean, std float64) {
	switch len(s.Margins) {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return s.Margins[0], math.NaN()
	}
	return stat.MeanStdDev(s.Margins, nil)
}

// Summary formats the tally on one line.
func (s SeriesResult) Summary() string {
	return fmt.Sprintf("Results - %s wins: %d, %s wins: %d, Draws: %d",
		s.Bot, s.Wins, s.Opponent, s.Losses, s.Draws)
}

// BestOf plays series of matches between two bots.
type BestOf struct {
	Runner   Runner
	Recorder Recorder // Optional
	Series   string   // Tag for recorded matches
	Logger   *log.Logger
}

// Run plays n matches and returns the tally for a against b.
func (b BestOf) Run(ctx context.Context, a, opponent string, n int) (SeriesResult, error) {
	logger := b.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	res := SeriesResult{Bot: a, Opponent: opponent}
	for i, p := range SeriesSchedule(a, opponent, n) {
		out, err := b.Runner.Play(ctx, p.Player1, p.Player2)
		if err != nil {
			return res, err
		}
		record(b.Recorder, b.Series, p, out, logger)

		winner := winnerOf(p, out.State)
		switch {
		case out.State == battle.StateDraw:
			res.Draws++
		case winner == a:
			res.Wins++
		case winner == opponent:
			res.Losses++
		default:
			res.NoResult++
		}

		if out.Detailed {
			margin := float64(out.Margin())
			if p.Player1 != a {
				margin = -margin
			}
			res.Margins = append(res.Margins, margin)
		}

		logger.Info("match finished",
			"match", i+1,
			"player1", p.Player1,
			"player2", p.Player2,
			"outcome", out.State,
		)
	}
	return res, nil
}

// winnerOf returns the bot ID that won, or "" for draws and no result.
func winnerOf(p Pairing, s battle.State) string {
	switch s.Winner() {
	case battle.Side1:
		return p.Player1
	case battle.Side2:
		return p.Player2
	default:
		return ""
	}
}

// record stores out when a recorder is configured. Storage failures are
// logged and do not stop the tournament.
func record(r Recorder, series string, p Pairing, out Outcome, logger *log.Logger) {
	if r == nil || !out.State.Terminal() {
		return
	}
	if _, err := r.SaveResult(series, p.Player1, p.Player2, out.Result); err != nil {
		logger.Warn("could not save match", "error", err)
	}
}
