package tournament

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
	"github.com/vovakirdan/tui-battlebots/internal/storage"
)

// Schedule returns every round robin pairing: bots are sorted, and each pair
// plays twice with sides swapped.
func Schedule(bots []string) []Pairing {
	sorted := slices.Clone(bots)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var matches []Pairing
	for i, first := range sorted {
		for _, second := range sorted[i+1:] {
			matches = append(matches,
				Pairing{first, second},
				Pairing{second, first},
			)
		}
	}
	return matches
}

// RoundRobin plays every bot against every other bot on both sides.
type RoundRobin struct {
	Runner Runner
	Bots   []string

	// Skip resumes an interrupted run: the first Skip scheduled matches are
	// not played and the table is loaded from CSVPath instead.
	Skip int

	CSVPath  string        // Standings CSV, rewritten after every match
	HTMLPath string        // Standings page, rewritten after every match
	Delay    time.Duration // Pause after each match
	Recorder Recorder      // Optional
	Series   string
	Logger   *log.Logger
}

// Run plays the remaining schedule and returns the final table and the
// number of completed matches, skipped ones included.
func (r RoundRobin) Run(ctx context.Context) (Table, int, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	schedule := Schedule(r.Bots)
	table := NewTable(r.Bots)
	if r.Skip > 0 {
		loaded, err := r.resume()
		if err != nil {
			return table, 0, err
		}
		table.Merge(loaded)
	}

	completed := 0
	for i, p := range schedule {
		if i < r.Skip {
			completed++
			continue
		}

		logger.Info(fmt.Sprintf("Match %d: %s vs %s", i+1, p.Player1, p.Player2))
		out, err := r.Runner.Play(ctx, p.Player1, p.Player2)
		if err != nil {
			return table, completed, err
		}
		record(r.Recorder, r.Series, p, out, logger)
		table.Apply(p, out.State)

		switch winner := winnerOf(p, out.State); {
		case winner != "":
			logger.Info(winner + " wins")
		case out.State == battle.StateDraw:
			logger.Info("draw")
		default:
			logger.Warn("no result", "player1", p.Player1, "player2", p.Player2)
		}

		if err := r.write(table); err != nil {
			return table, completed, err
		}
		completed++

		if r.Delay > 0 && i < len(schedule)-1 {
			select {
			case <-ctx.Done():
				return table, completed, ctx.Err()
			case <-time.After(r.Delay):
			}
		}
	}

	logger.Info(fmt.Sprintf("Done, completed %d matches.", completed))
	return table, completed, nil
}

func (r RoundRobin) resume() (Table, error) {
	if r.CSVPath == "" {
		return nil, errors.New("tournament: resuming needs a standings CSV")
	}
	f, err := os.Open(r.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("tournament: cannot resume: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

func (r RoundRobin) write(t Table) error {
	if r.CSVPath != "" {
		if err := writeFile(r.CSVPath, func(w io.Writer) error { return t.WriteCSV(w) }); err != nil {
			return err
		}
	}
	if r.HTMLPath != "" {
		if err := writeFile(r.HTMLPath, func(w io.Writer) error { return t.WriteHTML(w) }); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tournament: cannot write %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("tournament: cannot write %s: %w", path, err)
	}
	return f.Close()
}

// Table maps bot IDs to their round robin record.
type Table map[string]*storage.Record

// NewTable creates an empty record for every bot.
func NewTable(bots []string) Table {
	t := make(Table, len(bots))
	for _, b := range bots {
		t[b] = &storage.Record{}
	}
	return t
}

// Apply credits one match outcome. No-result matches change nothing.
func (t Table) Apply(p Pairing, s battle.State) {
	one, two := t.entry(p.Player1), t.entry(p.Player2)
	switch s {
	case battle.StatePlayer1Wins:
		one.Wins++
		two.Losses++
	case battle.StatePlayer2Wins:
		two.Wins++
		one.Losses++
	case battle.StateDraw:
		one.Draws++
		two.Draws++
	}
}

// Merge overwrites entries with those from other.
func (t Table) Merge(other Table) {
	for bot, rec := range other {
		r := *rec
		t[bot] = &r
	}
}

func (t Table) entry(bot string) *storage.Record {
	rec, ok := t[bot]
	if !ok {
		rec = &storage.Record{}
		t[bot] = rec
	}
	return rec
}
