package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Record is a win/draw/loss tally.
type Record struct {
	Wins   int
	Draws  int
	Losses int
}

// Points scores 2 per win and 1 per draw.
func (r Record) Points() int {
	return r.Wins*2 + r.Draws
}

// Played returns the number of decided matches.
func (r Record) Played() int {
	return r.Wins + r.Draws + r.Losses
}

// Standing is one bot's aggregate over stored matches.
type Standing struct {
	Bot string
	Record
	LastPlayed time.Time
}

// sides unfolds each match into one row per participant.
const sides = `
	SELECT bot1 AS bot, outcome = 1 AS win, outcome = 3 AS draw, outcome = 2 AS loss, created_at
	FROM matches WHERE ? = '' OR series = ?
	UNION ALL
	SELECT bot2 AS bot, outcome = 2 AS win, outcome = 3 AS draw, outcome = 1 AS loss, created_at
	FROM matches WHERE ? = '' OR series = ?`

// Standings aggregates results per bot, best first: points, then wins, then
// ID. An empty series covers every stored match.
func (s *Store) Standings(series string) ([]Standing, error) {
	rows, err := s.db.Query(
		`SELECT bot, SUM(win), SUM(draw), SUM(loss), MAX(created_at)
		 FROM (`+sides+`)
		 GROUP BY bot
		 ORDER BY 2 * SUM(win) + SUM(draw) DESC, SUM(win) DESC, bot ASC`,
		series, series, series, series,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	defer rows.Close()

	var standings []Standing
	for rows.Next() {
		var st Standing
		var lastPlayed any
		if err := rows.Scan(&st.Bot, &st.Wins, &st.Draws, &st.Losses, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan standings row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		standings = append(standings, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return standings, nil
}

// HeadToHead returns bot's record against opponent across both sides.
func (s *Store) HeadToHead(bot, opponent string) (Record, error) {
	var rec Record
	var wins, draws, losses sql.NullInt64
	err := s.db.QueryRow(
		`SELECT
			SUM(CASE WHEN (bot1 = ? AND outcome = 1) OR (bot2 = ? AND outcome = 2) THEN 1 ELSE 0 END),
			SUM(CASE WHEN outcome = 3 THEN 1 ELSE 0 END),
			SUM(CASE WHEN (bot1 = ? AND outcome = 2) OR (bot2 = ? AND outcome = 1) THEN 1 ELSE 0 END)
		 FROM matches
		 WHERE (bot1 = ? AND bot2 = ?) OR (bot1 = ? AND bot2 = ?)`,
		bot, bot, bot, bot, bot, opponent, opponent, bot,
	).Scan(&wins, &draws, &losses)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query head to head: %w", err)
	}

	rec.Wins = int(wins.Int64)
	rec.Draws = int(draws.Int64)
	rec.Losses = int(losses.Int64)
	return rec, nil
}
