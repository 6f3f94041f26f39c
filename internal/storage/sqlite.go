// Package storage provides SQLite-based persistence for match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-battlebots/internal/battle"
)

// ErrUndecided is returned when saving a match that has no outcome.
var ErrUndecided = errors.New("storage: match has no outcome")

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord represents one finished match.
type MatchRecord struct {
	ID        int64
	Series    string // Tournament or series tag; empty for single matches
	Bot1      string // Registry ID of the player 1 bot
	Bot2      string
	Name1     string // Display name reported by the bot
	Name2     string
	Health1   int
	Health2   int
	Outcome   battle.State
	Seconds   int
	CreatedAt time.Time
}

// Winner returns the winning bot ID, or "" for a draw.
func (r MatchRecord) Winner() string {
	switch r.Outcome.Winner() {
	case battle.Side1:
		return r.Bot1
	case battle.Side2:
		return r.Bot2
	default:
		return ""
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			series TEXT NOT NULL DEFAULT '',
			bot1 TEXT NOT NULL,
			bot2 TEXT NOT NULL,
			name1 TEXT NOT NULL,
			name2 TEXT NOT NULL,
			health1 INTEGER NOT NULL,
			health2 INTEGER NOT NULL,
			outcome INTEGER NOT NULL,
			seconds INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_bot1 ON matches(bot1);
		CREATE INDEX IF NOT EXISTS idx_matches_bot2 ON matches(bot2);
		CREATE INDEX IF NOT EXISTS idx_matches_series ON matches(series);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match. Outcome is stored as the process exit
// code so the table reads the same as a batch log.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	if !rec.Outcome.Terminal() {
		return 0, ErrUndecided
	}

	result, err := s.db.Exec(
		`INSERT INTO matches
		 (series, bot1, bot2, name1, name2, health1, health2, outcome, seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Series, rec.Bot1, rec.Bot2, rec.Name1, rec.Name2,
		rec.Health1, rec.Health2, rec.Outcome.ExitCode(), rec.Seconds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveResult records a battle.Result for the given registry IDs.
func (s *Store) SaveResult(series, bot1, bot2 string, res battle.Result) (int64, error) {
	return s.SaveMatch(MatchRecord{
		Series:  series,
		Bot1:    bot1,
		Bot2:    bot2,
		Name1:   res.Names[0],
		Name2:   res.Names[1],
		Health1: res.Health[0],
		Health2: res.Health[1],
		Outcome: res.State,
		Seconds: res.Seconds,
	})
}

const matchColumns = `id, series, bot1, bot2, name1, name2, health1, health2, outcome, seconds, created_at`

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	return scanMatches(rows)
}

// BotMatches retrieves the most recent matches involving botID on either side.
func (s *Store) BotMatches(botID string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE bot1 = ? OR bot2 = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		botID, botID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bot matches: %w", err)
	}
	return scanMatches(rows)
}

func scanMatches(rows *sql.Rows) ([]MatchRecord, error) {
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var r MatchRecord
		var outcome int
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Series,
			&r.Bot1,
			&r.Bot2,
			&r.Name1,
			&r.Name2,
			&r.Health1,
			&r.Health2,
			&outcome,
			&r.Seconds,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = battle.StateFromExitCode(outcome)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ClearMatches deletes every match in series, or all matches when series is
// empty.
func (s *Store) ClearMatches(series string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE ? = '' OR series = ?", series, series)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
