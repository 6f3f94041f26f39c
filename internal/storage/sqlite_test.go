package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, s *Store, series, bot1, bot2 string, outcome battle.State) {
	t.Helper()
	_, err := s.SaveMatch(MatchRecord{
		Series:  series,
		Bot1:    bot1,
		Bot2:    bot2,
		Name1:   bot1,
		Name2:   bot2,
		Health1: 5,
		Health2: 3,
		Outcome: outcome,
		Seconds: 60,
	})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveMatchRejectsUndecided(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveMatch(MatchRecord{Bot1: "a", Bot2: "b", Outcome: battle.StateActive})
	if !errors.Is(err, ErrUndecided) {
		t.Errorf("SaveMatch() error = %v, want ErrUndecided", err)
	}
}

func TestRecentMatches(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "", "hunter", "sitter", battle.StatePlayer1Wins)
	save(t, store, "", "sitter", "hunter", battle.StatePlayer2Wins)
	save(t, store, "", "samplebot1", "samplebot2", battle.StateDraw)

	recent, err := store.RecentMatches(2)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(recent))
	}
	if recent[0].Bot1 != "samplebot1" || recent[0].Outcome != battle.StateDraw {
		t.Errorf("newest match = %+v", recent[0])
	}
	if recent[0].Winner() != "" {
		t.Errorf("draw winner = %q, want empty", recent[0].Winner())
	}
	if recent[1].Winner() != "hunter" {
		t.Errorf("winner = %q, want hunter", recent[1].Winner())
	}
	if recent[1].Health1 != 5 || recent[1].Health2 != 3 || recent[1].Seconds != 60 {
		t.Errorf("fields not round-tripped: %+v", recent[1])
	}

	mine, err := store.BotMatches("hunter", 10)
	if err != nil {
		t.Fatalf("BotMatches() failed: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("Expected 2 hunter matches, got %d", len(mine))
	}
}

func TestStandings(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "rr", "hunter", "sitter", battle.StatePlayer1Wins)
	save(t, store, "rr", "sitter", "hunter", battle.StatePlayer2Wins)
	save(t, store, "rr", "hunter", "samplebot1", battle.StateDraw)
	save(t, store, "rr", "samplebot1", "sitter", battle.StatePlayer1Wins)
	save(t, store, "other", "sitter", "hunter", battle.StatePlayer1Wins)

	standings, err := store.Standings("rr")
	if err != nil {
		t.Fatalf("Standings() failed: %v", err)
	}

	want := []struct {
		bot    string
		rec    Record
		points int
	}{
		{"hunter", Record{Wins: 2, Draws: 1}, 5},
		{"samplebot1", Record{Wins: 1, Draws: 1}, 3},
		{"sitter", Record{Losses: 3}, 0},
	}
	if len(standings) != len(want) {
		t.Fatalf("Expected %d standings, got %d", len(want), len(standings))
	}
	for i, w := range want {
		got := standings[i]
		if got.Bot != w.bot || got.Record != w.rec || got.Points() != w.points {
			t.Errorf("standings[%d] = %s %+v (%d pts), want %s %+v (%d pts)",
				i, got.Bot, got.Record, got.Points(), w.bot, w.rec, w.points)
		}
	}

	all, err := store.Standings("")
	if err != nil {
		t.Fatalf("Standings(all) failed: %v", err)
	}
	for _, st := range all {
		if st.Bot == "sitter" && st.Wins != 1 {
			t.Errorf("sitter wins across all series = %d, want 1", st.Wins)
		}
	}
}

func TestHeadToHead(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "", "hunter", "sitter", battle.StatePlayer1Wins)
	save(t, store, "", "sitter", "hunter", battle.StatePlayer2Wins)
	save(t, store, "", "sitter", "hunter", battle.StatePlayer1Wins)
	save(t, store, "", "hunter", "sitter", battle.StateDraw)
	save(t, store, "", "hunter", "samplebot2", battle.StatePlayer2Wins)

	rec, err := store.HeadToHead("hunter", "sitter")
	if err != nil {
		t.Fatalf("HeadToHead() failed: %v", err)
	}
	if rec != (Record{Wins: 2, Draws: 1, Losses: 1}) {
		t.Errorf("HeadToHead = %+v", rec)
	}

	none, err := store.HeadToHead("hunter", "nobody")
	if err != nil {
		t.Fatalf("HeadToHead() failed: %v", err)
	}
	if none.Played() != 0 {
		t.Errorf("HeadToHead with no matches = %+v", none)
	}
}

func TestClearMatches(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "a", "hunter", "sitter", battle.StatePlayer1Wins)
	save(t, store, "b", "hunter", "sitter", battle.StatePlayer1Wins)

	if err := store.ClearMatches("a"); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}
	left, _ := store.RecentMatches(10)
	if len(left) != 1 || left[0].Series != "b" {
		t.Errorf("after clearing a: %+v", left)
	}

	if err := store.ClearMatches(""); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}
	left, _ = store.RecentMatches(10)
	if len(left) != 0 {
		t.Errorf("Expected no matches, got %d", len(left))
	}
}

func TestSaveResult(t *testing.T) {
	store := openTestStore(t)

	res := battle.Result{
		Names:   [2]string{"Daniel", "Timmy"},
		Health:  [2]int{0, 4},
		State:   battle.StatePlayer2Wins,
		Seconds: 42,
	}
	if _, err := store.SaveResult("series", "samplebot1", "samplebot2", res); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	got, err := store.RecentMatches(1)
	if err != nil || len(got) != 1 {
		t.Fatalf("RecentMatches() = %v, %v", got, err)
	}
	if got[0].Name1 != "Daniel" || got[0].Winner() != "samplebot2" || got[0].Seconds != 42 {
		t.Errorf("record = %+v", got[0])
	}
}
