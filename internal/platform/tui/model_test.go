package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
	"github.com/vovakirdan/tui-battlebots/internal/core"
	"github.com/vovakirdan/tui-battlebots/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return mm, cmd
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(newTestMatch(t, testConfig()), Pairing{Bot1: "a", Bot2: "b"}, nil, core.DefaultConfig())
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate  int
		speed float64
		want  time.Duration
	}{
		{60, 1, time.Second / 60},
		{60, 2, time.Second / 120},
		{50, 0.5, time.Second / 25},
		{0, 1, time.Second / 60},
		{60, 0, time.Second / 60},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate, tt.speed); got != tt.want {
			t.Errorf("tickInterval(%d, %v) = %v, want %v", tt.rate, tt.speed, got, tt.want)
		}
	}
}

func TestModelTickAdvances(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, TickMsg{})
	if m.match.Ticks() != 1 {
		t.Errorf("Ticks = %d, want 1", m.match.Ticks())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runes("p"))
	if !m.paused {
		t.Fatal("p should pause")
	}
	m, _ = update(t, m, TickMsg{})
	if m.match.Ticks() != 0 {
		t.Errorf("paused tick advanced the match to %d", m.match.Ticks())
	}

	m, _ = update(t, m, runes("n"))
	if m.match.Ticks() != 1 {
		t.Errorf("step key: Ticks = %d, want 1", m.match.Ticks())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.paused {
		t.Error("space should resume")
	}
	m, _ = update(t, m, runes("n"))
	if m.match.Ticks() != 1 {
		t.Error("step key should do nothing while running")
	}
}

func TestModelSpeedLimits(t *testing.T) {
	m := newTestModel(t)

	for range 10 {
		m, _ = update(t, m, runes("+"))
	}
	if m.config.Speed != maxSpeed {
		t.Errorf("Speed = %v, want %v", m.config.Speed, maxSpeed)
	}
	for range 10 {
		m, _ = update(t, m, runes("-"))
	}
	if m.config.Speed != minSpeed {
		t.Errorf("Speed = %v, want %v", m.config.Speed, minSpeed)
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runes("q"))
	if !m.quitting {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuitsWhenDone(t *testing.T) {
	m := newTestModel(t)

	for !m.quitting {
		if m.match.Ticks() > 60*20 {
			t.Fatal("match never finished")
		}
		m, _ = update(t, m, TickMsg{})
	}
	if m.Err() != nil {
		t.Errorf("Err = %v", m.Err())
	}
	if got := m.Result().State; got != battle.StateDraw {
		t.Errorf("Result state = %v, want draw", got)
	}
}

func TestModelNextMatch(t *testing.T) {
	m := newTestModel(t)
	first := m.match

	calls := 0
	m = m.WithNext(func() (*battle.Match, Pairing, error) {
		calls++
		if calls > 1 {
			return nil, Pairing{}, nil
		}
		return newTestMatch(t, testConfig()), Pairing{Bot1: "b", Bot2: "a"}, nil
	})

	for !m.quitting {
		if calls == 0 && m.match.Ticks() > 60*20 {
			t.Fatal("first match never finished")
		}
		m, _ = update(t, m, TickMsg{})
	}
	if calls != 2 {
		t.Errorf("next called %d times, want 2", calls)
	}
	if m.match == first {
		t.Error("viewer should have moved on to the second match")
	}
	if m.pairing.Bot1 != "b" {
		t.Errorf("pairing = %+v", m.pairing)
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := NewModel(newTestMatch(t, testConfig()), Pairing{Bot1: "a", Bot2: "b"}, store, core.DefaultConfig()).
		WithSeries("viewer")
	for !m.quitting {
		m, _ = update(t, m, TickMsg{})
	}

	got, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("saved %d matches, want 1", len(got))
	}
	if got[0].Series != "viewer" || got[0].Bot1 != "a" || got[0].Outcome != battle.StateDraw {
		t.Errorf("saved %+v", got[0])
	}
}
