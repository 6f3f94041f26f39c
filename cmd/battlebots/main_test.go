package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
	"github.com/vovakirdan/tui-battlebots/internal/config"
	"github.com/vovakirdan/tui-battlebots/internal/storage"
	"github.com/vovakirdan/tui-battlebots/internal/tournament"
)

// runMainEnv makes the test binary behave as the battlebots command so
// ExecRunner can spawn it.
const runMainEnv = "BATTLEBOTS_RUN_MAIN"

func TestMain(m *testing.M) {
	if os.Getenv(runMainEnv) == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func writeConfig(t *testing.T, cfg config.BattleConfig) string {
	t.Helper()
	data, err := config.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "battlebots.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func quickConfig() config.BattleConfig {
	cfg := config.DefaultBattleConfig()
	cfg.Match.CountSecs = 0
	cfg.Match.MatchSecs = 1
	cfg.Match.BellSecs = 0
	cfg.Match.ExitSecs = 0
	return cfg
}

// battlebots runs the command in a child process and returns its stdout.
func battlebots(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv(runMainEnv, "1")

	var stdout bytes.Buffer
	cmd := exec.Command(os.Args[0], args...)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		t.Fatalf("battlebots %s: %v", strings.Join(args, " "), err)
	}
	return stdout.String()
}

func TestRunExitStatus(t *testing.T) {
	t.Setenv(runMainEnv, "1")
	goodConfig := writeConfig(t, quickConfig())

	badConfig := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(badConfig, []byte("match:\n  tick_rate: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		args       []string
		bot1, bot2 string
		want       battle.State
		wantErr    bool
	}{
		{
			name: "finished match reports the outcome",
			args: []string{"run", "--quiet", "--config", goodConfig},
			bot1: "sitter", bot2: "sitter",
			want: battle.StateDraw,
		},
		{
			name: "invalid config is no result",
			args: []string{"run", "--quiet", "--config", badConfig},
			bot1: "sitter", bot2: "sitter",
			want: battle.StatePre,
		},
		{
			name: "missing config is no result",
			args: []string{"run", "--quiet", "--config", filepath.Join(t.TempDir(), "missing.yaml")},
			bot1: "sitter", bot2: "sitter",
			want: battle.StatePre,
		},
		{
			name: "unknown bot is no result",
			args: []string{"run", "--quiet", "--config", goodConfig},
			bot1: "nosuchbot", bot2: "sitter",
			want: battle.StatePre,
		},
		{
			name: "bad arguments are an error",
			args: []string{"run", "--quiet", "extra"},
			bot1: "sitter", bot2: "sitter",
			wantErr: true,
		},
		{
			name: "bad flag is an error",
			args: []string{"run", "--log-level", "loud"},
			bot1: "sitter", bot2: "sitter",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tournament.ExecRunner{Path: os.Args[0], Args: tt.args}
			out, err := r.Play(context.Background(), tt.bot1, tt.bot2)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Play = %+v, want an error", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("Play: %v", err)
			}
			if out.State != tt.want {
				t.Errorf("State = %v, want %v", out.State, tt.want)
			}
		})
	}
}

func TestBestOfSkipsRunsThatNeverStarted(t *testing.T) {
	t.Setenv(runMainEnv, "1")

	badConfig := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(badConfig, []byte("match:\n  tick_rate: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	series := tournament.BestOf{
		Runner: tournament.ExecRunner{
			Path: os.Args[0],
			Args: []string{"run", "--quiet", "--config", badConfig},
		},
	}
	res, err := series.Run(context.Background(), "hunter", "sitter", 3)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Played() != 0 || res.NoResult != 3 {
		t.Errorf("series = %+v, want 3 matches without a result", res)
	}
}

func TestRunPrintsCues(t *testing.T) {
	t.Setenv(runMainEnv, "1")

	var stdout bytes.Buffer
	r := tournament.ExecRunner{
		Path:   os.Args[0],
		Args:   []string{"run", "--quiet", "--cues", "--config", writeConfig(t, quickConfig())},
		Stdout: &stdout,
	}
	out, err := r.Play(context.Background(), "sitter", "sitter")
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if out.State != battle.StateDraw {
		t.Errorf("State = %v, want draw", out.State)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != len(battle.AllCues) {
		t.Fatalf("cue lines = %q", lines)
	}
	got := map[string]string{}
	for _, line := range lines {
		fields := strings.Fields(line)
		got[fields[0]] = fields[1]
	}
	if got["gameover"] != "1" || got["phaser"] != "0" {
		t.Errorf("cue counts = %v", got)
	}
}

func TestConfigCommandRoundTrips(t *testing.T) {
	want := quickConfig()
	want.Player.Health = 7

	out := battlebots(t, "config", "--config", writeConfig(t, want))
	if !strings.HasPrefix(out, "# 60 ticks per second, 4 turns per second\n") {
		t.Errorf("header = %q", strings.SplitN(out, "\n", 2)[0])
	}

	got, err := config.Parse([]byte(out))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != want {
		t.Errorf("config = %+v, want %+v", got, want)
	}
}

func TestStandingsForOneBot(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	results := []struct {
		bot1, bot2 string
		state      battle.State
	}{
		{"hunter", "sitter", battle.StatePlayer1Wins},
		{"sitter", "hunter", battle.StatePlayer2Wins},
		{"hunter", "sitter", battle.StateDraw},
		{"hunter", "samplebot1", battle.StatePlayer2Wins},
	}
	for _, r := range results {
		res := battle.Result{Names: [2]string{r.bot1, r.bot2}, Health: [2]int{5, 5}, State: r.state, Seconds: 30}
		if _, err := store.SaveResult("", r.bot1, r.bot2, res); err != nil {
			t.Fatal(err)
		}
	}
	store.Close()

	out := battlebots(t, "standings", "--db", dbPath, "--bot", "hunter", "--vs", "sitter")
	if want := "hunter vs sitter: 2 wins, 1 draws, 0 losses (5 points)"; !strings.Contains(out, want) {
		t.Errorf("head to head = %q, want %q", out, want)
	}

	out = battlebots(t, "standings", "--db", dbPath, "--bot", "hunter", "--limit", "10")
	for _, word := range []string{"win", "draw", "loss"} {
		if !strings.Contains(out, " "+word+" ") {
			t.Errorf("recent matches missing a %s:\n%s", word, out)
		}
	}

	out = battlebots(t, "standings", "--db", dbPath, "--bot", "nobody")
	if !strings.Contains(out, "No matches recorded for nobody.") {
		t.Errorf("unknown bot output = %q", out)
	}
}
