package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default) failed: %v", err)
	}
	if cfg != DefaultBattleConfig() {
		t.Errorf("embedded YAML and DefaultBattleConfig differ:\n%+v\n%+v", cfg, DefaultBattleConfig())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Match.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.Match.TickRate)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	data := strings.Replace(string(DefaultYAML()), "match_secs: 125", "match_secs: 30", 1)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Match.MatchSecs != 30 {
		t.Errorf("MatchSecs = %d, expected 30", cfg.Match.MatchSecs)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadMalformedLocalFileIsFatal(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(LocalConfigPath, []byte("match: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(""); err == nil {
		t.Fatal("expected malformed local config to fail")
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	data := string(DefaultYAML()) + "\nbogus: 1\n"
	if _, err := Parse([]byte(data)); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestParseRejectsMissingValues(t *testing.T) {
	data := strings.Replace(string(DefaultYAML()), "  tick_rate: 60\n", "", 1)

	_, err := Parse([]byte(data))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "match.tick_rate" {
		t.Errorf("Field = %q, expected match.tick_rate", verr.Field)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BattleConfig)
		field  string
	}{
		{"defaults", func(*BattleConfig) {}, ""},
		{"zero ticks per turn", func(c *BattleConfig) { c.Match.TicksPerTurn = 0 }, "match.ticks_per_turn"},
		{"match shorter than countdown", func(c *BattleConfig) { c.Match.MatchSecs = 5 }, "match.match_secs"},
		{"no arena", func(c *BattleConfig) { c.Arena.Width = 0 }, "arena"},
		{"multiplier of one", func(c *BattleConfig) { c.Player.Multiplier = 1.0 }, "player.multiplier"},
		{"start outside arena", func(c *BattleConfig) { c.Arena.Start1X = 5 }, "arena.start1"},
		{"torpedo without damage", func(c *BattleConfig) { c.Torpedo.Damage = 0 }, "torpedo.damage"},
		{"negative cap", func(c *BattleConfig) { c.Player.PhaserCap = -1 }, "player.phaser_cap"},
		{"no explosion lifetime", func(c *BattleConfig) { c.Effects.ExplosionTicks = 0 }, "effects.explosion_ticks"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBattleConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", verr.Field, tc.field)
			}
		})
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(DefaultBattleConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if _, err := Parse(data); err != nil {
		t.Errorf("Parse(Marshal(default)) failed: %v", err)
	}
}
