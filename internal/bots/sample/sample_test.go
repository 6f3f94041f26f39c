package sample

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
)

func TestOscillatorCycle(t *testing.T) {
	bot := NewOscillator("Daniel", 270, 90, false)
	obs := battle.TurnObservation{
		Self:  battle.ShipView{X: 100, Y: 300},
		Enemy: battle.ShipView{X: 700, Y: 300},
	}

	// 8 turns per leg at 0.25 s per turn, then the cycle repeats.
	want := []float64{270, 270, 270, 270, 270, 270, 270, 270, 90, 90, 90, 90, 90, 90, 90, 90, 270}
	for i, heading := range want {
		d, err := bot.Decide(obs)
		if err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
		if d.Heading != heading {
			t.Errorf("turn %d: Heading = %v, want %v", i, d.Heading, heading)
		}
		if d.Speed != speed || !d.FirePhaser || d.FireTorpedo {
			t.Errorf("turn %d: decision = %+v", i, d)
		}
		if math.Abs(d.FireHeading) > 1e-9 {
			t.Errorf("turn %d: FireHeading = %v, want 0 (enemy due east)", i, d.FireHeading)
		}
	}
}

func TestTimmyRequestsBothWeapons(t *testing.T) {
	bot := NewOscillator("Timmy", 90, 270, true)
	d, err := bot.Decide(battle.TurnObservation{})
	if err != nil {
		t.Fatal(err)
	}
	if !d.FirePhaser || !d.FireTorpedo || d.Heading != 90 {
		t.Errorf("decision = %+v", d)
	}
}
