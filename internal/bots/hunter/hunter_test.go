package hunter

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
)

func TestHunterDecide(t *testing.T) {
	tests := []struct {
		name        string
		obs         battle.TurnObservation
		wantSpeed   float64
		wantPhaser  bool
		wantTorpedo bool
	}{
		{
			name: "far away chases with phasers",
			obs: battle.TurnObservation{
				Self:    battle.ShipView{X: 100, Y: 300},
				Enemy:   battle.ShipView{X: 700, Y: 300},
				Phasers: 5, Torpedoes: 5,
			},
			wantSpeed: chaseSpeed, wantPhaser: true,
		},
		{
			name: "close range adds torpedoes",
			obs: battle.TurnObservation{
				Self:    battle.ShipView{X: 100, Y: 300},
				Enemy:   battle.ShipView{X: 300, Y: 300},
				Phasers: 0.5, Torpedoes: 2,
			},
			wantSpeed: chaseSpeed, wantTorpedo: true,
		},
		{
			name: "holds at standoff",
			obs: battle.TurnObservation{
				Self:    battle.ShipView{X: 100, Y: 300},
				Enemy:   battle.ShipView{X: 200, Y: 300},
				Phasers: 2, Torpedoes: 0,
			},
			wantSpeed: 0, wantPhaser: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := (&Bot{}).Decide(tt.obs)
			if err != nil {
				t.Fatal(err)
			}
			if d.Speed != tt.wantSpeed {
				t.Errorf("Speed = %v, want %v", d.Speed, tt.wantSpeed)
			}
			if d.FirePhaser != tt.wantPhaser || d.FireTorpedo != tt.wantTorpedo {
				t.Errorf("fire = %v/%v, want %v/%v", d.FirePhaser, d.FireTorpedo, tt.wantPhaser, tt.wantTorpedo)
			}
			if math.Abs(d.Heading) > 1e-9 {
				t.Errorf("Heading = %v, want 0", d.Heading)
			}
		})
	}
}

func TestHunterStrafesUnderFire(t *testing.T) {
	b := &Bot{}
	obs := battle.TurnObservation{
		Self:       battle.ShipView{X: 100, Y: 300},
		Enemy:      battle.ShipView{X: 700, Y: 300},
		EnemyFired: true,
	}

	first, _ := b.Decide(obs)
	second, _ := b.Decide(obs)
	if math.Abs(first.Heading-90) > 1e-9 || math.Abs(second.Heading-270) > 1e-9 {
		t.Errorf("strafe headings = %v, %v, want 90, 270", first.Heading, second.Heading)
	}
}
