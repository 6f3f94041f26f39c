// Package sample provides the two reference bots shipped with the game.
// Both sweep up and down the arena on a fixed cycle while shooting at the
// enemy; they differ only in phase and in whether they also ask for
// torpedoes.
package sample

import (
	"github.com/vovakirdan/tui-battlebots/internal/battle"
	"github.com/vovakirdan/tui-battlebots/internal/registry"
)

const (
	turnSecs  = 0.25 // Default turn length, 15 ticks at 60 Hz
	cycleSecs = 4
	legSecs   = 2
	speed     = 100
)

func init() {
	registry.Register("samplebot1", func() battle.Bot {
		return NewOscillator("Daniel", 270, 90, false)
	})
	registry.Register("samplebot2", func() battle.Bot {
		return NewOscillator("Timmy", 90, 270, true)
	})
}

// Oscillator flies heading first for the opening leg of each cycle and
// heading second for the rest, always aiming its guns at the enemy.
type Oscillator struct {
	name          string
	first, second float64
	torpedoes     bool
	clock         float64
}

// NewOscillator creates an oscillating bot.
func NewOscillator(name string, first, second float64, torpedoes bool) *Oscillator {
	return &Oscillator{name: name, first: first, second: second, torpedoes: torpedoes}
}

func (o *Oscillator) Name() string {
	return o.name
}

func (o *Oscillator) Decide(obs battle.TurnObservation) (battle.TurnDecision, error) {
	aim, _ := battle.Bearing(obs.Self.X, obs.Self.Y, obs.Enemy.X, obs.Enemy.Y)

	heading := o.second
	if o.clock < legSecs {
		heading = o.first
	}
	o.clock += turnSecs
	if o.clock >= cycleSecs {
		o.clock = 0
	}

	return battle.TurnDecision{
		Heading:     heading,
		Speed:       speed,
		FireHeading: aim,
		FirePhaser:  true,
		FireTorpedo: o.torpedoes,
	}, nil
}
