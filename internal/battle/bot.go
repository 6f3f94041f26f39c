package battle

import "math"

// Bot is the decision-making side of a competitor.
// Decide is called on every turn boundary with a snapshot of the match; it
// must return promptly since the simulation waits for it. A bot may keep
// private state between calls.
type Bot interface {
	Name() string
	Decide(obs TurnObservation) (TurnDecision, error)
}

// ShipView is what a bot can see of one ship.
type ShipView struct {
	X, Y    float64
	Heading float64
	Speed   float64
	Health  int
}

// TurnObservation is the value snapshot handed to a bot each turn.
type TurnObservation struct {
	Enemy      ShipView
	EnemyFired bool // Enemy fired a weapon on its last turn
	Self       ShipView
	Torpedoes  int
	Phasers    float64
	TimeLeft   int // Seconds until the match time limit
}

// TurnDecision is a bot's response for one turn.
// FirePhaser takes precedence when both weapons are requested.
type TurnDecision struct {
	Heading     float64
	Speed       float64
	FireHeading float64
	FirePhaser  bool
	FireTorpedo bool
}

// Bearing returns the heading in degrees and the distance from one point to
// another, using arena coordinates where y grows downward. The heading is
// normalised to [0, 360), so due east is 0.
func Bearing(fromX, fromY, toX, toY float64) (heading, distance float64) {
	dx, dy := toX-fromX, toY-fromY
	heading = 360 - math.Atan2(dy, dx)*180/math.Pi
	if heading >= 360 {
		heading -= 360
	}
	return heading, math.Hypot(dx, dy)
}
