package battle

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-battlebots/internal/core"
)

// takeTurns polls both bots against the same pre-turn state, then applies
// their decisions in side order.
func (m *Match) takeTurns() error {
	obs := [2]TurnObservation{m.observe(Side1), m.observe(Side2)}

	var decisions [2]TurnDecision
	for i, side := range []Side{Side1, Side2} {
		d, err := m.decide(side, obs[i])
		if err != nil {
			return err
		}
		decisions[i] = d
	}

	m.apply(Side1, decisions[0])
	m.apply(Side2, decisions[1])
	return nil
}

func (m *Match) observe(side Side) TurnObservation {
	self := m.ships[side.index()]
	enemy := m.ships[side.Opponent().index()]
	return TurnObservation{
		Enemy:      viewOf(enemy),
		EnemyFired: enemy.Ship.FiredLastTurn,
		Self:       viewOf(self),
		Torpedoes:  self.Ship.Torpedoes,
		Phasers:    self.Ship.Phasers,
		TimeLeft:   m.TimeLeft(),
	}
}

func viewOf(e *Entity) ShipView {
	return ShipView{
		X:       e.X,
		Y:       e.Y,
		Heading: e.Heading(),
		Speed:   e.Speed,
		Health:  e.Health,
	}
}

// decide calls the bot, turning errors and panics into a BotError.
func (m *Match) decide(side Side, obs TurnObservation) (d TurnDecision, err error) {
	bot := m.bots[side.index()]
	defer func() {
		if r := recover(); r != nil {
			d = TurnDecision{}
			err = &BotError{Side: side, Name: bot.Name(), Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	d, err = bot.Decide(obs)
	if err != nil {
		return TurnDecision{}, &BotError{Side: side, Name: bot.Name(), Err: err}
	}
	return d, nil
}

// apply steers the ship, fires at most one weapon and recharges phasers.
func (m *Match) apply(side Side, d TurnDecision) {
	ship := m.ships[side.index()]
	ext := ship.Ship
	p := m.cfg.Player

	speed := d.Speed
	if math.IsNaN(speed) {
		speed = 0
	}
	ship.Speed = core.ClampF(speed, 0, float64(p.MaxSpeed))
	if finite(d.Heading) {
		ship.SetHeading(d.Heading)
	}

	aim := d.FireHeading
	if !finite(aim) {
		aim = ship.Heading()
	}

	switch {
	case d.FirePhaser && ext.Phasers >= 1:
		m.fire(side, WeaponPhaser, aim)
		ext.Phasers--
		ext.FiredLastTurn = true
		m.cues.Play(CuePhaser)
	case d.FireTorpedo && ext.Torpedoes >= 1:
		m.fire(side, WeaponTorpedo, aim)
		ext.Torpedoes--
		ext.FiredLastTurn = true
		m.cues.Play(CueTorpedo)
	default:
		ext.FiredLastTurn = false
	}

	ext.Phasers += p.PhaserCharge
	if p.PhaserCap > 0 && ext.Phasers > p.PhaserCap {
		ext.Phasers = p.PhaserCap
	}
}

// fire spawns a projectile at the ship's position.
func (m *Match) fire(side Side, w Weapon, heading float64) {
	stats := m.cfg.Phaser
	if w == WeaponTorpedo {
		stats = m.cfg.Torpedo
	}
	ship := m.ships[side.index()]
	p := NewEntity(KindProjectile, ship.X, ship.Y, heading,
		float64(stats.Speed), float64(stats.Width), float64(stats.Height))
	p.ID = m.allocID()
	p.Weapon = w
	p.Owner = side
	p.Damage = stats.Damage
	m.shots[side.index()] = append(m.shots[side.index()], p)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
