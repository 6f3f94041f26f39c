package battle

import "slices"

// resolveCombat runs every interaction for the tick in fixed order and then
// drops consumed projectiles.
func (m *Match) resolveCombat() {
	m.resolveRamming()
	m.resolveHits(Side1)
	m.resolveHits(Side2)
	m.resolveClashes()
	m.resolvePowerups()

	m.shots[0] = sweep(m.shots[0])
	m.shots[1] = sweep(m.shots[1])
}

// resolveRamming settles ship contact: the weaker ship is destroyed and the
// stronger one loses the weaker one's remaining health.
func (m *Match) resolveRamming() {
	a, b := m.ships[0], m.ships[1]
	if a.Ship.Destroyed || b.Ship.Destroyed {
		return
	}
	if !Collides(a, b, m.cfg.Player.Multiplier) {
		return
	}

	switch {
	case a.Health > b.Health:
		a.Health -= b.Health
		m.destroy(b)
	case b.Health > a.Health:
		b.Health -= a.Health
		m.destroy(a)
	default:
		m.destroy(a)
		m.destroy(b)
	}
}

// resolveHits applies the opponent's projectiles to side's ship in creation
// order. Scanning stops once the ship is destroyed.
func (m *Match) resolveHits(side Side) {
	ship := m.ships[side.index()]
	if ship.Ship.Destroyed {
		return
	}

	for _, p := range m.shots[side.Opponent().index()] {
		if p.removed || !Collides(ship, p, m.cfg.Player.Multiplier) {
			continue
		}
		ship.Health -= p.Damage
		p.markRemoved()
		m.explode(p, EffectExplosionSmall)
		m.cues.Play(CueHit)

		if ship.Health <= 0 {
			m.destroy(ship)
			break
		}
	}
}

// resolveClashes cancels out opposing projectiles that touch.
func (m *Match) resolveClashes() {
	for _, a := range m.shots[0] {
		for _, b := range m.shots[1] {
			if a.removed || b.removed {
				continue
			}
			if !Collides(a, b, m.cfg.Player.Multiplier) {
				continue
			}
			a.markRemoved()
			b.markRemoved()
			m.explode(a, EffectExplosionSmall)
			m.explode(b, EffectExplosionSmall)
			m.cues.Play(CueHit)
		}
	}
}

// resolvePowerups handles ship/powerup pickups. Nothing spawns powerups
// yet, so there is nothing to collect.
func (m *Match) resolvePowerups() {}

func (m *Match) destroy(ship *Entity) {
	ship.Health = 0
	ship.Ship.Destroyed = true
	m.explode(ship, EffectExplosionLarge)
	m.cues.Play(CueExplode)
}

// explode spawns a short-lived explosion effect at at's position.
func (m *Match) explode(at *Entity, kind EffectKind) {
	size := float64(m.cfg.Effects.SmallSize)
	if kind == EffectExplosionLarge {
		size = float64(m.cfg.Effects.LargeSize)
	}
	e := NewEntity(KindEffect, at.X, at.Y, 0, 0, size, size)
	e.ID = m.allocID()
	e.Effect = kind
	e.Lifetime = m.cfg.Effects.ExplosionTicks
	m.effects = append(m.effects, e)
}

// sweep drops removed entities, keeping the order of the rest.
func sweep(list []*Entity) []*Entity {
	return slices.DeleteFunc(list, (*Entity).Removed)
}
