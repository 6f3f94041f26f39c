// Package battle implements the deterministic two-ship arena simulation:
// fixed-tick movement, turn-based bot polling, collision resolution and the
// match state machine. Rendering, audio and configuration loading are
// collaborators reached through small interfaces.
package battle

import (
	"math"

	"github.com/vovakirdan/tui-battlebots/internal/core"
)

// Kind tags what an Entity represents.
type Kind int

const (
	KindShip Kind = iota + 1
	KindProjectile
	KindEffect
	KindPowerup
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindProjectile:
		return "projectile"
	case KindEffect:
		return "effect"
	case KindPowerup:
		return "powerup"
	default:
		return "unknown"
	}
}

// Weapon identifies which weapon fired a projectile.
type Weapon int

const (
	WeaponNone Weapon = iota
	WeaponPhaser
	WeaponTorpedo
)

// String returns the weapon name.
func (w Weapon) String() string {
	switch w {
	case WeaponPhaser:
		return "phaser"
	case WeaponTorpedo:
		return "torpedo"
	default:
		return "none"
	}
}

// EffectKind distinguishes cosmetic effects.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectExplosionSmall
	EffectExplosionLarge
)

// Unbounded is the lifetime of an entity that never expires on its own.
const Unbounded = -1

// projectileMargin is how far past the arena edge a projectile center may
// travel before it despawns.
const projectileMargin = 10

// Arena is the rectangle entities move in, in pixels.
// Y grows downward.
type Arena struct {
	Width, Height float64
}

// Entity is any simulated object. Ships carry their extra state in Ship.
type Entity struct {
	ID     uint64
	Kind   Kind
	X, Y   float64
	Speed  float64 // Pixels per second
	Health int     // Ships
	Damage int     // Projectiles
	Weapon Weapon  // Projectiles
	Owner  Side    // Projectiles
	Effect EffectKind

	// Lifetime counts down once per tick while positive; reaching 0 removes
	// the entity. Unbounded (-1) never expires.
	Lifetime int

	// Hitbox dimensions in pixels, before any collision shrink.
	Width, Height float64

	Ship *Ship

	heading  float64
	cos, sin float64
	removed  bool
}

// Ship is the extension payload carried by ship entities.
type Ship struct {
	Name          string
	Torpedoes     int
	Phasers       float64 // One unit fires one phaser
	FiredLastTurn bool
	Destroyed     bool
}

// NewEntity creates an entity with the given heading applied.
func NewEntity(kind Kind, x, y, heading, speed, w, h float64) *Entity {
	e := &Entity{
		Kind:     kind,
		X:        x,
		Y:        y,
		Speed:    speed,
		Width:    w,
		Height:   h,
		Lifetime: Unbounded,
	}
	e.SetHeading(heading)
	return e
}

// Heading returns the current heading in degrees (0 = east, 90 = north).
func (e *Entity) Heading() float64 {
	return e.heading
}

// SetHeading changes the heading and refreshes the cached unit vector.
func (e *Entity) SetHeading(degrees float64) {
	e.heading = degrees
	rad := degrees * math.Pi / 180
	e.cos = math.Cos(rad)
	e.sin = math.Sin(rad)
}

// Direction returns the cached heading unit vector in math orientation
// (positive sin points north).
func (e *Entity) Direction() (cos, sin float64) {
	return e.cos, e.sin
}

// Box returns the entity's unshrunk bounding box.
func (e *Entity) Box() core.Box {
	return core.CenteredBox(e.X, e.Y, e.Width, e.Height)
}

// Removed reports whether the entity has been consumed this tick.
func (e *Entity) Removed() bool {
	return e.removed
}

// markRemoved flags the entity for removal. Marking twice is harmless.
func (e *Entity) markRemoved() {
	e.removed = true
}

// Update advances the entity by one tick and reports whether it should be
// removed from its collection.
func (e *Entity) Update(a Arena, tickRate float64) bool {
	oldX, oldY := e.X, e.Y

	distance := e.Speed / tickRate
	e.X += e.cos * distance
	e.Y -= e.sin * distance

	remove := false
	switch e.Kind {
	case KindShip:
		// Hitting a wall rejects the whole move and kills momentum.
		halfW, halfH := e.Width/2, e.Height/2
		if e.X < halfW || e.X > a.Width-halfW || e.Y < halfH || e.Y > a.Height-halfH {
			e.X, e.Y = oldX, oldY
			e.Speed = 0
		}
	case KindProjectile:
		if e.X < -projectileMargin || e.X > a.Width+projectileMargin ||
			e.Y < -projectileMargin || e.Y > a.Height+projectileMargin {
			remove = true
		}
	}

	if e.Lifetime > 0 {
		e.Lifetime--
	}
	if e.Lifetime == 0 {
		remove = true
	}

	return remove
}
