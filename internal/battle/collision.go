package battle

import "github.com/vovakirdan/tui-battlebots/internal/core"

// hitbox returns the box used for collision tests. Projectiles count their
// full extent; everything else is shrunk by shipMultiplier.
func hitbox(e *Entity, shipMultiplier float64) core.Box {
	mult := shipMultiplier
	if e.Kind == KindProjectile {
		mult = 1.0
	}
	return core.CenteredBox(e.X, e.Y, e.Width*mult, e.Height*mult)
}

// Collides reports whether two entities' hitboxes overlap.
// The result does not depend on argument order.
func Collides(a, b *Entity, shipMultiplier float64) bool {
	return hitbox(a, shipMultiplier).Overlaps(hitbox(b, shipMultiplier))
}
