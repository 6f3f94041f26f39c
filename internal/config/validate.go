package config

import "fmt"

// ValidationError reports a configuration value that cannot be used.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks that every value is present and in range.
// A missing key decodes to zero, so zero is rejected wherever it would leave
// the simulation undefined.
func (c BattleConfig) Validate() error {
	m := c.Match
	switch {
	case m.TickRate <= 0:
		return invalid("match.tick_rate", "must be positive, got %d", m.TickRate)
	case m.TicksPerTurn <= 0:
		return invalid("match.ticks_per_turn", "must be positive, got %d", m.TicksPerTurn)
	case m.CountSecs < 0:
		return invalid("match.count_secs", "must not be negative, got %d", m.CountSecs)
	case m.MatchSecs <= m.CountSecs:
		return invalid("match.match_secs", "must exceed count_secs (%d), got %d", m.CountSecs, m.MatchSecs)
	case m.BellSecs < 0:
		return invalid("match.bell_secs", "must not be negative, got %d", m.BellSecs)
	case m.ExitSecs < 0:
		return invalid("match.exit_secs", "must not be negative, got %d", m.ExitSecs)
	}

	a := c.Arena
	if a.Width <= 0 || a.Height <= 0 {
		return invalid("arena", "size must be positive, got %dx%d", a.Width, a.Height)
	}

	p := c.Player
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return invalid("player", "size must be positive, got %dx%d", p.Width, p.Height)
	case p.Multiplier <= 0 || p.Multiplier >= 1:
		return invalid("player.multiplier", "must be in (0, 1), got %g", p.Multiplier)
	case p.Health <= 0:
		return invalid("player.health", "must be positive, got %d", p.Health)
	case p.Torpedoes < 0:
		return invalid("player.torpedoes", "must not be negative, got %d", p.Torpedoes)
	case p.Phasers < 0:
		return invalid("player.phasers", "must not be negative, got %d", p.Phasers)
	case p.MaxSpeed <= 0:
		return invalid("player.max_speed", "must be positive, got %d", p.MaxSpeed)
	case p.PhaserCharge < 0:
		return invalid("player.phaser_charge", "must not be negative, got %g", p.PhaserCharge)
	case p.PhaserCap < 0:
		return invalid("player.phaser_cap", "must not be negative, got %g", p.PhaserCap)
	}

	if err := validateStart("arena.start1", a.Start1X, a.Start1Y, a, p); err != nil {
		return err
	}
	if err := validateStart("arena.start2", a.Start2X, a.Start2Y, a, p); err != nil {
		return err
	}

	if err := validateWeapon("phaser", c.Phaser); err != nil {
		return err
	}
	if err := validateWeapon("torpedo", c.Torpedo); err != nil {
		return err
	}

	e := c.Effects
	if e.ExplosionTicks <= 0 {
		return invalid("effects.explosion_ticks", "must be positive, got %d", e.ExplosionTicks)
	}
	if e.SmallSize <= 0 || e.LargeSize <= 0 {
		return invalid("effects", "sizes must be positive, got %d and %d", e.SmallSize, e.LargeSize)
	}

	return nil
}

// validateStart rejects a start position that would put the ship's box
// outside the arena, which would pin it in place for the whole match.
func validateStart(field string, x, y int, a ArenaConfig, p PlayerConfig) error {
	halfW, halfH := float64(p.Width)/2, float64(p.Height)/2
	fx, fy := float64(x), float64(y)
	if fx < halfW || fx > float64(a.Width)-halfW || fy < halfH || fy > float64(a.Height)-halfH {
		return invalid(field, "(%d, %d) places the ship outside a %dx%d arena", x, y, a.Width, a.Height)
	}
	return nil
}

func validateWeapon(field string, w WeaponConfig) error {
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return invalid(field, "size must be positive, got %dx%d", w.Width, w.Height)
	case w.Damage <= 0:
		return invalid(field+".damage", "must be positive, got %d", w.Damage)
	case w.Speed <= 0:
		return invalid(field+".speed", "must be positive, got %d", w.Speed)
	}
	return nil
}
