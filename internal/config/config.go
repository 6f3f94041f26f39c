// Package config provides YAML-based match configuration loading and
// validation for the battle simulation.
package config

// BattleConfig contains every tunable used by a match.
// It is read once before a match is constructed and never mutated afterwards.
type BattleConfig struct {
	Match   MatchConfig  `yaml:"match"`
	Arena   ArenaConfig  `yaml:"arena"`
	Player  PlayerConfig `yaml:"player"`
	Phaser  WeaponConfig `yaml:"phaser"`
	Torpedo WeaponConfig `yaml:"torpedo"`
	Effects EffectConfig `yaml:"effects"`
}

// MatchConfig defines match timing.
type MatchConfig struct {
	CountSecs    int `yaml:"count_secs"`     // Pre-match countdown length
	MatchSecs    int `yaml:"match_secs"`     // Time limit, measured from match start
	BellSecs     int `yaml:"bell_secs"`      // Bell rings when this many seconds remain
	ExitSecs     int `yaml:"exit_secs"`      // Delay after the outcome before the loop ends
	TickRate     int `yaml:"tick_rate"`      // Simulation ticks per second
	TicksPerTurn int `yaml:"ticks_per_turn"` // Ticks between bot decisions
}

// ArenaConfig defines the arena rectangle and starting positions.
type ArenaConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Start1X int `yaml:"start1_x"`
	Start1Y int `yaml:"start1_y"`
	Start2X int `yaml:"start2_x"`
	Start2Y int `yaml:"start2_y"`
}

// PlayerConfig defines ship parameters.
type PlayerConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Multiplier   float64 `yaml:"multiplier"` // Hitbox shrink for collision tests
	Health       int     `yaml:"health"`
	Torpedoes    int     `yaml:"torpedoes"`
	Phasers      int     `yaml:"phasers"`
	MaxSpeed     int     `yaml:"max_speed"`     // Pixels per second
	PhaserCharge float64 `yaml:"phaser_charge"` // Phaser energy gained per turn
	PhaserCap    float64 `yaml:"phaser_cap"`    // 0 = unbounded
}

// WeaponConfig defines a projectile type.
type WeaponConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Damage int `yaml:"damage"`
	Speed  int `yaml:"speed"`
}

// EffectConfig defines cosmetic explosion sizes and lifetime.
type EffectConfig struct {
	ExplosionTicks int `yaml:"explosion_ticks"`
	SmallSize      int `yaml:"small_size"`
	LargeSize      int `yaml:"large_size"`
}

// TicksPerSecond returns the tick rate as a float for integration math.
func (c BattleConfig) TicksPerSecond() float64 {
	return float64(c.Match.TickRate)
}

// TurnsPerSecond returns how many turn boundaries fall within one second.
func (c BattleConfig) TurnsPerSecond() float64 {
	if c.Match.TicksPerTurn <= 0 {
		return 0
	}
	return float64(c.Match.TickRate) / float64(c.Match.TicksPerTurn)
}
