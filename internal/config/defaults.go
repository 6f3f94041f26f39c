package config

import (
	_ "embed"
)

//go:embed defaults/battlebots.yaml
var defaultBattleYAML []byte

// DefaultBattleConfig returns the built-in configuration.
// It mirrors defaults/battlebots.yaml and is used when the embedded file
// cannot be decoded.
func DefaultBattleConfig() BattleConfig {
	return BattleConfig{
		Match: MatchConfig{
			CountSecs:    5,
			MatchSecs:    125,
			BellSecs:     10,
			ExitSecs:     3,
			TickRate:     60,
			TicksPerTurn: 15,
		},
		Arena: ArenaConfig{
			Width:   800,
			Height:  600,
			Start1X: 100,
			Start1Y: 300,
			Start2X: 700,
			Start2Y: 300,
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       40,
			Multiplier:   0.8,
			Health:       10,
			Torpedoes:    5,
			Phasers:      5,
			MaxSpeed:     150,
			PhaserCharge: 0.25,
		},
		Phaser: WeaponConfig{
			Width:  6,
			Height: 6,
			Damage: 1,
			Speed:  400,
		},
		Torpedo: WeaponConfig{
			Width:  10,
			Height: 10,
			Damage: 5,
			Speed:  300,
		},
		Effects: EffectConfig{
			ExplosionTicks: 10,
			SmallSize:      16,
			LargeSize:      48,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBattleYAML
}
