// Package hunter provides a bot that closes in on the enemy, keeps its
// phasers on target and saves torpedoes for short range.
package hunter

import (
	"math"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
	"github.com/vovakirdan/tui-battlebots/internal/registry"
)

const (
	chaseSpeed     = 150
	standoff       = 120 // Stop closing inside this distance to avoid ramming
	torpedoRange   = 250
	dodgeThreshold = 0.5 // Phaser energy below which the bot strafes
)

func init() {
	registry.Register("hunter", func() battle.Bot { return &Bot{} })
}

// Bot chases the enemy. It leads its shots by the enemy's last known
// velocity and strafes when it is low on phaser energy and under fire.
type Bot struct {
	strafe float64
}

func (b *Bot) Name() string { return "Hunter" }

func (b *Bot) Decide(obs battle.TurnObservation) (battle.TurnDecision, error) {
	heading, dist := battle.Bearing(obs.Self.X, obs.Self.Y, obs.Enemy.X, obs.Enemy.Y)

	speed := float64(chaseSpeed)
	if dist < standoff {
		speed = 0
	}

	if obs.EnemyFired && obs.Phasers < dodgeThreshold {
		// Alternate sides each time we dodge.
		if b.strafe == 90 {
			b.strafe = -90
		} else {
			b.strafe = 90
		}
		heading = math.Mod(heading+b.strafe+360, 360)
		speed = chaseSpeed
	}

	return battle.TurnDecision{
		Heading:     heading,
		Speed:       speed,
		FireHeading: lead(obs, dist),
		FirePhaser:  obs.Phasers >= 1,
		FireTorpedo: dist <= torpedoRange && obs.Torpedoes > 0,
	}, nil
}

// lead aims where the enemy will be when a phaser covers dist, assuming
// default phaser speed.
func lead(obs battle.TurnObservation, dist float64) float64 {
	const phaserSpeed = 400
	t := dist / phaserSpeed
	rad := obs.Enemy.Heading * math.Pi / 180
	x := obs.Enemy.X + math.Cos(rad)*obs.Enemy.Speed*t
	y := obs.Enemy.Y - math.Sin(rad)*obs.Enemy.Speed*t
	aim, _ := battle.Bearing(obs.Self.X, obs.Self.Y, x, y)
	return aim
}
