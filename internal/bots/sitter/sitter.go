// Package sitter provides a bot that never moves or fires. It is the
// baseline opponent for tests and tournaments.
package sitter

import (
	"github.com/vovakirdan/tui-battlebots/internal/battle"
	"github.com/vovakirdan/tui-battlebots/internal/registry"
)

func init() {
	registry.Register("sitter", func() battle.Bot { return Bot{} })
}

// Bot does nothing.
type Bot struct{}

func (Bot) Name() string { return "Sitter" }

func (Bot) Decide(battle.TurnObservation) (battle.TurnDecision, error) {
	return battle.TurnDecision{}, nil
}
