package tui

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-battlebots/internal/registry"

	_ "github.com/vovakirdan/tui-battlebots/internal/bots/sitter"
)

func TestPickerFixedPairing(t *testing.T) {
	p, err := newPicker([]string{"sitter", "sitter"}, 1)
	if err != nil {
		t.Fatalf("newPicker: %v", err)
	}
	for range 3 {
		if got := p.next(); got != (Pairing{Bot1: "sitter", Bot2: "sitter"}) {
			t.Errorf("next = %+v", got)
		}
	}
}

func TestPickerRandom(t *testing.T) {
	p, err := newPicker(nil, 42)
	if err != nil {
		t.Fatalf("newPicker: %v", err)
	}
	for range 10 {
		got := p.next()
		if !registry.Exists(got.Bot1) || !registry.Exists(got.Bot2) {
			t.Errorf("picked unregistered bots %+v", got)
		}
	}

	// The same seed draws the same pairings.
	a, _ := newPicker(nil, 7)
	b, _ := newPicker(nil, 7)
	for range 10 {
		if a.next() != b.next() {
			t.Fatal("same seed produced different pairings")
		}
	}
}

func TestPickerRejectsBadCommands(t *testing.T) {
	if _, err := newPicker([]string{"sitter", "nosuchbot"}, 1); !errors.Is(err, registry.ErrUnknownBot) {
		t.Errorf("unknown bot: err = %v, want ErrUnknownBot", err)
	}
	if _, err := newPicker([]string{"sitter"}, 1); err == nil {
		t.Error("a single bot ID should be rejected")
	}
}
