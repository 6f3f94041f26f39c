// Package registry provides a global registry for bot factories.
// Bots register themselves in init() functions, allowing the CLI and the
// tournament runners to discover and instantiate them without hardcoded
// dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-battlebots/internal/battle"
)

// ErrUnknownBot is returned by Create for an unregistered ID.
var ErrUnknownBot = errors.New("registry: unknown bot")

// BotInfo contains metadata about a registered bot.
type BotInfo struct {
	ID   string
	Name string
}

// Factory creates a fresh bot. Bots keep per-match state, so every match
// needs its own instance.
type Factory func() battle.Bot

var (
	factories = make(map[string]Factory)
	names     = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a bot factory to the registry.
// Typically called from a bot package's init() function.
// Panics if a bot with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: bot %q already registered", id))
	}

	factories[id] = f

	// Get the display name by creating a temporary instance
	names[id] = f().Name()
}

// List returns information about all registered bots, sorted by ID.
func List() []BotInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BotInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BotInfo{
			ID:   id,
			Name: names[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the sorted IDs of all registered bots.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}

// Create instantiates a new bot by its ID.
func Create(id string) (battle.Bot, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBot, id)
	}

	return f(), nil
}

// Exists checks if a bot with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
