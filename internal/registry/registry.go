// Package registry provides a global registry for game factories.
// Games register themselves in init() functions so the CLI and the SSH
// server can look them up by id without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/colortap/internal/core"
)

// Game is the interface the terminal platform drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and drawing the screen buffer.
type Game interface {
	// ID returns a unique identifier, used on the command line and in
	// stored runs.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a fresh session. The RuntimeConfig provides screen
	// dimensions, the tick rate and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the game clock by one
	// fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns score, level and the game over / paused flags.
	State() core.GameState
}

// Resizer is implemented by games that can relayout without a Reset.
type Resizer interface {
	Resize(w, h int)
}

// TileLocator is implemented by games with clickable regions.
type TileLocator interface {
	TileAt(x, y int) (int, bool)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
