// Package registry provides a global registry for actor factories.
// Actor packages register themselves in init() functions, allowing the game
// to spawn actors by type without importing their concrete packages.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rogue/internal/actor"
)

// Factory builds an actor with the given identifier. It must not call
// OnCreate; Create does that once the actor is fully constructed.
type Factory func(id uuid.UUID) actor.Actor

// Info contains metadata about a registered actor type.
type Info struct {
	Type actor.Type
	Name string
}

var (
	factories = make(map[actor.Type]Factory)
	mu        sync.RWMutex
)

// Register adds an actor factory to the registry.
// Typically called from an actor package's init() function.
// Panics if a factory for the same type is already registered.
func Register(t actor.Type, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[t]; exists {
		panic(fmt.Sprintf("registry: actor type %q already registered", t))
	}

	factories[t] = f
}

// List returns information about all registered actor types, sorted by type.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for t := range factories {
		result = append(result, Info{
			Type: t,
			Name: t.String(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Type < result[j].Type
	})

	return result
}

// Create instantiates a new actor of the given type with a fresh random
// identifier and runs its OnCreate hook.
// Returns an error if the type is not registered.
func Create(t actor.Type) (actor.Actor, error) {
	mu.RLock()
	f, ok := factories[t]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown actor type %q", t)
	}

	a := f(uuid.New())
	a.OnCreate()
	return a, nil
}

// Exists checks if a factory for the given type is registered.
func Exists(t actor.Type) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[t]
	return ok
}
