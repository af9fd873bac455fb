// Package registry provides a global catalogue of Klondike rule variants.
// Variants register themselves in init() functions, so the CLI, the TUI and
// the SSH server can offer them without hardcoding each one.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-klondike/internal/klondike"
)

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID    string
	Title string
}

// Factory creates the rules for a new game.
type Factory func() klondike.Variant

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, VariantInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Variant returns the rules registered under id.
func Variant(id string) (klondike.Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}
	return e.factory(), nil
}

// Create returns a new unstarted game for the variant. A non-nil seed makes
// the shuffle reproducible.
func Create(id string, seed *uint64) (*klondike.Game, error) {
	v, err := Variant(id)
	if err != nil {
		return nil, err
	}
	if seed != nil {
		return klondike.NewSeeded(v, *seed), nil
	}
	return klondike.New(v), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

func init() {
	Register("basic", "Klondike", func() klondike.Variant { return klondike.Basic{} })
	Register("whitehead", "Whitehead", func() klondike.Variant { return klondike.Whitehead{} })
}
