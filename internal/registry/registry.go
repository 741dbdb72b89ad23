// Package registry provides a global registry of named seed patterns.
// Pattern sources register themselves in init() functions, allowing the
// platform to list and place patterns without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Pattern is a named arrangement of live cells, anchored at (0, 0).
type Pattern struct {
	// Name is the unique identifier used on the command line (e.g., "glider").
	Name string

	// Title is a human-readable name for display (e.g., "Gosper Glider Gun").
	Title string

	// Description is a one-line summary shown in listings.
	Description string

	// Cells holds the live cells relative to the pattern's top-left corner.
	Cells []life.Cell
}

// Size returns the width and height of the pattern's bounding box.
func (p Pattern) Size() (w, h int) {
	for _, c := range p.Cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

// PatternInfo contains listing metadata about a registered pattern.
type PatternInfo struct {
	Name        string
	Title       string
	Description string
	Population  int
}

var (
	patterns = make(map[string]Pattern)
	mu       sync.RWMutex
)

// Register adds a pattern to the registry.
// Panics if a pattern with the same name is already registered.
func Register(p Pattern) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := patterns[p.Name]; exists {
		panic(fmt.Sprintf("registry: pattern %q already registered", p.Name))
	}
	patterns[p.Name] = clonePattern(p)
}

// Replace adds or overwrites a pattern. Used for user pattern directories,
// which may shadow a built-in.
func Replace(p Pattern) {
	mu.Lock()
	defer mu.Unlock()

	patterns[p.Name] = clonePattern(p)
}

// List returns information about all registered patterns, sorted by name.
func List() []PatternInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PatternInfo, 0, len(patterns))
	for name, p := range patterns {
		result = append(result, PatternInfo{
			Name:        name,
			Title:       p.Title,
			Description: p.Description,
			Population:  len(p.Cells),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns a copy of the named pattern.
// Returns an error if the name is not registered.
func Get(name string) (Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("registry: unknown pattern %q", name)
	}
	return clonePattern(p), nil
}

// Exists checks if a pattern with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := patterns[name]
	return ok
}

func clonePattern(p Pattern) Pattern {
	p.Cells = append([]life.Cell(nil), p.Cells...)
	return p
}
