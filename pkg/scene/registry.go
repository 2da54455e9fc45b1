package scene

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/taigrr/neonwire/pkg/render"
)

// None is the effect id that means "no scene".
const None = "none"

// ErrUnknownEffect is returned for ids with no registered factory.
var ErrUnknownEffect = errors.New("unknown effect")

// Options are the per-instance knobs a factory may honour.
type Options struct {
	// Seed feeds scenes with random layouts. Zero picks a fixed default so
	// runs are reproducible.
	Seed uint64
	// ModelPath is the glTF file for the model scene.
	ModelPath string
}

// Factory builds a fresh scene instance with zeroed accumulators.
type Factory func(Options) (Scene, error)

// Entry describes a registered scene.
type Entry struct {
	ID string
	// Size is the default projection scale in pixels per model unit.
	Size float64
	Lens render.Lens
	New  Factory
}

// Registry maps effect ids to factories.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds an entry. It panics on an empty or duplicate id, or on the
// reserved "none" id, since registration happens at init time.
func (r *Registry) Register(e Entry) {
	if e.ID == "" || e.ID == None || e.New == nil {
		panic(fmt.Sprintf("scene: invalid registration %q", e.ID))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[e.ID]; dup {
		panic(fmt.Sprintf("scene: duplicate registration %q", e.ID))
	}
	r.entries[e.ID] = e
}

// Lookup returns the entry for id.
func (r *Registry) Lookup(id string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownEffect, id)
	}
	return e, nil
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

var builtin = NewRegistry()

// Default returns the registry holding every built-in scene.
func Default() *Registry {
	return builtin
}

// register is called from each scene file's init.
func register(id string, size float64, f Factory) {
	builtin.Register(Entry{ID: id, Size: size, New: f})
}

func registerLens(id string, size float64, lens render.Lens, f Factory) {
	builtin.Register(Entry{ID: id, Size: size, Lens: lens, New: f})
}

// fixed adapts a constructor that cannot fail.
func fixed(f func() Scene) Factory {
	return func(Options) (Scene, error) { return f(), nil }
}
