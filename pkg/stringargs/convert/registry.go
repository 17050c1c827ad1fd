package convert

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/randalmurphal/stringargs/pkg/stringargs/template"
)

// ErrUnknownConverter is returned by Lookup for unregistered names.
var ErrUnknownConverter = errors.New("unknown converter")

// Registry is a thread-safe set of converters indexed by name.
// It uses sync.RWMutex since lookups far outnumber registrations.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]template.Converter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]template.Converter),
	}
}

// Register adds or replaces the converter for name.
func (r *Registry) Register(name string, fn template.Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = fn
}

// Lookup returns the converter for name.
func (r *Registry) Lookup(name string) (template.Converter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConverter, name)
	}
	return fn, nil
}

// Has returns true if name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the shared registry holding text, json, yaml and quote.
// Converters registered on it are visible to every caller.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		defaultRegistry.Register("text", Text)
		defaultRegistry.Register("json", JSON)
		defaultRegistry.Register("yaml", YAML)
		defaultRegistry.Register("quote", Quote)
	})
	return defaultRegistry
}
