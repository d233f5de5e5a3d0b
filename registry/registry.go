package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// ErrNotRegistered is the sentinel wrapped by Load when no factory is
// registered for the requested package ID.
var ErrNotRegistered = errors.New("extension package not registered")

// Factory builds an extension's namespace value. It runs at most once per
// package ID per registry; the returned value is cached and shared by every
// subsequent successful Load.
type Factory func(ctx context.Context) (any, error)

// Registry maps package IDs to factories and memoizes the result of loading
// each one. Use New; the zero value has nil maps.
type Registry struct {
	mu        sync.Mutex
	factories map[string]Factory
	loaded    map[string]any
	inflight  map[string]*call
}

// call tracks one in-progress load so goroutines racing on the first access
// of an ID share a single factory invocation.
type call struct {
	done chan struct{}
	val  any
	err  error
}

// New creates and initializes a new, empty Registry instance.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		loaded:    make(map[string]any),
		inflight:  make(map[string]*call),
	}
}

var defaultRegistry = New()

// Default returns the process-wide registry that extension packages register
// into from their init functions.
func Default() *Registry {
	return defaultRegistry
}

// Register registers a factory on the Default registry. It is intended to be
// called from an extension package's init function.
func Register(id string, f Factory) {
	defaultRegistry.Register(id, f)
}

// Register registers a factory for a package ID.
func (r *Registry) Register(id string, f Factory) {
	if f == nil {
		panic(fmt.Sprintf("registry: nil factory for extension package '%s'", id))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: extension package '%s' already registered", id))
	}
	slog.Debug("Registering extension package.", "id", id)
	r.factories[id] = f
}

// Loaded reports whether the package ID has been successfully loaded. It
// never triggers a load.
func (r *Registry) Loaded(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.loaded[id]
	return ok
}

// IDs returns the sorted IDs of every registered package, loaded or not.
// Introspection only; it never triggers a load.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
