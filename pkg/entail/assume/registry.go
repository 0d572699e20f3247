// Package assume manages the predicate vocabulary and the ambient
// assumption state: a registry handing out one shared Predicate object per
// name, the well-known domain keys, and the mutable context of globally
// active assumptions.
package assume

import (
	"fmt"
	"sync"

	"github.com/cognicore/entail/pkg/entail/internalerr"
	"github.com/cognicore/entail/pkg/entail/prop"
)

// Registry hands out predicate singletons by name. Construction is lazy
// and idempotent: every Get for a name returns the identical pointer, so
// handler registration is stable and shared across the process. The mutex
// only guards the name map; handler lists follow the caller-serializes
// rule of the rest of the engine.
type Registry struct {
	mu    sync.Mutex
	preds map[string]*prop.Predicate
	rev   uint64
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{preds: make(map[string]*prop.Predicate)}
}

// Get returns the unique predicate for name, creating it on first access
func (r *Registry) Get(name string) *prop.Predicate {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.preds[name]; ok {
		return p
	}
	p := prop.NewPredicate(name)
	r.preds[name] = p
	r.rev++
	return p
}

// Rev reports a revision counter bumped on every vocabulary or handler
// change. Cached query results keyed on it go stale at the right time.
func (r *Registry) Rev() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rev
}

func (r *Registry) bump() {
	r.mu.Lock()
	r.rev++
	r.mu.Unlock()
}

// Lookup returns the predicate for name without creating one
func (r *Registry) Lookup(name string) (*prop.Predicate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.preds[name]
	return p, ok
}

// RegisterHandler attaches a structural handler to the named predicate,
// creating the predicate if it does not exist yet
func (r *Registry) RegisterHandler(name string, h prop.Handler) *prop.Predicate {
	p := r.Get(name)
	p.AddHandler(h)
	r.bump()
	return p
}

// RemoveHandler detaches a handler from the named predicate. Returns
// ErrNotFound when the predicate does not exist or the handler was never
// attached.
func (r *Registry) RemoveHandler(name string, h prop.Handler) error {
	p, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("remove handler: predicate %q: %w", name, internalerr.ErrNotFound)
	}
	if !p.RemoveHandler(h) {
		return fmt.Errorf("remove handler: predicate %q has no such handler: %w", name, internalerr.ErrNotFound)
	}
	r.bump()
	return nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry used when no explicit
// one is injected
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
