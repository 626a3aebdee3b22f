package body

import (
	"sort"
	"sync"
)

// DefaultSafeDistanceFactor is the multiple of a body's radius used as the
// camera's minimum safe viewing distance when locked onto it.
const DefaultSafeDistanceFactor = 3.0

// Registry maps body identifiers to their capability handles. It is shared
// by reference between the animation scheduler (which drives placement) and
// the camera rig (which resolves lock targets), so dynamic registration needs
// no ambient global state.
//
// The safe viewing distance for each body is derived once at registration
// (radius × factor) and removed with the body; reads are lock-free for the
// frame loop beyond an RWMutex.
type Registry struct {
	mu sync.RWMutex

	safeDistanceFactor float32

	bodies        map[string]Body
	safeDistances map[string]float32
}

// NewRegistry creates an empty Registry.
//
// Parameters:
//   - options: functional options to configure the registry
//
// Returns:
//   - *Registry: the newly created registry
func NewRegistry(options ...RegistryOption) *Registry {
	r := &Registry{
		safeDistanceFactor: DefaultSafeDistanceFactor,
		bodies:             make(map[string]Body),
		safeDistances:      make(map[string]float32),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// RegistryOption is a functional option for configuring a Registry.
type RegistryOption func(*Registry)

// WithSafeDistanceFactor sets the radius multiple used for minimum safe
// viewing distances. Values <= 0 fall back to the default.
//
// Parameters:
//   - factor: the radius multiple
//
// Returns:
//   - RegistryOption: functional option to set the factor
func WithSafeDistanceFactor(factor float32) RegistryOption {
	return func(r *Registry) {
		if factor <= 0 {
			factor = DefaultSafeDistanceFactor
		}
		r.safeDistanceFactor = factor
	}
}

// Add registers a body under the given identifier, replacing any previous
// entry, and precomputes its safe viewing distance. Nil bodies are ignored.
//
// Parameters:
//   - id: the body identifier
//   - b: the body handle
func (r *Registry) Add(id string, b Body) {
	if b == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bodies[id] = b
	r.safeDistances[id] = b.Radius() * r.safeDistanceFactor
}

// Remove deregisters the body with the given identifier. Unknown identifiers
// are a no-op.
//
// Parameters:
//   - id: the body identifier
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bodies, id)
	delete(r.safeDistances, id)
}

// Get returns the body registered under the given identifier.
//
// Parameters:
//   - id: the body identifier
//
// Returns:
//   - Body: the body handle, or nil
//   - bool: true if the identifier is registered
func (r *Registry) Get(id string) (Body, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bodies[id]
	return b, ok
}

// SafeDistance returns the precomputed minimum safe viewing distance for the
// given body.
//
// Parameters:
//   - id: the body identifier
//
// Returns:
//   - float32: the safe distance (radius × factor)
//   - bool: true if the identifier is registered
func (r *Registry) SafeDistance(id string) (float32, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.safeDistances[id]
	return d, ok
}

// ForEach invokes fn for every registered body. Iteration order is
// unspecified. The registry lock is held for the duration, so fn must not
// call back into the registry.
//
// Parameters:
//   - fn: callback receiving each identifier and body handle
func (r *Registry) ForEach(fn func(id string, b Body)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, b := range r.bodies {
		fn(id, b)
	}
}

// IDs returns the sorted identifiers of all registered bodies.
//
// Returns:
//   - []string: sorted identifiers
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.bodies))
	for id := range r.bodies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered bodies.
//
// Returns:
//   - int: the body count
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bodies)
}
