package runtime

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs a wrapper for a graph node. The returned value
// implements the generated interface registered under the class IRI.
type Factory func(Handle) any

// registry is the materialization table: class IRI → wrapper factory.
// Generated wrapper files register themselves here from init, which is
// what lets one wrapper materialize another without compile-time
// knowledge of its concrete type.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register installs the factory for a class IRI. Later registrations for
// the same IRI win, so regenerated code can shadow stale registrations in
// tests.
func Register(classIRI string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[classIRI] = f
}

// RegisteredClasses returns the sorted class IRIs with factories.
func RegisteredClasses() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for iri := range registry {
		out = append(out, iri)
	}
	sort.Strings(out)
	return out
}

// Materialize constructs the wrapper registered for classIRI around the
// handle.
func Materialize(classIRI string, h Handle) (any, error) {
	registryMu.RLock()
	f, ok := registry[classIRI]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnregistered, classIRI)
	}
	return f(h), nil
}

// MaterializeAs materializes and asserts the wrapper to the interface
// type the generated accessor expects.
func MaterializeAs[T any](classIRI string, h Handle) (T, error) {
	var zero T
	v, err := Materialize(classIRI, h)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("factory for %s produced %T, not the requested interface", classIRI, v)
	}
	return t, nil
}
