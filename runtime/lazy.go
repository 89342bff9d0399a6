package runtime

import "sync/atomic"

type resolved[T any] struct {
	value T
	err   error
}

// Lazy is a compute-once memoization cell with safe publication. The
// guarantee is deliberately weaker than sync.Once: concurrent first reads
// may each run the compute function, but exactly one result is published
// and every reader observes that fully-constructed result. Once resolved,
// a cell never recomputes, even when the resolution was an error.
type Lazy[T any] struct {
	p atomic.Pointer[resolved[T]]
}

// Resolve returns the memoized result, computing it on first access.
func (l *Lazy[T]) Resolve(compute func() (T, error)) (T, error) {
	if r := l.p.Load(); r != nil {
		return r.value, r.err
	}
	value, err := compute()
	r := &resolved[T]{value: value, err: err}
	if !l.p.CompareAndSwap(nil, r) {
		// Another reader published first; adopt its result.
		r = l.p.Load()
	}
	return r.value, r.err
}

// Resolved reports whether the cell already holds a result.
func (l *Lazy[T]) Resolved() bool { return l.p.Load() != nil }
