package cascade

import "fmt"

// Handle is a counted reference to a node. Handles are small values meant to
// be copied; Clone and Release manage the node's reference count, and the
// node's invalidation strategy runs when the count reaches zero. A handle
// whose node has been closed fails every operation with ErrDanglingHandle.
type Handle[T any] struct {
	g  *Graph
	id uint64
}

func (h Handle[T]) depID() uint64    { return h.id }
func (h Handle[T]) depGraph() *Graph { return h.g }

func (h Handle[T]) node() (*node, error) {
	if h.g == nil {
		return nil, ErrDanglingHandle
	}
	return h.g.lookup(h.id)
}

// Alive reports whether the node is still registered.
func (h Handle[T]) Alive() bool {
	n, err := h.node()
	return err == nil && n != nil
}

// Get reads the current value. Inside an auto-tracked evaluation the read
// also registers this node as a dependency.
func (h Handle[T]) Get() (T, error) {
	var zero T
	n, err := h.node()
	if err != nil {
		return zero, err
	}
	h.g.recordRead(n)
	if n.kind == KindEffect {
		return zero, fmt.Errorf("%w: %s produces no value", ErrUninitialized, n.displayName())
	}
	if !n.hasValue {
		return zero, fmt.Errorf("%w: %s has never evaluated", ErrUninitialized, n.displayName())
	}
	// a committed nil reads as the zero value, so any-typed cells may hold nil
	v, ok := n.value.(T)
	if !ok && n.value != nil {
		return zero, typeMismatchErr(n.displayName(), n.vtype, n.value)
	}
	return v, nil
}

// Value is Get without the error return; it panics on a dangling handle or
// an uninitialized cell.
func (h Handle[T]) Value() T {
	v, err := h.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// GetUpdated re-evaluates the node's expression and returns the result
// without committing it to the cell. Source cells report their current
// value.
func (h Handle[T]) GetUpdated() (T, error) {
	var zero T
	n, err := h.node()
	if err != nil {
		return zero, err
	}
	if n.kind == KindEffect {
		return zero, fmt.Errorf("%w: %s produces no value", ErrUninitialized, n.displayName())
	}
	if !n.hasValue {
		return zero, fmt.Errorf("%w: %s has never evaluated", ErrUninitialized, n.displayName())
	}
	fv := h.g.freshValue(n)
	v, ok := fv.(T)
	if !ok && fv != nil {
		return zero, typeMismatchErr(n.displayName(), n.vtype, fv)
	}
	return v, nil
}

// Set writes a source or field cell and runs the cascade synchronously.
// The write always propagates; whether downstream nodes recompute on an
// unchanged value is up to their trigger policies.
func (h Handle[T]) Set(v T) error {
	n, err := h.node()
	if err != nil {
		return err
	}
	if n.compute != nil {
		return fmt.Errorf("%w: %s has a bound expression", ErrNotSource, n.displayName())
	}
	changed := n.commit(v)
	h.g.startCascade(n, changed)
	return nil
}

// Rebind replaces the node's expression and dependency list. The new
// expression evaluates once eagerly; on failure the node keeps its last
// value but ends with no dependencies at all.
func (h Handle[T]) Rebind(deps []Dep, fn func(args ...any) T) error {
	n, err := h.node()
	if err != nil {
		return err
	}
	return h.g.bindExpr(n, deps, func(args []any) any { return fn(args...) })
}

// RebindFunc replaces the node's expression with an auto-tracked one.
func (h Handle[T]) RebindFunc(fn func() T) error {
	n, err := h.node()
	if err != nil {
		return err
	}
	return h.g.bindTracked(n, func() any { return fn() })
}

// SetThreshold installs a gating predicate and switches the node to the
// threshold trigger. The predicate's dependencies join the node's edge set
// so their cascades reach it; while the predicate reports false the node
// neither recomputes nor propagates.
func (h Handle[T]) SetThreshold(deps []Dep, pred func(args ...any) bool) error {
	n, err := h.node()
	if err != nil {
		return err
	}
	depIDs := make([]uint64, len(deps))
	for i, d := range deps {
		depIDs[i] = d.depID()
	}
	merged := append([]uint64(nil), depIDs...)
	for _, id := range n.deps.ToSlice() {
		merged = append(merged, id)
	}
	if err := h.g.bindEdges(n, merged); err != nil {
		return err
	}
	n.threshold = func() bool {
		args := make([]any, len(depIDs))
		for i, id := range depIDs {
			d, ok := h.g.nodes[id]
			if !ok {
				continue
			}
			if n.repeatDependent {
				args[i] = h.g.freshValue(d)
			} else {
				args[i] = d.value
			}
		}
		return pred(args...)
	}
	n.trigger = Threshold()
	return nil
}

// Name returns the node's diagnostic name, empty if never set.
func (h Handle[T]) Name() (string, error) {
	n, err := h.node()
	if err != nil {
		return "", err
	}
	return n.name, nil
}

// SetName sets the node's diagnostic name.
func (h Handle[T]) SetName(name string) error {
	n, err := h.node()
	if err != nil {
		return err
	}
	n.name = name
	return nil
}

// Clone returns a new counted reference to the same node.
func (h Handle[T]) Clone() (Handle[T], error) {
	n, err := h.node()
	if err != nil {
		return Handle[T]{}, err
	}
	n.refs.Add(1)
	return h, nil
}

// Release drops this reference. When the last reference goes, the node's
// invalidation strategy decides its fate; release of an already-closed node
// is a no-op.
func (h Handle[T]) Release() {
	n, err := h.node()
	if err != nil {
		return
	}
	if n.refs.Add(-1) == 0 {
		n.invalidate.onUnreferenced(h.g, n)
	}
}

// Close removes the node immediately and cascades the close through every
// observer, bypassing the invalidation strategy.
func (h Handle[T]) Close() error {
	n, err := h.node()
	if err != nil {
		return err
	}
	h.g.closeCascade(n)
	return nil
}
