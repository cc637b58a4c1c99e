package cascade

import (
	"errors"
	"fmt"
)

// Structural and access errors returned by bind and handle operations.
// All are matchable with errors.Is; wrapped forms carry node names.
var (
	// ErrSelfDependency is returned when a node is bound with itself as a
	// dependency.
	ErrSelfDependency = errors.New("self dependency")

	// ErrCycleDependency is returned when adding an edge would close a cycle
	// among computed nodes.
	ErrCycleDependency = errors.New("cycle dependency")

	// ErrTypeMismatch is returned when a rebind function produces a value of
	// a different type than the node's established value type.
	ErrTypeMismatch = errors.New("return type mismatch")

	// ErrDanglingHandle is returned by any operation through a handle whose
	// node has been closed.
	ErrDanglingHandle = errors.New("dangling handle")

	// ErrUninitialized is returned when reading a node that has never been
	// evaluated, or the value of an effect node.
	ErrUninitialized = errors.New("uninitialized value")

	// ErrEffectObserved is returned when a bind lists an effect node as a
	// dependency. Effects produce no value and cannot be observed.
	ErrEffectObserved = errors.New("effect cannot be observed")

	// ErrNotSource is returned by Set on a node that has a bound expression.
	ErrNotSource = errors.New("not a source node")
)

func selfDependencyErr(name string) error {
	return fmt.Errorf("%w: node %s depends on itself", ErrSelfDependency, name)
}

func cycleErr(from, to string) error {
	return fmt.Errorf("%w: edge %s -> %s closes a cycle", ErrCycleDependency, from, to)
}

func typeMismatchErr(name string, want, got any) error {
	return fmt.Errorf("%w: node %s holds %v, got %v", ErrTypeMismatch, name, want, got)
}
