package cascade

import (
	"fmt"
	"reflect"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
)

// Kind classifies a node's role in the graph.
type Kind uint8

const (
	// KindComputed covers both source cells and bound expressions; anything
	// that holds a value other nodes may depend on.
	KindComputed Kind = iota
	// KindEffect runs a side effect and produces no value.
	KindEffect
	// KindField is a value cell owned by a struct and indexed by its owner.
	KindField
)

func (k Kind) String() string {
	switch k {
	case KindComputed:
		return "computed"
	case KindEffect:
		return "effect"
	case KindField:
		return "field"
	}
	return "unknown"
}

type nodeState uint8

const (
	stateIdle nodeState = iota
	stateEvaluating
)

// node is the graph-internal representation of a reactive cell. All access
// goes through the owning Graph; handles only carry the id.
type node struct {
	id    uint64
	name  string
	kind  Kind
	state nodeState

	// value cell, absent until the first evaluation or Set.
	value    any
	hasValue bool
	vtype    reflect.Type
	// eq compares two cell values; nil means every write counts as a change.
	eq func(a, b any) bool

	// compute re-evaluates and returns the next value; nil for source cells.
	compute func() any
	// fresh evaluates without committing to the cell; nil for source cells.
	fresh func() any

	deps      mapset.Set[uint64]
	observers []uint64
	// deferred holds descendants reachable from this node along two or more
	// distinct observer paths. They fire once, after all immediate paths.
	deferred mapset.Set[uint64]
	// repeatDependent is set when one of this node's dependencies sits in
	// some upstream node's deferred set; bound expressions then read their
	// arguments through the updated accessor instead of the cell.
	repeatDependent bool

	trigger    Trigger
	invalidate Invalidate
	threshold  func() bool

	owner uint64 // field owner token, zero unless kind == KindField

	refs atomic.Int64
}

func newNode(id uint64, kind Kind) *node {
	n := &node{
		id:         id,
		kind:       kind,
		deps:       mapset.NewThreadUnsafeSet[uint64](),
		deferred:   mapset.NewThreadUnsafeSet[uint64](),
		trigger:    Always,
		invalidate: DirectClose,
	}
	n.refs.Store(1)
	return n
}

func (n *node) displayName() string {
	if n.name != "" {
		return n.name
	}
	return fmt.Sprintf("%s#%d", n.kind, n.id)
}

// commit stores a freshly computed value and reports whether it differs from
// the previous one. The first commit always counts as a change.
func (n *node) commit(v any) (changed bool) {
	changed = !n.hasValue || n.eq == nil || !n.eq(n.value, v)
	n.value = v
	n.hasValue = true
	if n.vtype == nil && v != nil {
		n.vtype = reflect.TypeOf(v)
	}
	return changed
}
