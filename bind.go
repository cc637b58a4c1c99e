package cascade

import (
	"fmt"
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"
)

// Dep is the untyped view of a handle used when listing explicit
// dependencies. Every Handle[T] implements it.
type Dep interface {
	depID() uint64
	depGraph() *Graph
}

// Deps collects handles of different value types into one dependency list.
func Deps(deps ...Dep) []Dep { return deps }

// Unit is the value type of effect handles.
type Unit struct{}

// Option configures a node at construction.
type Option func(n *node)

// WithName sets the node's diagnostic name.
func WithName(name string) Option {
	return func(n *node) { n.name = name }
}

// WithTrigger sets the node's trigger policy. Defaults to Always.
func WithTrigger(t Trigger) Option {
	return func(n *node) { n.trigger = t }
}

// WithInvalidate sets what happens when the last handle to the node is
// released. Defaults to DirectClose.
func WithInvalidate(s Invalidate) Option {
	return func(n *node) { n.invalidate = s }
}

func setEq[T any](n *node, eq func(a, b T) bool) {
	if eq == nil {
		return
	}
	n.eq = func(a, b any) bool {
		av, aok := a.(T)
		bv, bok := b.(T)
		return aok && bok && eq(av, bv)
	}
}

// Source registers a writable value cell.
func Source[T comparable](g *Graph, value T, opts ...Option) Handle[T] {
	return SourceWith(g, value, func(a, b T) bool { return a == b }, opts...)
}

// SourceWith registers a writable value cell with an explicit equality
// relation; pass nil to make every write count as a change.
func SourceWith[T any](g *Graph, value T, eq func(a, b T) bool, opts ...Option) Handle[T] {
	n := g.register(KindComputed)
	setEq(n, eq)
	for _, o := range opts {
		o(n)
	}
	n.commit(value)
	g.bindFieldOwner(n, any(value))
	return Handle[T]{g: g, id: n.id}
}

// Computed registers an auto-tracked expression: every handle read during fn
// becomes a dependency, re-collected on each recompute. The expression runs
// once eagerly before Computed returns.
func Computed[T comparable](g *Graph, fn func() T, opts ...Option) (Handle[T], error) {
	return ComputedWith(g, func(a, b T) bool { return a == b }, fn, opts...)
}

// ComputedWith is Computed for value types without a built-in equality;
// pass a nil eq to make every recompute count as a change.
func ComputedWith[T any](g *Graph, eq func(a, b T) bool, fn func() T, opts ...Option) (Handle[T], error) {
	n := g.register(KindComputed)
	setEq(n, eq)
	for _, o := range opts {
		o(n)
	}
	if err := g.bindTracked(n, func() any { return fn() }); err != nil {
		g.discard(n)
		return Handle[T]{}, err
	}
	return Handle[T]{g: g, id: n.id}, nil
}

// Calc registers an expression over an explicit, ordered dependency list.
// Arguments arrive in list order; the expression runs once eagerly.
func Calc[T comparable](g *Graph, deps []Dep, fn func(args ...any) T, opts ...Option) (Handle[T], error) {
	return CalcWith(g, func(a, b T) bool { return a == b }, deps, fn, opts...)
}

// CalcWith is Calc with an explicit equality relation.
func CalcWith[T any](g *Graph, eq func(a, b T) bool, deps []Dep, fn func(args ...any) T, opts ...Option) (Handle[T], error) {
	n := g.register(KindComputed)
	setEq(n, eq)
	for _, o := range opts {
		o(n)
	}
	if err := g.bindExpr(n, deps, func(args []any) any { return fn(args...) }); err != nil {
		g.discard(n)
		return Handle[T]{}, err
	}
	return Handle[T]{g: g, id: n.id}, nil
}

// Effect registers a side effect over an explicit dependency list. It runs
// once eagerly, then again whenever a dependency's cascade reaches it.
// Nothing may depend on it.
func Effect(g *Graph, deps []Dep, fn func(args ...any), opts ...Option) (Handle[Unit], error) {
	n := g.register(KindEffect)
	for _, o := range opts {
		o(n)
	}
	if err := g.bindExpr(n, deps, func(args []any) any {
		fn(args...)
		return nil
	}); err != nil {
		g.discard(n)
		return Handle[Unit]{}, err
	}
	return Handle[Unit]{g: g, id: n.id}, nil
}

// Observe registers an auto-tracked side effect.
func Observe(g *Graph, fn func(), opts ...Option) (Handle[Unit], error) {
	n := g.register(KindEffect)
	for _, o := range opts {
		o(n)
	}
	if err := g.bindTracked(n, func() any {
		fn()
		return nil
	}); err != nil {
		g.discard(n)
		return Handle[Unit]{}, err
	}
	return Handle[Unit]{g: g, id: n.id}, nil
}

// discard undoes a registration whose initial bind failed, so no half-bound
// node outlives the constructor.
func (g *Graph) discard(n *node) {
	g.clearEdges(n)
	delete(g.nodes, n.id)
	g.refreshTopology()
}

// bindExpr wires n to deps and installs the expression. Arguments are read
// from the dependency cells, or re-evaluated fresh when n sits below a
// diamond being resolved, so a deferred node never sees a stale input.
func (g *Graph) bindExpr(n *node, deps []Dep, apply func(args []any) any) error {
	depIDs := make([]uint64, len(deps))
	for i, d := range deps {
		depIDs[i] = d.depID()
	}
	for _, id := range depIDs {
		d, err := g.lookup(id)
		if err != nil {
			return err
		}
		if d.kind != KindEffect && !d.hasValue {
			return fmt.Errorf("%w: dependency %s has never evaluated", ErrUninitialized, d.displayName())
		}
	}
	if err := g.bindEdges(n, depIDs); err != nil {
		return err
	}
	eval := func() any {
		args := make([]any, len(depIDs))
		for i, id := range depIDs {
			d, ok := g.nodes[id]
			if !ok {
				continue
			}
			if n.repeatDependent {
				args[i] = g.freshValue(d)
			} else {
				args[i] = d.value
			}
		}
		return apply(args)
	}
	return g.installExpr(n, eval, eval)
}

// bindTracked evaluates run under a tracking frame, wires the handles it
// read as dependencies, and installs a recompute that re-collects the edge
// set every time.
func (g *Graph) bindTracked(n *node, run func() any) error {
	eval := func() (any, []uint64) {
		f := g.pushTracking(n)
		defer g.popTracking(f)
		return run(), f.seen
	}
	v, seen := eval()
	if err := g.bindEdges(n, seen); err != nil {
		return err
	}
	compute := func() any {
		v, seen := eval()
		if !g.sameDeps(n, seen) {
			// structural failure mid-cascade leaves the node edge-less
			_ = g.bindEdges(n, seen)
		}
		return v
	}
	return g.finishBind(n, v, compute, func() any { return run() })
}

func (g *Graph) installExpr(n *node, compute, fresh func() any) error {
	return g.finishBind(n, compute(), compute, fresh)
}

// finishBind commits the eager evaluation result. A rebind that produces a
// value of a different type than the node has held fails, leaving the node
// edge-less but its last value intact.
func (g *Graph) finishBind(n *node, v any, compute, fresh func() any) error {
	if n.kind != KindEffect && n.vtype != nil && v != nil && reflect.TypeOf(v) != n.vtype {
		g.clearEdges(n)
		g.refreshTopology()
		return typeMismatchErr(n.displayName(), n.vtype, reflect.TypeOf(v))
	}
	n.compute = compute
	n.fresh = fresh
	if n.kind != KindEffect {
		n.commit(v)
	}
	return nil
}

func (g *Graph) sameDeps(n *node, ids []uint64) bool {
	if n.deps.Cardinality() != len(ids) {
		return false
	}
	for _, id := range ids {
		if !n.deps.Contains(id) {
			return false
		}
	}
	return true
}

// trackingFrame records the handles read during one auto-tracked
// evaluation. Frames nest when a tracked recompute pulls another one.
type trackingFrame struct {
	owner   *node
	seen    []uint64
	seenSet mapset.Set[uint64]
	prev    *trackingFrame
}

func (g *Graph) pushTracking(n *node) *trackingFrame {
	f := &trackingFrame{
		owner:   n,
		seenSet: mapset.NewThreadUnsafeSet[uint64](),
		prev:    g.tracking,
	}
	g.tracking = f
	return f
}

func (g *Graph) popTracking(f *trackingFrame) {
	g.tracking = f.prev
}

// recordRead notes a handle read in the active tracking frame, if any.
// Fields link through their owners rather than through direct reads, and a
// node never tracks itself.
func (g *Graph) recordRead(n *node) {
	f := g.tracking
	if f == nil || n.kind == KindField || f.owner == nil || f.owner.id == n.id {
		return
	}
	if f.seenSet.Add(n.id) {
		f.seen = append(f.seen, n.id)
	}
}
