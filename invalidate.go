package cascade

// Invalidate decides what happens to a node when its last handle is
// released. It runs exactly once, at the moment the reference count reaches
// zero; closing a node through Close bypasses it.
type Invalidate interface {
	onUnreferenced(g *Graph, n *node)
}

// DirectClose removes the node and cascades the close through everything
// observing it. The default.
var DirectClose Invalidate = directClose{}

type directClose struct{}

func (directClose) onUnreferenced(g *Graph, n *node) {
	g.closeCascade(n)
}

// KeepCalculating leaves the node in place; it keeps recomputing as long as
// its dependencies live, even though nothing can read it directly anymore.
var KeepCalculating Invalidate = keepCalculating{}

type keepCalculating struct{}

func (keepCalculating) onUnreferenced(*Graph, *node) {}

// LastValidValue freezes the node into a constant leaf: its dependency edges
// are dropped and it never recomputes again, so downstream keeps seeing the
// last value it produced.
var LastValidValue Invalidate = lastValidValue{}

type lastValidValue struct{}

func (lastValidValue) onUnreferenced(g *Graph, n *node) {
	g.clearEdges(n)
	n.compute = nil
	n.fresh = nil
	g.refreshTopology()
}

// FieldOwnerClose ties the node's lifetime to its field owner: the field
// index decides whether the node survives the release.
var FieldOwnerClose Invalidate = fieldOwnerClose{}

type fieldOwnerClose struct{}

func (fieldOwnerClose) onUnreferenced(g *Graph, n *node) {
	g.fields.release(g, n)
}
