package cascade

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Graph owns every node and all edges between them. Structure mutation and
// cascades are synchronous and single-writer; handles into different graphs
// never share state.
type Graph struct {
	nextID uint64
	nodes  map[uint64]*node
	fields *fieldIndex

	// tracking is the active auto-tracking frame, nil outside a tracked
	// evaluation.
	tracking *trackingFrame
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:  map[uint64]*node{},
		fields: newFieldIndex(),
	}
}

// Len reports how many nodes are currently registered.
func (g *Graph) Len() int {
	return len(g.nodes)
}

func (g *Graph) register(kind Kind) *node {
	g.nextID++
	n := newNode(g.nextID, kind)
	g.nodes[n.id] = n
	return n
}

func (g *Graph) lookup(id uint64) (*node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrDanglingHandle
	}
	return n, nil
}

// bindEdges replaces n's dependency set with depIDs. Validation is
// all-or-nothing: on any failure every edge added so far is rolled back and
// n ends with no dependencies at all.
func (g *Graph) bindEdges(n *node, depIDs []uint64) error {
	g.clearEdges(n)
	err := func() error {
		for _, id := range depIDs {
			if id == n.id {
				return selfDependencyErr(n.displayName())
			}
			d, ok := g.nodes[id]
			if !ok {
				return ErrDanglingHandle
			}
			if d.kind == KindEffect {
				return ErrEffectObserved
			}
			if n.deps.Contains(id) {
				continue
			}
			g.addEdge(n, d)
			if n.kind == KindComputed && g.hasCycle(n, d) {
				return cycleErr(n.displayName(), d.displayName())
			}
		}
		return nil
	}()
	if err != nil {
		g.clearEdges(n)
	}
	g.refreshTopology()
	return err
}

func (g *Graph) addEdge(n, dep *node) {
	n.deps.Add(dep.id)
	dep.observers = append(dep.observers, n.id)
}

func (g *Graph) removeEdge(n, dep *node) {
	n.deps.Remove(dep.id)
	for i, id := range dep.observers {
		if id == n.id {
			dep.observers = append(dep.observers[:i], dep.observers[i+1:]...)
			break
		}
	}
}

func (g *Graph) clearEdges(n *node) {
	for _, id := range n.deps.ToSlice() {
		if d, ok := g.nodes[id]; ok {
			g.removeEdge(n, d)
		} else {
			n.deps.Remove(id)
		}
	}
}

// hasCycle runs a depth-first walk over dependency edges with the candidate
// edge n -> dep already in place. The edge closes a cycle exactly when dep
// transitively depends on n.
func (g *Graph) hasCycle(n, dep *node) bool {
	visited := mapset.NewThreadUnsafeSet[uint64]()
	var walk func(cur *node) bool
	walk = func(cur *node) bool {
		if cur.id == n.id {
			return true
		}
		if !visited.Add(cur.id) {
			return false
		}
		for _, id := range cur.deps.ToSlice() {
			if d, ok := g.nodes[id]; ok && walk(d) {
				return true
			}
		}
		return false
	}
	return walk(dep)
}

// reachFrom returns every node reachable from id along observer edges,
// including id itself.
func (g *Graph) reachFrom(id uint64, out mapset.Set[uint64]) {
	if !out.Add(id) {
		return
	}
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	for _, ob := range n.observers {
		g.reachFrom(ob, out)
	}
}

// refreshTopology recomputes every deferral set and repeat-dependent flag.
// A descendant counted by two or more of a node's direct observer subtrees
// is reachable along two or more distinct paths and goes into that node's
// deferral set.
func (g *Graph) refreshTopology() {
	for _, n := range g.nodes {
		n.deferred = mapset.NewThreadUnsafeSet[uint64]()
		if len(n.observers) < 2 {
			continue
		}
		counts := map[uint64]int{}
		for _, ob := range n.observers {
			reach := mapset.NewThreadUnsafeSet[uint64]()
			g.reachFrom(ob, reach)
			for id := range reach.Iter() {
				counts[id]++
			}
		}
		for id, c := range counts {
			if c >= 2 {
				n.deferred.Add(id)
			}
		}
	}
	convergent := mapset.NewThreadUnsafeSet[uint64]()
	for _, n := range g.nodes {
		for id := range n.deferred.Iter() {
			convergent.Add(id)
		}
	}
	for _, n := range g.nodes {
		n.repeatDependent = false
		for _, id := range n.deps.ToSlice() {
			if convergent.Contains(id) {
				n.repeatDependent = true
				break
			}
		}
	}
}

// closeCascade removes n and, recursively, everything observing it. Observers
// go first so that a node is never removed while something still points at
// it; the visited set keeps diamonds from being walked twice.
func (g *Graph) closeCascade(n *node) {
	visited := mapset.NewThreadUnsafeSet[uint64]()
	g.closeRec(n, visited)
	g.refreshTopology()
}

func (g *Graph) closeRec(n *node, visited mapset.Set[uint64]) {
	if !visited.Add(n.id) {
		return
	}
	for _, id := range append([]uint64(nil), n.observers...) {
		if ob, ok := g.nodes[id]; ok {
			g.closeRec(ob, visited)
		}
	}
	for _, id := range n.deps.ToSlice() {
		if d, ok := g.nodes[id]; ok {
			g.removeEdge(n, d)
		}
	}
	if n.kind == KindField {
		g.fields.drop(n.owner, n.id)
	}
	delete(g.nodes, n.id)
}
