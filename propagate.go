package cascade

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// cascadeRun carries the per-cascade suppression state down the synchronous
// depth-first walk. Nodes in suppressed were deferred by some upstream node
// and must not fire until every path reaching them has run.
type cascadeRun struct {
	suppressed mapset.Set[uint64]
	// reached marks suppressed nodes that at least one live path notified;
	// a deferred node nobody reached (every path suppressed its own
	// propagation) does not fire at all.
	reached map[uint64]bool
	// changed accumulates the strongest changed flag seen across paths.
	changed map[uint64]bool
}

func (g *Graph) startCascade(n *node, changed bool) {
	run := &cascadeRun{
		suppressed: mapset.NewThreadUnsafeSet[uint64](),
		reached:    map[uint64]bool{},
		changed:    map[uint64]bool{},
	}
	g.notify(n, changed, run)
}

// notify walks n's observers. Convergent descendants are suppressed first,
// direct observers fire depth-first (value-bearing nodes before effects),
// and the nodes deferred here fire last, in dependency order, each exactly
// once.
func (g *Graph) notify(n *node, changed bool, run *cascadeRun) {
	var deferredHere []uint64
	for id := range n.deferred.Iter() {
		if run.suppressed.Add(id) {
			deferredHere = append(deferredHere, id)
		}
	}

	for pass := 0; pass < 2; pass++ {
		for _, id := range append([]uint64(nil), n.observers...) {
			ob, ok := g.nodes[id]
			if !ok {
				continue
			}
			if (pass == 0) == (ob.kind == KindEffect) {
				continue
			}
			if run.suppressed.Contains(id) {
				run.reached[id] = true
				run.changed[id] = run.changed[id] || changed
				continue
			}
			g.fire(ob, changed, run)
		}
	}

	if len(deferredHere) == 0 {
		return
	}
	for _, id := range g.dependencyOrder(deferredHere) {
		if ob, ok := g.nodes[id]; ok && run.reached[id] {
			g.fire(ob, run.changed[id], run)
		}
		run.suppressed.Remove(id)
		delete(run.reached, id)
		delete(run.changed, id)
	}
}

// fire runs one node's trigger-check/recompute/propagate step.
func (g *Graph) fire(n *node, upstreamChanged bool, run *cascadeRun) {
	if n.state == stateEvaluating {
		return
	}
	if !n.trigger.gate(n, upstreamChanged) {
		return
	}

	selfChanged := g.evaluate(n)
	if n.kind == KindEffect {
		return
	}
	if n.trigger.propagate(selfChanged) {
		g.notify(n, selfChanged, run)
	}
}

// evaluate runs n's expression with the reentrancy guard held. The guard
// unwinds with a defer so a panicking expression cannot leave the node stuck
// in the evaluating state.
func (g *Graph) evaluate(n *node) (selfChanged bool) {
	n.state = stateEvaluating
	defer func() { n.state = stateIdle }()
	if n.kind == KindEffect {
		if n.compute != nil {
			n.compute()
		}
		return false
	}
	if n.compute == nil {
		return true
	}
	return n.commit(n.compute())
}

// freshValue evaluates n's expression without committing to the cell;
// source cells just report their current value.
func (g *Graph) freshValue(n *node) any {
	if n.fresh != nil {
		return n.fresh()
	}
	return n.value
}

// dependencyOrder sorts ids so that a node comes after every other member of
// ids it transitively depends on.
func (g *Graph) dependencyOrder(ids []uint64) []uint64 {
	if len(ids) < 2 {
		return ids
	}
	subset := mapset.NewThreadUnsafeSet[uint64](ids...)
	rank := make(map[uint64]int, len(ids))
	for _, id := range ids {
		anc := mapset.NewThreadUnsafeSet[uint64]()
		g.ancestors(id, anc)
		r := 0
		for a := range anc.Iter() {
			if subset.Contains(a) {
				r++
			}
		}
		rank[id] = r
	}
	out := append([]uint64(nil), ids...)
	sort.Slice(out, func(i, j int) bool {
		if rank[out[i]] != rank[out[j]] {
			return rank[out[i]] < rank[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

// ancestors collects the transitive dependency closure of id into out.
func (g *Graph) ancestors(id uint64, out mapset.Set[uint64]) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	for dep := range n.deps.Iter() {
		if out.Add(dep) {
			g.ancestors(dep, out)
		}
	}
}
