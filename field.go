package cascade

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// FieldOwner is the identity a struct's field cells register under. A copy
// of the struct must be built through its constructor so the copy's fields
// register under a fresh owner; Go has no copy hooks to do it implicitly.
type FieldOwner struct {
	g  *Graph
	id uint64
}

// FieldBearer is implemented by structs that embed *FieldOwner. Wrapping
// such a value in a Source links every registered field into the source
// node, so field writes propagate through it.
type FieldBearer interface {
	fieldOwner() *FieldOwner
}

func (o *FieldOwner) fieldOwner() *FieldOwner { return o }

var ownerSeq atomic.Uint64

// Owner tokens are hashed so they are never confusable with node ids in
// diagnostics or index dumps.
func newOwnerToken() uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], ownerSeq.Add(1))
	return xxhash.Sum64(b[:])
}

// NewFieldOwner registers a fresh owner identity with the graph's field
// index.
func NewFieldOwner(g *Graph) *FieldOwner {
	o := &FieldOwner{g: g, id: newOwnerToken()}
	g.fields.ensure(o.id)
	return o
}

// Close unregisters the owner and closes every field registered under it,
// cascading through their observers.
func (o *FieldOwner) Close() {
	o.g.fields.unregister(o.g, o.id)
}

// Field registers a writable cell under an owner. Its lifetime follows the
// owner: releasing the last handle keeps the cell alive while the owner is
// registered.
func Field[T comparable](o *FieldOwner, value T, opts ...Option) Handle[T] {
	g := o.g
	n := g.register(KindField)
	setEq(n, func(a, b T) bool { return a == b })
	n.invalidate = FieldOwnerClose
	n.owner = o.id
	for _, opt := range opts {
		opt(n)
	}
	n.commit(value)
	g.fields.add(o.id, n.id)
	return Handle[T]{g: g, id: n.id}
}

// bindFieldOwner links every field registered under value's owner into the
// source node n, so a field write notifies n and everything observing it.
func (g *Graph) bindFieldOwner(n *node, value any) {
	fb, ok := value.(FieldBearer)
	if !ok || fb.fieldOwner() == nil {
		return
	}
	bucket, ok := g.fields.bucket(fb.fieldOwner().id)
	if !ok {
		return
	}
	for id := range bucket.Iter() {
		if f, ok := g.nodes[id]; ok && !n.deps.Contains(id) {
			g.addEdge(n, f)
		}
	}
	g.refreshTopology()
}

// fieldIndex maps owner tokens to the field nodes registered under them.
type fieldIndex struct {
	buckets map[uint64]mapset.Set[uint64]
}

func newFieldIndex() *fieldIndex {
	return &fieldIndex{buckets: map[uint64]mapset.Set[uint64]{}}
}

func (fi *fieldIndex) ensure(owner uint64) {
	if _, ok := fi.buckets[owner]; !ok {
		fi.buckets[owner] = mapset.NewThreadUnsafeSet[uint64]()
	}
}

func (fi *fieldIndex) add(owner, id uint64) {
	fi.ensure(owner)
	fi.buckets[owner].Add(id)
}

func (fi *fieldIndex) bucket(owner uint64) (mapset.Set[uint64], bool) {
	b, ok := fi.buckets[owner]
	return b, ok
}

// drop removes a closed field node from its bucket.
func (fi *fieldIndex) drop(owner, id uint64) {
	if b, ok := fi.buckets[owner]; ok {
		b.Remove(id)
	}
}

// release handles the last handle to a field going away: while the owner is
// still registered the field survives; otherwise it closes like any node.
func (fi *fieldIndex) release(g *Graph, n *node) {
	if _, ok := fi.buckets[n.owner]; ok {
		return
	}
	g.closeCascade(n)
}

// unregister removes the owner and closes everything registered under it.
func (fi *fieldIndex) unregister(g *Graph, owner uint64) {
	b, ok := fi.buckets[owner]
	if !ok {
		return
	}
	delete(fi.buckets, owner)
	for id := range b.Iter() {
		if n, ok := g.nodes[id]; ok {
			g.closeCascade(n)
		}
	}
}
