package etf

import (
	"github.com/katalvlaran/gid/avl"
	"github.com/katalvlaran/gid/detector"
)

type vid = detector.VertexID

// Forest is a Euler-tour forest of rooted trees over vertex identities.
type Forest struct {
	seq   *avl.Forest
	first map[vid]avl.NodeID
	last  map[vid]avl.NodeID
}

// New returns an empty Euler-tour forest.
func New() *Forest {
	return &Forest{
		seq:   avl.NewForest(),
		first: make(map[vid]avl.NodeID),
		last:  make(map[vid]avl.NodeID),
	}
}

// Has reports whether v has ever been inserted.
func (f *Forest) Has(v vid) bool {
	_, ok := f.first[v]
	return ok
}

// Insert adds v as the root of a new singleton tree. A no-op if v already
// exists.
func (f *Forest) Insert(v vid) {
	if f.Has(v) {
		return
	}
	fo := f.seq.NewSingleton(v)
	lo := f.seq.NewSingleton(v)
	f.seq.Concat(fo, lo)
	f.first[v] = fo
	f.last[v] = lo
}

// Root returns the root vertex of the tree containing v.
func (f *Forest) Root(v vid) vid {
	leftmost := f.seq.Leftmost(f.first[v])
	return f.seq.Value(leftmost)
}

// Connected reports whether u and v belong to the same tree.
func (f *Forest) Connected(u, v vid) bool {
	return f.seq.Root(f.first[u]) == f.seq.Root(f.first[v])
}

// Link attaches u's tree (u must currently be the root of its own tree, and
// u and v must be in different trees) as a new child of v, nested
// immediately inside v's subtree ahead of v's existing children.
func (f *Forest) Link(u, v vid) {
	vBefore, vAfterIncl := f.seq.SplitAfter(f.first[v])
	uTreeRoot := f.seq.Root(f.first[u])
	merged := f.seq.Concat(vBefore, uTreeRoot)
	f.seq.Concat(merged, vAfterIncl)
}

// Cut detaches u's whole subtree from its parent tree, making u the root of
// a new, separate tree. u must not already be a root.
func (f *Forest) Cut(u vid) {
	left, _ := f.seq.Split(f.first[u])
	_, afterU := f.seq.SplitAfter(f.last[u])
	f.seq.Concat(left, afterU)
}

// Members enumerates every vertex in v's whole subtree (v included) by
// walking the Euler tour between v's first and last occurrence. The
// traversal visits v first, then its children's subtrees, most recently
// linked child first (Link places a new child ahead of existing ones); each
// vertex appears twice in the underlying tour but only once in the result.
// The sequence tree is left exactly as Members found it.
func (f *Forest) Members(v vid) []vid {
	left, _ := f.seq.Split(f.first[v])
	mid, right := f.seq.SplitAfter(f.last[v])

	seen := make(map[vid]bool)
	var order []vid
	f.seq.InOrder(mid, func(val vid) {
		if !seen[val] {
			seen[val] = true
			order = append(order, val)
		}
	})

	merged := f.seq.Concat(left, mid)
	f.seq.Concat(merged, right)
	return order
}
