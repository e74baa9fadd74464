package avl

import "github.com/katalvlaran/gid/detector"

// NodeID addresses a node within a Forest's arena. Nil is the empty subtree.
type NodeID int32

// Nil is the empty-subtree / absent-node sentinel.
const Nil NodeID = -1

type node struct {
	left, right, parent NodeID
	height              int32
	size                int32
	value               detector.VertexID
}

// Forest is an arena of AVL nodes, each belonging to exactly one of many
// independent trees. Node handles remain valid across Split/Concat calls;
// only the tree a handle belongs to, and its position within that tree, can
// change.
type Forest struct {
	nodes []node
}

// NewForest returns an empty arena.
func NewForest() *Forest {
	return &Forest{}
}

// NewSingleton allocates a new one-node tree holding value and returns its handle.
func (f *Forest) NewSingleton(value detector.VertexID) NodeID {
	id := NodeID(len(f.nodes))
	f.nodes = append(f.nodes, node{left: Nil, right: Nil, parent: Nil, height: 1, size: 1, value: value})
	return id
}

// Value returns the payload stored at x.
func (f *Forest) Value(x NodeID) detector.VertexID {
	return f.nodes[x].value
}

// Root walks x's parent chain to the root of its tree.
func (f *Forest) Root(x NodeID) NodeID {
	for f.nodes[x].parent != Nil {
		x = f.nodes[x].parent
	}
	return x
}

// Parent returns x's parent, or Nil if x is a root.
func (f *Forest) Parent(x NodeID) NodeID {
	return f.nodes[x].parent
}

// Size returns the number of nodes in x's whole tree.
func (f *Forest) Size(x NodeID) int {
	return int(f.nodes[f.Root(x)].size)
}

// Position returns x's 0-based in-order rank within its own tree.
func (f *Forest) Position(x NodeID) int {
	rank := f.size(f.nodes[x].left)
	cur := x
	parent := f.nodes[x].parent
	for parent != Nil {
		if f.nodes[parent].right == cur {
			rank += f.size(f.nodes[parent].left) + 1
		}
		cur = parent
		parent = f.nodes[parent].parent
	}
	return rank
}

// Split splits x's tree into (left, right): left holds every node that
// precedes x in-order, right holds x together with every node that follows
// it. Either half may come back as Nil if empty.
func (f *Forest) Split(x NodeID) (left, right NodeID) {
	left = f.nodes[x].left
	right = x
	f.setLeft(x, Nil)
	f.updateAugment(x)

	parent := f.nodes[x].parent
	prevChild := x
	for parent != Nil {
		gp := f.nodes[parent].parent
		if f.nodes[parent].right == prevChild {
			left = f.join(f.nodes[parent].left, parent, left)
		} else {
			right = f.join(right, parent, f.nodes[parent].right)
		}
		prevChild = parent
		parent = gp
	}
	f.setParent(left, Nil)
	f.setParent(right, Nil)
	return left, right
}

// SplitAfter splits x's tree into (left, right): left holds x together with
// every node that precedes it in-order, right holds every node that
// follows it.
func (f *Forest) SplitAfter(x NodeID) (left, right NodeID) {
	right = f.nodes[x].right
	left = x
	f.setRight(x, Nil)
	f.updateAugment(x)

	parent := f.nodes[x].parent
	prevChild := x
	for parent != Nil {
		gp := f.nodes[parent].parent
		if f.nodes[parent].left == prevChild {
			right = f.join(right, parent, f.nodes[parent].right)
		} else {
			left = f.join(f.nodes[parent].left, parent, left)
		}
		prevChild = parent
		parent = gp
	}
	f.setParent(left, Nil)
	f.setParent(right, Nil)
	return left, right
}

// Leftmost returns the first-in-order node of x's whole tree.
func (f *Forest) Leftmost(x NodeID) NodeID {
	r := f.Root(x)
	for f.nodes[r].left != Nil {
		r = f.nodes[r].left
	}
	return r
}

// InOrder visits every node of x's whole tree in ascending position order.
func (f *Forest) InOrder(x NodeID, visit func(detector.VertexID)) {
	if x == Nil {
		return
	}
	f.inOrder(f.Root(x), visit)
}

func (f *Forest) inOrder(x NodeID, visit func(detector.VertexID)) {
	if x == Nil {
		return
	}
	f.inOrder(f.nodes[x].left, visit)
	visit(f.nodes[x].value)
	f.inOrder(f.nodes[x].right, visit)
}

// Concat joins left entirely before right into a single tree and returns
// its root. Either argument may be Nil.
func (f *Forest) Concat(left, right NodeID) NodeID {
	if left == Nil {
		f.setParent(right, Nil)
		return right
	}
	if right == Nil {
		f.setParent(left, Nil)
		return left
	}
	k, rest := f.popRightmost(left)
	root := f.join(rest, k, right)
	f.setParent(root, Nil)
	return root
}

// popRightmost removes the rightmost node of tree t and returns it (as a
// bare singleton) together with the root of what remains.
func (f *Forest) popRightmost(t NodeID) (k, rest NodeID) {
	cur := t
	for f.nodes[cur].right != Nil {
		cur = f.nodes[cur].right
	}
	k = cur
	rest = f.nodes[cur].left

	parent := f.nodes[cur].parent
	for parent != Nil {
		gp := f.nodes[parent].parent
		rest = f.join(f.nodes[parent].left, parent, rest)
		parent = gp
	}

	f.nodes[k].left, f.nodes[k].right, f.nodes[k].parent = Nil, Nil, Nil
	f.updateAugment(k)
	return k, rest
}

// --- join-based balancing -------------------------------------------------

// join combines left, k and right (in that in-order) into one balanced
// tree, assuming every node in left precedes k and every node in right
// follows it. k is reused as a bare node; its previous children are
// discarded.
func (f *Forest) join(l, k, r NodeID) NodeID {
	hl, hr := f.height(l), f.height(r)
	switch {
	case hl > hr+1:
		newRight := f.join(f.nodes[l].right, k, r)
		f.setRight(l, newRight)
		f.setParent(newRight, l)
		f.updateAugment(l)
		return f.rebalance(l)
	case hr > hl+1:
		newLeft := f.join(l, k, f.nodes[r].left)
		f.setLeft(r, newLeft)
		f.setParent(newLeft, r)
		f.updateAugment(r)
		return f.rebalance(r)
	default:
		f.setLeft(k, l)
		f.setRight(k, r)
		f.setParent(l, k)
		f.setParent(r, k)
		f.updateAugment(k)
		return k
	}
}

func (f *Forest) rebalance(x NodeID) NodeID {
	bf := f.height(f.nodes[x].left) - f.height(f.nodes[x].right)
	switch {
	case bf > 1:
		if f.height(f.nodes[f.nodes[x].left].left) < f.height(f.nodes[f.nodes[x].left].right) {
			f.setLeftRotated(x, f.rotateLeft(f.nodes[x].left))
		}
		return f.rotateRight(x)
	case bf < -1:
		if f.height(f.nodes[f.nodes[x].right].right) < f.height(f.nodes[f.nodes[x].right].left) {
			f.setRightRotated(x, f.rotateRight(f.nodes[x].right))
		}
		return f.rotateLeft(x)
	default:
		return x
	}
}

func (f *Forest) rotateLeft(x NodeID) NodeID {
	y := f.nodes[x].right
	f.setRight(x, f.nodes[y].left)
	if f.nodes[y].left != Nil {
		f.setParent(f.nodes[y].left, x)
	}
	f.setLeft(y, x)
	f.setParent(x, y)
	f.updateAugment(x)
	f.updateAugment(y)
	return y
}

func (f *Forest) rotateRight(x NodeID) NodeID {
	y := f.nodes[x].left
	f.setLeft(x, f.nodes[y].right)
	if f.nodes[y].right != Nil {
		f.setParent(f.nodes[y].right, x)
	}
	f.setRight(y, x)
	f.setParent(x, y)
	f.updateAugment(x)
	f.updateAugment(y)
	return y
}

// --- small field helpers ---------------------------------------------------

func (f *Forest) setLeft(x, child NodeID) {
	if x == Nil {
		return
	}
	f.nodes[x].left = child
}

func (f *Forest) setRight(x, child NodeID) {
	if x == Nil {
		return
	}
	f.nodes[x].right = child
}

// setLeftRotated/setRightRotated assign a rotated child back without
// touching the parent pointer of x itself (rebalance's caller owns that).
func (f *Forest) setLeftRotated(x, child NodeID) {
	f.nodes[x].left = child
	f.setParent(child, x)
}

func (f *Forest) setRightRotated(x, child NodeID) {
	f.nodes[x].right = child
	f.setParent(child, x)
}

func (f *Forest) setParent(x, parent NodeID) {
	if x == Nil {
		return
	}
	f.nodes[x].parent = parent
}

func (f *Forest) height(x NodeID) int32 {
	if x == Nil {
		return 0
	}
	return f.nodes[x].height
}

func (f *Forest) size(x NodeID) int {
	if x == Nil {
		return 0
	}
	return int(f.nodes[x].size)
}

func (f *Forest) updateAugment(x NodeID) {
	if x == Nil {
		return
	}
	l, r := f.nodes[x].left, f.nodes[x].right
	hl, hr := f.height(l), f.height(r)
	if hl > hr {
		f.nodes[x].height = hl + 1
	} else {
		f.nodes[x].height = hr + 1
	}
	f.nodes[x].size = int32(f.size(l) + f.size(r) + 1)
}
