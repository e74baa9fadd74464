package bfgt

import (
	"github.com/katalvlaran/gid/detector"
	"github.com/katalvlaran/gid/graph"
)

type vid = detector.VertexID

// scc is the per-super-node bookkeeping, keyed by its current union-find
// root. Only entries whose key equals find(key) are live; stale entries are
// left behind after a merge and ignored.
type scc struct {
	memberCount int
	closedCount int
	terminal    bool
	live        bool
	dead        bool
	out         map[vid]int // other root (as of insertion; resolve via find() before use) -> multiplicity
}

// Detector maintains the DAG of strongly-connected components induced by the
// update stream, via union-find, and classifies whole super-nodes LIVE/DEAD.
type Detector struct {
	g      *graph.Graph
	parent map[vid]vid
	rank   map[vid]int
	level  map[vid]int
	scc    map[vid]*scc
}

// New returns an empty bfgt Detector.
func New() *Detector {
	return &Detector{
		g:      graph.NewGraph(),
		parent: make(map[vid]vid),
		rank:   make(map[vid]int),
		level:  make(map[vid]int),
		scc:    make(map[vid]*scc),
	}
}

var _ detector.Detector = (*Detector)(nil)

// --- union-find -------------------------------------------------------

func (d *Detector) find(v vid) vid {
	if _, ok := d.parent[v]; !ok {
		d.parent[v] = v
		d.rank[v] = 0
		d.level[v] = 0
		d.scc[v] = &scc{memberCount: 1, out: make(map[vid]int)}
		return v
	}
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[v] != root {
		next := d.parent[v]
		d.parent[v] = root
		v = next
	}
	return root
}

// union merges the super-nodes rooted at a and b (which must already be
// roots) into one, folding member/closed counts, terminal flag and outgoing
// edges together, and returns the new root.
func (d *Detector) union(a, b vid) vid {
	if a == b {
		return a
	}
	if d.rank[a] < d.rank[b] {
		a, b = b, a
	}
	d.parent[b] = a
	if d.rank[a] == d.rank[b] {
		d.rank[a]++
	}

	sa, sb := d.scc[a], d.scc[b]
	sa.memberCount += sb.memberCount
	sa.closedCount += sb.closedCount
	sa.terminal = sa.terminal || sb.terminal
	sa.dead = sa.dead || sb.dead // cannot both be true independently, kept for clarity
	for target, n := range sb.out {
		rt := d.find(target)
		if rt == a {
			continue // became a self-loop within the merged SCC
		}
		sa.out[rt] += n
	}
	if d.level[b] < d.level[a] {
		d.level[a] = d.level[b]
	}
	delete(d.scc, b)

	return a
}

// --- adjacency helpers --------------------------------------------------

func (d *Detector) addSuperEdge(ru, rv vid) {
	if ru == rv {
		return
	}
	d.scc[ru].out[rv]++
}

// outNeighbors returns the deduplicated, resolved out-super-neighbors of root.
func (d *Detector) outNeighbors(root vid) []vid {
	seen := make(map[vid]bool)
	var out []vid
	for target := range d.scc[root].out {
		rt := d.find(target)
		if rt == root || seen[rt] {
			continue
		}
		seen[rt] = true
		out = append(out, rt)
	}

	return out
}

// allRoots returns every distinct current super-node root.
func (d *Detector) allRoots() []vid {
	seen := make(map[vid]bool)
	var roots []vid
	for v := range d.parent {
		r := d.find(v)
		if !seen[r] {
			seen[r] = true
			roots = append(roots, r)
		}
	}

	return roots
}

// inNeighbors returns every root with a resolved out-edge into root.
func (d *Detector) inNeighbors(root vid) []vid {
	var in []vid
	for _, r := range d.allRoots() {
		if r == root {
			continue
		}
		for _, t := range d.outNeighbors(r) {
			if t == root {
				in = append(in, r)
				break
			}
		}
	}

	return in
}

func (d *Detector) reaches(from, to vid) bool {
	if from == to {
		return true
	}
	seen := map[vid]bool{from: true}
	stack := []vid{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range d.outNeighbors(cur) {
			if n == to {
				return true
			}
			if !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}

	return false
}

// nodesOnPath returns the set of roots reachable from a that can also reach
// b, i.e. the roots lying on some a~>b path (a and b themselves included
// when such a path exists).
func (d *Detector) nodesOnPath(a, b vid) map[vid]bool {
	forward := map[vid]bool{a: true}
	stack := []vid{a}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range d.outNeighbors(cur) {
			if !forward[n] {
				forward[n] = true
				stack = append(stack, n)
			}
		}
	}

	result := make(map[vid]bool)
	for w := range forward {
		if d.reaches(w, b) {
			result[w] = true
		}
	}

	return result
}

// --- public operations ---------------------------------------------------

// AddEdge records u->v. If v's super-node already reaches u's, the new edge
// closes a cycle and every super-node on the v~>u path is merged with u and
// v into a single super-node; otherwise the edge is recorded safely between
// the two (distinct) super-nodes.
func (d *Detector) AddEdge(u, v vid) {
	d.g.AddEdge(u, v)
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return
	}

	if d.level[ru] < d.level[rv] {
		d.addSuperEdge(ru, rv)
		d.propagateLive(ru)
		return
	}

	if d.reaches(rv, ru) {
		merge := d.nodesOnPath(rv, ru)
		merge[ru] = true
		merge[rv] = true
		newLevel := d.level[ru]
		if d.level[rv] < newLevel {
			newLevel = d.level[rv]
		}
		var root vid
		first := true
		for w := range merge {
			if first {
				root = w
				first = false
				continue
			}
			root = d.union(root, w)
		}
		d.level[root] = newLevel
		if d.scc[root].terminal {
			d.scc[root].live = true
		}
		d.checkDead(root)
		d.propagateLive(root)
		return
	}

	d.addSuperEdge(ru, rv)
	if d.level[rv] <= d.level[ru] {
		d.level[rv] = d.level[ru] + 1
	}
	d.propagateLive(ru)
}

// MarkClosed sets closed=true on u's underlying vertex; if that makes u's
// whole super-node fully closed, the super-node is checked for deadness.
func (d *Detector) MarkClosed(u vid) {
	if d.g.MarkClosed(u) {
		return // already closed
	}
	ru := d.find(u)
	d.scc[ru].closedCount++
	d.checkDead(ru)
}

// MarkTerminal sets terminal=true (and closed=true) on u's underlying
// vertex, and marks u's whole super-node (and every ancestor super-node) LIVE.
func (d *Detector) MarkTerminal(u vid) {
	if d.g.MarkTerminal(u) {
		return // already terminal
	}
	ru := d.find(u)
	d.scc[ru].terminal = true
	d.markLive(ru)
}

// Status returns u's current classification: LIVE/DEAD are properties of
// u's whole super-node; OPEN/UNKNOWN are purely local to u's own closed flag.
func (d *Detector) Status(u vid) detector.Status {
	if !d.g.HasVertex(u) {
		return detector.StatusOpen
	}
	s := d.scc[d.find(u)]
	switch {
	case s.live:
		return detector.StatusLive
	case s.dead:
		return detector.StatusDead
	case d.g.Closed(u):
		return detector.StatusUnknown
	default:
		return detector.StatusOpen
	}
}

// Snapshot partitions every vertex ever mentioned into the four classes.
func (d *Detector) Snapshot() detector.Snapshot {
	var snap detector.Snapshot
	for _, v := range d.g.Vertices() {
		switch d.Status(v) {
		case detector.StatusLive:
			snap.Live = append(snap.Live, v)
		case detector.StatusDead:
			snap.Dead = append(snap.Dead, v)
		case detector.StatusUnknown:
			snap.Unknown = append(snap.Unknown, v)
		default:
			snap.Open = append(snap.Open, v)
		}
	}

	return snap
}

// --- propagation ---------------------------------------------------------

// markLive marks root (and every ancestor super-node reachable backward)
// LIVE. LIVE is permanent.
func (d *Detector) markLive(root vid) {
	if d.scc[root].live {
		return
	}
	queue := []vid{root}
	d.scc[root].live = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range d.inNeighbors(cur) {
			if !d.scc[p].live {
				d.scc[p].live = true
				queue = append(queue, p)
			}
		}
	}
}

// propagateLive re-marks root LIVE if any of its out-super-neighbors already
// is; a no-op otherwise.
func (d *Detector) propagateLive(root vid) {
	for _, n := range d.outNeighbors(root) {
		if d.scc[n].live {
			d.markLive(root)
			return
		}
	}
}

// checkDead marks root DEAD if it is fully closed, has no terminal member,
// and every out-super-neighbor is DEAD (vacuously true with none). Because
// the super-graph is acyclic by construction, this plain propagation needs
// no cycle-closure special case. Newly-DEAD super-nodes cause their
// predecessors to be rechecked.
func (d *Detector) checkDead(root vid) {
	s := d.scc[root]
	if s.live || s.dead {
		return
	}
	if s.closedCount != s.memberCount || s.terminal {
		return
	}
	for _, n := range d.outNeighbors(root) {
		if !d.scc[n].dead {
			return
		}
	}
	s.dead = true

	queue := []vid{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range d.inNeighbors(cur) {
			if d.scc[p].live || d.scc[p].dead {
				continue
			}
			before := d.scc[p].dead
			d.checkDead(p)
			if d.scc[p].dead && !before {
				queue = append(queue, p)
			}
		}
	}
}
