package logdet

import (
	"github.com/katalvlaran/gid/detector"
	"github.com/katalvlaran/gid/etf"
	"github.com/katalvlaran/gid/graph"
)

// Detector maintains, for every UNKNOWN vertex, a single canonical out-edge
// (its fwd pointer) in a Euler-tour forest: LIVE is discovered by walking
// the Euler tour of the tree rooted at a vertex that just turned LIVE, and
// DEAD is discovered by cutting a dying vertex's canonical edge out of the
// forest and having every vertex that pointed at it pick a replacement.
type Detector struct {
	g      *graph.Graph
	status map[detector.VertexID]detector.Status
	fwd    map[detector.VertexID]detector.VertexID
	linked map[detector.VertexID]bool
	tree   *etf.Forest

	// children[w] holds every vertex whose canonical edge currently points
	// at w, so that w's death can find who needs to repick without a graph
	// scan.
	children map[detector.VertexID]map[detector.VertexID]bool
}

// New returns an empty logdet Detector.
func New() *Detector {
	return &Detector{
		g:        graph.NewGraph(),
		status:   make(map[detector.VertexID]detector.Status),
		fwd:      make(map[detector.VertexID]detector.VertexID),
		linked:   make(map[detector.VertexID]bool),
		children: make(map[detector.VertexID]map[detector.VertexID]bool),
		tree:     etf.New(),
	}
}

var _ detector.Detector = (*Detector)(nil)

func (d *Detector) statusOf(v detector.VertexID) detector.Status {
	return d.status[v]
}

func (d *Detector) ensureInTree(v detector.VertexID) {
	if !d.tree.Has(v) {
		d.tree.Insert(v)
	}
}

// AddEdge records u->v. A canonical pointer is only ever assigned when a
// vertex closes, so the one thing an added edge can do ahead of that is
// hand u an immediate LIVE witness.
func (d *Detector) AddEdge(u, v detector.VertexID) {
	d.g.AddEdge(u, v)
	if d.statusOf(v) == detector.StatusLive {
		d.markLive(u)
	}
}

// MarkClosed sets closed=true on u and gives it a canonical out-edge (or
// marks it DEAD, if it has no candidate at all).
func (d *Detector) MarkClosed(u detector.VertexID) {
	if d.g.MarkClosed(u) {
		return // already closed
	}
	if !d.assignCanonical(u) {
		d.markDead(u)
	}
}

// MarkTerminal sets terminal=true (and closed=true) on u, and marks u and
// every ancestor of u LIVE.
func (d *Detector) MarkTerminal(u detector.VertexID) {
	if d.g.MarkTerminal(u) {
		return // already terminal
	}
	d.markLive(u)
}

// Status returns u's current classification.
func (d *Detector) Status(u detector.VertexID) detector.Status {
	if !d.g.HasVertex(u) {
		return detector.StatusOpen
	}

	return d.statusOf(u)
}

// Snapshot partitions every vertex ever mentioned into the four classes.
func (d *Detector) Snapshot() detector.Snapshot {
	var snap detector.Snapshot
	for _, v := range d.g.Vertices() {
		switch d.statusOf(v) {
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

// assignCanonical gives u a canonical out-edge: its most-recently-added
// out-neighbor that isn't known DEAD. A neighbor already LIVE resolves u
// immediately. Linking u to its chosen target would close a cycle in the
// fwd-forest (which, being a Euler-tour forest, cannot represent one) only
// in the documented closed-cycle corner case, handled by falling back to a
// definitional scan. Returns false if u has no non-DEAD out-neighbor at
// all, meaning u is DEAD.
func (d *Detector) assignCanonical(u detector.VertexID) bool {
	if s := d.statusOf(u); s == detector.StatusLive || s == detector.StatusDead {
		return true
	}

	neighbors := d.g.OutNeighborsOrdered(u)
	for i := len(neighbors) - 1; i >= 0; i-- {
		w := neighbors[i]
		switch d.statusOf(w) {
		case detector.StatusDead:
			continue
		case detector.StatusLive:
			d.markLive(u)
			return true
		}

		d.setCanonical(u, w)
		d.ensureInTree(u)
		d.ensureInTree(w)
		d.status[u] = detector.StatusUnknown

		if u == w || d.tree.Connected(u, w) {
			d.resolveClosedCycle(u)
			return true
		}
		d.tree.Link(u, w)
		d.linked[u] = true
		return true
	}

	return false
}

// setCanonical records u's canonical target as w, maintaining the reverse
// children index used to find u again when w later dies.
func (d *Detector) setCanonical(u, w detector.VertexID) {
	if old, ok := d.fwd[u]; ok {
		if kids := d.children[old]; kids != nil {
			delete(kids, u)
		}
	}
	d.fwd[u] = w
	if d.children[w] == nil {
		d.children[w] = make(map[detector.VertexID]bool)
	}
	d.children[w][u] = true
}

// detachFromForest removes v's own canonical edge from the Euler-tour
// forest, once v has been resolved and no longer needs one.
func (d *Detector) detachFromForest(v detector.VertexID) {
	if d.linked[v] {
		d.tree.Cut(v)
		d.linked[v] = false
	}
	delete(d.fwd, v)
}

// markLive marks v LIVE, then propagates to every UNKNOWN vertex whose
// canonical chain reaches v (enumerated in one pass via v's Euler tour)
// and, via the raw reverse edge, to every predecessor of v that walk did
// not reach: OPEN vertices, which never hold a canonical edge, and closed
// vertices whose canonical edge points elsewhere.
func (d *Detector) markLive(v detector.VertexID) {
	if d.statusOf(v) == detector.StatusLive {
		return
	}
	d.status[v] = detector.StatusLive
	d.detachFromForest(v)
	delete(d.children, v)

	if d.tree.Has(v) {
		for _, u := range d.tree.Members(v) {
			if u != v && d.statusOf(u) != detector.StatusLive {
				d.status[u] = detector.StatusLive
				d.detachFromForest(u)
				delete(d.children, u)
			}
		}
	}

	for _, p := range d.g.InNeighborsSorted(v) {
		if d.statusOf(p) != detector.StatusLive {
			d.markLive(p)
		}
	}
}

// markDead marks start DEAD, cuts it out of the forest, and cascades to
// every vertex whose canonical edge pointed at it: each must pick a
// replacement, recursing into markDead itself if none remains.
func (d *Detector) markDead(start detector.VertexID) {
	queue := []detector.VertexID{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if s := d.statusOf(v); s == detector.StatusLive || s == detector.StatusDead {
			continue
		}
		d.status[v] = detector.StatusDead

		affected := d.children[v]
		d.detachFromForest(v)
		delete(d.children, v)

		for p := range affected {
			s := d.statusOf(p)
			if s == detector.StatusLive || s == detector.StatusDead || !d.g.Closed(p) {
				continue
			}
			d.detachFromForest(p) // cut the stale edge p->v before repicking
			if !d.assignCanonical(p) {
				queue = append(queue, p)
			}
		}
	}
}

// resolveClosedCycle is the one corner case the fwd-forest cannot hold: a
// closed cycle with no escaping edge. It falls back to the same
// forward-reachability definitional scan the simple detector uses - if
// every forward-reachable vertex (including u) is closed and non-terminal,
// the whole frontier is DEAD, fed through markDead so the usual repick
// cascade takes over from there.
func (d *Detector) resolveClosedCycle(u detector.VertexID) {
	if s := d.statusOf(u); s == detector.StatusLive || s == detector.StatusDead {
		return
	}

	reachable := d.forwardReachable(u)
	for w := range reachable {
		if d.g.Terminal(w) || !d.g.Closed(w) {
			return // not yet resolvable: stays UNKNOWN
		}
	}

	var newlyDead []detector.VertexID
	for w := range reachable {
		if s := d.statusOf(w); s != detector.StatusDead && s != detector.StatusLive {
			newlyDead = append(newlyDead, w)
		}
	}
	for _, w := range newlyDead {
		d.markDead(w)
	}
}

func (d *Detector) forwardReachable(start detector.VertexID) map[detector.VertexID]bool {
	seen := map[detector.VertexID]bool{start: true}
	stack := []detector.VertexID{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range d.g.OutNeighborsSorted(v) {
			if !seen[w] {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}

	return seen
}
