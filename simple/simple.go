package simple

import (
	"github.com/katalvlaran/gid/detector"
	"github.com/katalvlaran/gid/graph"
)

// Detector is the reverse-BFS dead-state detector. Liveness propagates
// forward along reverse edges from terminals; deadness is confirmed by a
// forward reachability check from each newly-closed vertex (covering closed
// cycles, where no single vertex individually has an already-dead
// out-neighbor to key off of) and then propagated backward to closed
// predecessors whenever a vertex turns DEAD.
type Detector struct {
	g      *graph.Graph
	status map[detector.VertexID]detector.Status
}

// New returns an empty simple Detector.
func New() *Detector {
	return &Detector{
		g:      graph.NewGraph(),
		status: make(map[detector.VertexID]detector.Status),
	}
}

var _ detector.Detector = (*Detector)(nil)

func (d *Detector) statusOf(v detector.VertexID) detector.Status {
	return d.status[v] // zero value is StatusOpen
}

// AddEdge records u->v; if v is already LIVE, u (and its ancestors) become LIVE too.
func (d *Detector) AddEdge(u, v detector.VertexID) {
	d.g.AddEdge(u, v)
	if d.statusOf(v) == detector.StatusLive {
		d.markLive(u)
	}
}

// MarkClosed sets closed=true on u and checks whether u (or any vertex in
// its closed reachable frontier) is now DEAD.
func (d *Detector) MarkClosed(u detector.VertexID) {
	if d.g.MarkClosed(u) {
		return // already closed
	}
	d.checkDead(u)
}

// MarkTerminal sets terminal=true (and closed=true) on u and marks u, and
// every ancestor of u, LIVE.
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

// markLive marks v (and, transitively, its unmarked ancestors) LIVE via a
// backward BFS over reverse edges. LIVE is permanent.
func (d *Detector) markLive(v detector.VertexID) {
	if d.statusOf(v) == detector.StatusLive {
		return
	}
	queue := []detector.VertexID{v}
	d.status[v] = detector.StatusLive
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range d.g.InNeighborsSorted(cur) {
			if d.statusOf(p) != detector.StatusLive {
				d.status[p] = detector.StatusLive
				queue = append(queue, p)
			}
		}
	}
}

// checkDead evaluates u's closed reachable frontier: if every vertex
// forward-reachable from u (including u) is closed and non-terminal, u and
// every closed vertex in that frontier are DEAD - this is what lets a closed
// cycle (e.g. two mutually-closed vertices with no outside escape) resolve
// to DEAD even though neither member individually has a confirmed-dead
// out-neighbor to key off of. Any vertex that newly turns DEAD has its
// closed predecessors rechecked in turn.
func (d *Detector) checkDead(u detector.VertexID) {
	if s := d.statusOf(u); s == detector.StatusLive || s == detector.StatusDead {
		return
	}
	if !d.g.Closed(u) {
		return
	}

	reachable := d.forwardReachable(u)
	allClosedNonTerminal := true
	for w := range reachable {
		if d.g.Terminal(w) || !d.g.Closed(w) {
			allClosedNonTerminal = false
			break
		}
	}
	if !allClosedNonTerminal {
		d.status[u] = detector.StatusUnknown
		return
	}

	var newlyDead []detector.VertexID
	for w := range reachable {
		if s := d.statusOf(w); s != detector.StatusDead && s != detector.StatusLive {
			d.status[w] = detector.StatusDead
			newlyDead = append(newlyDead, w)
		}
	}

	rechecked := make(map[detector.VertexID]bool)
	queue := append([]detector.VertexID(nil), newlyDead...)
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, p := range d.g.InNeighborsSorted(x) {
			s := d.statusOf(p)
			if s == detector.StatusLive || s == detector.StatusDead || rechecked[p] || !d.g.Closed(p) {
				continue
			}
			rechecked[p] = true
			before := d.statusOf(p)
			d.checkDead(p)
			if d.statusOf(p) == detector.StatusDead && before != detector.StatusDead {
				queue = append(queue, p)
			}
		}
	}
}

// forwardReachable returns the set of vertices reachable from start via
// out-edges, including start itself.
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
