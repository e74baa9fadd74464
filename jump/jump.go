package jump

import (
	"github.com/katalvlaran/gid/detector"
	"github.com/katalvlaran/gid/graph"
)

// Detector is the lazy dead-state detector: each UNKNOWN vertex holds a
// single jump pointer toward some out-neighbor, corrected and
// path-compressed only when a query actually chases it - no propagation
// happens eagerly except LIVE, which still spreads backward the moment a
// vertex becomes a witness.
type Detector struct {
	g      *graph.Graph
	status map[detector.VertexID]detector.Status // only ever holds Live or Dead, permanently
	jmp    map[detector.VertexID]detector.VertexID
}

// New returns an empty jump Detector.
func New() *Detector {
	return &Detector{
		g:      graph.NewGraph(),
		status: make(map[detector.VertexID]detector.Status),
		jmp:    make(map[detector.VertexID]detector.VertexID),
	}
}

var _ detector.Detector = (*Detector)(nil)

// isUnknown reports whether u is closed but not yet resolved LIVE or DEAD -
// the only vertices a jump pointer applies to.
func (d *Detector) isUnknown(u detector.VertexID) bool {
	_, cached := d.status[u]
	return !cached && d.g.Closed(u)
}

// AddEdge records u->v. If v is already a confirmed LIVE witness: an
// UNKNOWN u has its jump pointer aimed at v, left for its next query to
// chase and resolve; an OPEN u has no jump pointer to defer through at
// all, so it is marked LIVE directly, the same way simple and logdet
// handle a fresh edge into an already-resolved witness.
func (d *Detector) AddEdge(u, v detector.VertexID) {
	d.g.AddEdge(u, v)
	if d.status[v] != detector.StatusLive {
		return
	}
	if d.isUnknown(u) {
		d.jmp[u] = v
		return
	}
	if !d.g.Closed(u) {
		d.markLive(u)
	}
}

// MarkClosed sets closed=true on u and gives it its first jump pointer (or
// marks it DEAD outright, if it has no out-neighbor at all).
func (d *Detector) MarkClosed(u detector.VertexID) {
	if d.g.MarkClosed(u) {
		return // already closed
	}
	if _, ok := d.status[u]; ok {
		return // already resolved (e.g. LIVE via an earlier MarkTerminal sweep)
	}
	d.initJump(u)
}

// initJump gives a newly-closed vertex its first jump pointer: any
// out-neighbor, or DEAD if it has none. The pointer may turn out to be
// stale (pointing at a vertex that later dies); that is corrected lazily,
// on query, rather than here.
func (d *Detector) initJump(u detector.VertexID) {
	neighbors := d.g.OutNeighborsOrdered(u)
	if len(neighbors) == 0 {
		d.status[u] = detector.StatusDead
		return
	}
	d.jmp[u] = neighbors[len(neighbors)-1]
}

// MarkTerminal sets terminal=true (and closed=true) on u, and eagerly marks
// u and every ancestor of u LIVE - the same reverse-BFS sweep simple uses,
// since a witness becoming reachable is exactly the event a jump pointer
// can't wait to be told about from the other end.
func (d *Detector) MarkTerminal(u detector.VertexID) {
	if d.g.MarkTerminal(u) {
		return // already terminal
	}
	d.markLive(u)
}

// Status lazily resolves u's classification, caching LIVE/DEAD permanently.
func (d *Detector) Status(u detector.VertexID) detector.Status {
	if !d.g.HasVertex(u) {
		return detector.StatusOpen
	}
	if s, ok := d.status[u]; ok {
		return s
	}
	if d.g.Terminal(u) {
		d.markLive(u)
		return detector.StatusLive
	}
	if !d.g.Closed(u) {
		return detector.StatusOpen
	}

	d.resolveClosed(u)
	if s, ok := d.status[u]; ok {
		return s
	}
	return detector.StatusUnknown
}

// Snapshot resolves and partitions every vertex ever mentioned.
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

// markLive marks v, and every ancestor reachable backward from it, LIVE.
func (d *Detector) markLive(v detector.VertexID) {
	if d.status[v] == detector.StatusLive {
		return
	}
	queue := []detector.VertexID{v}
	d.status[v] = detector.StatusLive
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range d.g.InNeighborsSorted(cur) {
			if d.status[p] != detector.StatusLive {
				d.status[p] = detector.StatusLive
				queue = append(queue, p)
			}
		}
	}
}

// compress marks every vertex along a chased jump chain LIVE and re-aims
// each one's pointer straight at the witness that resolved it - the usual
// union-find-flavored path compression, applied to the jump chain instead
// of a disjoint-set forest.
func (d *Detector) compress(path []detector.VertexID, liveWitness detector.VertexID) {
	for _, v := range path {
		if d.status[v] != detector.StatusLive {
			d.status[v] = detector.StatusLive
			d.jmp[v] = liveWitness
		}
	}
}

// resolveClosed chases u's jump chain forward, looking for a cached LIVE
// witness. Every vertex closed enough to have its own jump pointer gets
// visited at most once (the visited set also catches a chain that loops
// back on itself, a cluster of mutually-closed vertices with no recorded
// escape). If the chase reaches a witness, every vertex along the way is
// compressed straight onto it; otherwise DEAD is confirmed, if it can be,
// by the definitional forward-reachability check below.
func (d *Detector) resolveClosed(u detector.VertexID) {
	var path []detector.VertexID
	visited := make(map[detector.VertexID]bool)
	cur := u
	for {
		if s, ok := d.status[cur]; ok {
			if s == detector.StatusLive {
				d.compress(path, cur)
				return
			}
			break // DEAD: the chain needs the definitional check below
		}
		if visited[cur] || !d.g.Closed(cur) {
			break
		}
		visited[cur] = true
		path = append(path, cur)
		cur = d.jmp[cur]
	}

	d.checkDeadFrontier(u)
}

// checkDeadFrontier evaluates u's closed, non-terminal forward-reachable
// frontier definitionally: if any member is already LIVE, u becomes LIVE;
// if every member is closed and non-terminal, the whole frontier turns
// DEAD in one pass (this is what resolves a closed cycle, since no single
// jump pointer can locally detect one); otherwise u stays UNKNOWN for now.
func (d *Detector) checkDeadFrontier(u detector.VertexID) {
	reachable := d.forwardReachable(u)

	for w := range reachable {
		if d.status[w] == detector.StatusLive || d.g.Terminal(w) {
			d.markLive(u)
			return
		}
	}

	allClosed := true
	for w := range reachable {
		if d.status[w] == detector.StatusDead {
			continue // already resolved dead, contributes nothing further
		}
		if !d.g.Closed(w) {
			allClosed = false
			break
		}
	}
	if !allClosed {
		return
	}

	for w := range reachable {
		if _, ok := d.status[w]; !ok {
			d.status[w] = detector.StatusDead
			delete(d.jmp, w)
		}
	}
}

// forwardReachable returns the set of vertices reachable from start via
// out-edges, including start itself, stopping expansion at any vertex
// already confirmed DEAD (its own reachable set contributes nothing new: it
// is already known closed and non-terminal).
func (d *Detector) forwardReachable(start detector.VertexID) map[detector.VertexID]bool {
	seen := map[detector.VertexID]bool{start: true}
	stack := []detector.VertexID{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if d.status[v] == detector.StatusDead && v != start {
			continue
		}
		for _, w := range d.g.OutNeighborsSorted(v) {
			if !seen[w] {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}

	return seen
}
