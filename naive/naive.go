package naive

import (
	"github.com/katalvlaran/gid/detector"
	"github.com/katalvlaran/gid/graph"
)

// Detector is the full-recomputation dead-state detector.
type Detector struct {
	g *graph.Graph
}

// New returns an empty naive Detector.
func New() *Detector {
	return &Detector{g: graph.NewGraph()}
}

var _ detector.Detector = (*Detector)(nil)

// AddEdge records u->v. No incremental bookkeeping; status is recomputed lazily.
func (d *Detector) AddEdge(u, v detector.VertexID) {
	d.g.AddEdge(u, v)
}

// MarkClosed sets closed=true on u.
func (d *Detector) MarkClosed(u detector.VertexID) {
	d.g.MarkClosed(u)
}

// MarkTerminal sets terminal=true (and closed=true) on u.
func (d *Detector) MarkTerminal(u detector.VertexID) {
	d.g.MarkTerminal(u)
}

// Status recomputes u's classification by forward search from u.
func (d *Detector) Status(u detector.VertexID) detector.Status {
	if !d.g.HasVertex(u) {
		return detector.StatusOpen
	}

	reachable := d.forwardReachable(u)
	return classify(d.g, u, reachable)
}

// Snapshot recomputes the classification of every vertex ever mentioned.
// Complexity: O(n*(n+m)), one forward search per vertex.
func (d *Detector) Snapshot() detector.Snapshot {
	var snap detector.Snapshot
	for _, v := range d.g.Vertices() {
		reachable := d.forwardReachable(v)
		switch classify(d.g, v, reachable) {
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

// classify derives v's status from the set of vertices reachable from it.
func classify(g *graph.Graph, v detector.VertexID, reachable map[detector.VertexID]bool) detector.Status {
	anyTerminal := false
	allClosed := true
	for w := range reachable {
		if g.Terminal(w) {
			anyTerminal = true
		}
		if !g.Closed(w) {
			allClosed = false
		}
	}

	switch {
	case anyTerminal:
		return detector.StatusLive
	case g.Closed(v) && allClosed:
		return detector.StatusDead
	case g.Closed(v):
		return detector.StatusUnknown
	default:
		return detector.StatusOpen
	}
}
