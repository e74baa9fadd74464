// Package gid maintains a growing directed graph under a stream of
// updates and classifies every vertex LIVE, DEAD, OPEN or UNKNOWN as the
// stream arrives.
//
// A vertex starts OPEN. Marking it terminal makes it (and every vertex that
// can reach it) LIVE, permanently. Closing a vertex promises no further
// out-edges will be added from it; once closed, a vertex is UNKNOWN until
// every vertex reachable from it is also closed and non-terminal, at which
// point the whole reachable frontier turns DEAD, permanently. Edges are
// insertion-only: there are no deletions, of either vertices or edges.
//
// Five interchangeable detectors implement this classification over the
// same graph substrate (package graph) behind one shared contract (package
// detector):
//
//	naive/   — full recomputation from scratch on every query
//	simple/  — reverse-BFS liveness, forward-reachability deadness
//	bfgt/    — incremental SCC maintenance via union-find and topological levels
//	logdet/  — canonical fwd-edge forest maintained with a Euler-tour forest
//	jump/    — lazy, on-demand classification with path-compressed caching
//
// All five agree on the final classification of any given update stream;
// see internal/conformance for the cross-detector agreement harness.
package gid
